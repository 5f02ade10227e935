// Package ical implements an iCalendar parser and formatter.
//
// iCalendar is defined in RFC 5545. Components defined by RFC 9073
// (PARTICIPANT, VLOCATION, VRESOURCE) are supported as well.
//
// Property values are stored unescaped. TEXT values are escaped when a
// calendar is written and unescaped when it is parsed, so a value reads
// the same whether it was set through the API or parsed from text.
package ical

import (
	"strings"
)

// Defaults used by NewCalendar.
const (
	DefaultProdID   = "-//luxifer//icalendar//EN"
	DefaultVersion  = "2.0"
	DefaultCalscale = "GREGORIAN"
)

// A Calendar represents the whole iCalendar: a VCALENDAR component holding
// calendar properties and the calendar components.
type Calendar struct {
	*Component
}

// NewCalendar creates a Calendar with VERSION, PRODID and CALSCALE set.
func NewCalendar() *Calendar {
	c := &Calendar{NewComponent(CompCalendar)}
	c.AddProperty("VERSION", DefaultVersion)
	c.AddProperty("PRODID", DefaultProdID)
	c.AddProperty("CALSCALE", DefaultCalscale)
	return c
}

// Push appends a copy of comp to the calendar components.
func (c *Calendar) Push(comp CalendarComponent) *Calendar {
	c.AddChild(comp)
	return c
}

// Components returns the calendar components in insertion order.
func (c *Calendar) Components() []*Component {
	return c.Children
}

// Events returns the VEVENT components. They share storage with c.
func (c *Calendar) Events() []*Event {
	var events []*Event
	for _, child := range c.ChildrenNamed(CompEvent) {
		events = append(events, &Event{child})
	}
	return events
}

// Todos returns the VTODO components. They share storage with c.
func (c *Calendar) Todos() []*Todo {
	var todos []*Todo
	for _, child := range c.ChildrenNamed(CompTodo) {
		todos = append(todos, &Todo{child})
	}
	return todos
}

// SetProdID sets the PRODID.
func (c *Calendar) SetProdID(prodID string) *Calendar {
	c.AddProperty("PRODID", prodID)
	return c
}

// ProdID returns the PRODID.
func (c *Calendar) ProdID() (string, bool) {
	return c.PropertyValue("PRODID")
}

// SetVersion sets the VERSION.
func (c *Calendar) SetVersion(version string) *Calendar {
	c.AddProperty("VERSION", version)
	return c
}

// Version returns the VERSION.
func (c *Calendar) Version() (string, bool) {
	return c.PropertyValue("VERSION")
}

// SetMethod sets the METHOD.
func (c *Calendar) SetMethod(method string) *Calendar {
	c.AddProperty("METHOD", method)
	return c
}

// Method returns the METHOD.
func (c *Calendar) Method() (string, bool) {
	return c.PropertyValue("METHOD")
}

// SetName sets the calendar name as NAME (RFC 7986) and X-WR-CALNAME.
func (c *Calendar) SetName(name string) *Calendar {
	c.AddProperty("NAME", name)
	c.AddProperty("X-WR-CALNAME", name)
	return c
}

// CalendarName returns the calendar name.
func (c *Calendar) CalendarName() (string, bool) {
	if v, ok := c.PropertyValue("NAME"); ok {
		return v, true
	}
	return c.PropertyValue("X-WR-CALNAME")
}

// SetDescription sets the calendar description as DESCRIPTION and
// X-WR-CALDESC.
func (c *Calendar) SetDescription(description string) *Calendar {
	c.AddProperty("DESCRIPTION", description)
	c.AddProperty("X-WR-CALDESC", description)
	return c
}

// SetTimezone sets the X-WR-TIMEZONE hint.
func (c *Calendar) SetTimezone(tzid string) *Calendar {
	c.AddProperty("X-WR-TIMEZONE", tzid)
	return c
}

func (c *Calendar) String() string {
	var b strings.Builder
	_ = Format(&b, c)
	return b.String()
}
