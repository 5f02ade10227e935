package ical

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Component names.
const (
	CompCalendar    = "VCALENDAR"
	CompEvent       = "VEVENT"
	CompTodo        = "VTODO"
	CompJournal     = "VJOURNAL"
	CompFreeBusy    = "VFREEBUSY"
	CompTimezone    = "VTIMEZONE"
	CompAlarm       = "VALARM"
	CompVenue       = "VVENUE"
	CompParticipant = "PARTICIPANT"
	CompLocation    = "VLOCATION"
	CompResource    = "VRESOURCE"
)

// A Component is a BEGIN/END block of an iCalendar: its properties and
// nested components.
type Component struct {
	Name       string
	Properties Properties
	Children   []*Component
}

// CalendarComponent is implemented by Component and by the typed wrappers
// (Event, Todo, ...).
type CalendarComponent interface {
	component() *Component
}

// NewComponent creates an empty component. The name is upper-cased.
func NewComponent(name string) *Component {
	return &Component{Name: strings.ToUpper(name)}
}

func (c *Component) component() *Component { return c }

// SetProperty replaces every property stored under p's key with p.
func (c *Component) SetProperty(p Property) *Component {
	c.Properties.Set(p)
	return c
}

// AppendProperty adds p after the properties already stored under its key.
func (c *Component) AppendProperty(p Property) *Component {
	c.Properties.Append(p)
	return c
}

// AddProperty sets a property without parameters.
func (c *Component) AddProperty(key, value string) *Component {
	return c.SetProperty(NewProperty(key, value))
}

// RemoveProperty removes every property stored under key.
func (c *Component) RemoveProperty(key string) *Component {
	c.Properties.Remove(key)
	return c
}

// Property returns the first property stored under key.
func (c *Component) Property(key string) (Property, bool) {
	return c.Properties.Get(key)
}

// PropertyValue returns the value of the first property stored under key.
func (c *Component) PropertyValue(key string) (string, bool) {
	p, ok := c.Properties.Get(key)
	return p.Value(), ok
}

// PropertiesOf returns every property stored under key in insertion order.
func (c *Component) PropertiesOf(key string) []Property {
	return c.Properties.All(key)
}

// AddChild appends a copy of child to the nested components.
func (c *Component) AddChild(child CalendarComponent) *Component {
	c.Children = append(c.Children, child.component().Clone())
	return c
}

// ChildrenNamed returns the nested components named name.
func (c *Component) ChildrenNamed(name string) []*Component {
	var out []*Component
	for _, child := range c.Children {
		if child.Name == name {
			out = append(out, child)
		}
	}
	return out
}

// Clone returns a deep copy of c.
func (c *Component) Clone() *Component {
	clone := &Component{
		Name:       c.Name,
		Properties: c.Properties.clone(),
	}
	if len(c.Children) > 0 {
		clone.Children = make([]*Component, len(c.Children))
		for i, child := range c.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}

func (c *Component) String() string {
	var b strings.Builder
	_ = FormatComponent(&b, c)
	return b.String()
}

// Class is the access classification of a component.
type Class string

// Classes defined by RFC 5545.
const (
	ClassPublic       Class = "PUBLIC"
	ClassPrivate      Class = "PRIVATE"
	ClassConfidential Class = "CONFIDENTIAL"
)

// Common properties

// SetUID sets the UID.
func (c *Component) SetUID(uid string) *Component {
	return c.AddProperty("UID", uid)
}

// UID returns the UID.
func (c *Component) UID() (string, bool) {
	return c.PropertyValue("UID")
}

// GenerateUID sets a random UUID as UID and returns it.
func (c *Component) GenerateUID() string {
	uid := uuid.NewString()
	c.SetUID(uid)
	return uid
}

// SetSummary sets the SUMMARY.
func (c *Component) SetSummary(summary string) *Component {
	return c.AddProperty("SUMMARY", summary)
}

// Summary returns the SUMMARY.
func (c *Component) Summary() (string, bool) {
	return c.PropertyValue("SUMMARY")
}

// SetDescription sets the DESCRIPTION.
func (c *Component) SetDescription(description string) *Component {
	return c.AddProperty("DESCRIPTION", description)
}

// Description returns the DESCRIPTION.
func (c *Component) Description() (string, bool) {
	return c.PropertyValue("DESCRIPTION")
}

// SetLocation sets the LOCATION text.
func (c *Component) SetLocation(location string) *Component {
	return c.AddProperty("LOCATION", location)
}

// Location returns the LOCATION text.
func (c *Component) Location() (string, bool) {
	return c.PropertyValue("LOCATION")
}

// SetURL sets the URL.
func (c *Component) SetURL(url string) *Component {
	return c.AddProperty("URL", url)
}

// URL returns the URL.
func (c *Component) URL() (string, bool) {
	return c.PropertyValue("URL")
}

// SetClass sets the CLASS.
func (c *Component) SetClass(class Class) *Component {
	return c.AddProperty("CLASS", string(class))
}

// Class returns the CLASS. Values other than the three RFC 5545 classes
// are returned as they are.
func (c *Component) Class() (Class, bool) {
	v, ok := c.PropertyValue("CLASS")
	return Class(v), ok
}

// SetPriority sets the PRIORITY, 0 (undefined) to 9 (lowest).
func (c *Component) SetPriority(priority int) *Component {
	return c.AddProperty("PRIORITY", strconv.Itoa(priority))
}

// Priority returns the PRIORITY.
func (c *Component) Priority() (int, bool) {
	return c.intProperty("PRIORITY")
}

// SetSequence sets the SEQUENCE.
func (c *Component) SetSequence(sequence int) *Component {
	return c.AddProperty("SEQUENCE", strconv.Itoa(sequence))
}

// Sequence returns the SEQUENCE.
func (c *Component) Sequence() (int, bool) {
	return c.intProperty("SEQUENCE")
}

// SetTimestamp sets the DTSTAMP. It is always written in UTC.
func (c *Component) SetTimestamp(t time.Time) *Component {
	return c.AddProperty("DTSTAMP", UTCDateTime(t).String())
}

// Timestamp returns the DTSTAMP.
func (c *Component) Timestamp() (time.Time, bool) {
	return c.utcProperty("DTSTAMP")
}

// SetStarts sets the DTSTART.
func (c *Component) SetStarts(v DatePerhapsTime) *Component {
	return c.SetProperty(v.Property("DTSTART"))
}

// Starts returns the DTSTART.
func (c *Component) Starts() (DatePerhapsTime, bool) {
	return c.dateProperty("DTSTART")
}

// SetEnds sets the DTEND.
func (c *Component) SetEnds(v DatePerhapsTime) *Component {
	return c.SetProperty(v.Property("DTEND"))
}

// Ends returns the DTEND.
func (c *Component) Ends() (DatePerhapsTime, bool) {
	return c.dateProperty("DTEND")
}

// SetAllDay makes the component span the whole of date: DTSTART is date
// and DTEND, which is exclusive, the following day.
func (c *Component) SetAllDay(date Date) *Component {
	c.SetStarts(DateValue(date))
	return c.SetEnds(DateValue(date.AddDays(1)))
}

// SetDuration sets the DURATION.
func (c *Component) SetDuration(d Duration) *Component {
	return c.AddProperty("DURATION", d.String())
}

// Duration returns the DURATION.
func (c *Component) Duration() (Duration, bool) {
	v, ok := c.PropertyValue("DURATION")
	if !ok {
		return Duration{}, false
	}
	d, err := ParseDuration(v)
	if err != nil {
		return Duration{}, false
	}
	return d, true
}

// AddAlarm nests a copy of alarm.
func (c *Component) AddAlarm(alarm *Alarm) *Component {
	return c.AddChild(alarm)
}

// Alarms returns the nested alarms. The alarms share storage with c.
func (c *Component) Alarms() []*Alarm {
	var alarms []*Alarm
	for _, child := range c.ChildrenNamed(CompAlarm) {
		alarms = append(alarms, &Alarm{child})
	}
	return alarms
}

func (c *Component) intProperty(key string) (int, bool) {
	v, ok := c.PropertyValue(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Component) utcProperty(key string) (time.Time, bool) {
	v, ok := c.PropertyValue(key)
	if !ok {
		return time.Time{}, false
	}
	dt, ok := ParseCalendarDateTime(v)
	if !ok || !dt.IsUTC() {
		return time.Time{}, false
	}
	return dt.Time(), true
}

func (c *Component) dateProperty(key string) (DatePerhapsTime, bool) {
	p, ok := c.Property(key)
	if !ok {
		return DatePerhapsTime{}, false
	}
	return DatePerhapsTimeOf(p)
}
