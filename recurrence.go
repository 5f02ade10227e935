package ical

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// RecurrenceLimit caps the number of occurrences Occurrences expands.
const RecurrenceLimit = 65535

var (
	// ErrNoRecurrence is returned when a component has no DTSTART to
	// anchor its recurrence on.
	ErrNoRecurrence = errors.New("ical: no DTSTART to expand recurrence from")

	// ErrMultipleRules is returned when a component carries more than one
	// RRULE. RFC 5545 says RRULE should not occur more than once.
	ErrMultipleRules = errors.New("ical: more than one RRULE")
)

// SetRecurrenceRule sets the RRULE. The rule is checked before it is
// stored; a leading "RRULE:" is accepted.
func (c *Component) SetRecurrenceRule(rule string) error {
	rule = strings.TrimPrefix(rule, "RRULE:")
	if _, err := rrule.StrToROption(rule); err != nil {
		return fmt.Errorf("ical: invalid RRULE %q: %w", rule, err)
	}
	c.SetProperty(NewProperty("RRULE", rule))
	return nil
}

// SetRecurrence sets the RRULE from rule options. Dtstart is not part of
// the rule; set it with SetStarts.
func (c *Component) SetRecurrence(opt rrule.ROption) *Component {
	return c.SetProperty(NewProperty("RRULE", opt.RRuleString()))
}

// RecurrenceRule returns the raw RRULE.
func (c *Component) RecurrenceRule() (string, bool) {
	return c.PropertyValue("RRULE")
}

// AddRecurrenceDate appends an RDATE.
func (c *Component) AddRecurrenceDate(v DatePerhapsTime) *Component {
	return c.AppendProperty(v.Property("RDATE"))
}

// AddExceptionDate appends an EXDATE.
func (c *Component) AddExceptionDate(v DatePerhapsTime) *Component {
	return c.AppendProperty(v.Property("EXDATE"))
}

// RecurrenceSet builds the recurrence set of the component from DTSTART,
// RRULE, RDATE and EXDATE. Floating times and dates are read in loc; TZID
// parameters are resolved with time.LoadLocation. A component with several
// RRULE properties is refused with ErrMultipleRules rather than expanded
// from one of them.
func (c *Component) RecurrenceSet(loc *time.Location) (*rrule.Set, error) {
	if loc == nil {
		loc = time.UTC
	}

	rules := c.PropertiesOf("RRULE")
	if len(rules) > 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleRules, len(rules))
	}

	start, ok := c.Property("DTSTART")
	if !ok {
		return nil, ErrNoRecurrence
	}
	starts, err := recurrenceTimes(start, loc)
	if err != nil {
		return nil, err
	}
	if len(starts) != 1 {
		return nil, fmt.Errorf("ical: invalid DTSTART %q", start.Value())
	}
	dtstart := starts[0]

	set := &rrule.Set{}
	set.DTStart(dtstart)

	for _, p := range rules {
		opt, err := rrule.StrToROptionInLocation(p.Value(), loc)
		if err != nil {
			return nil, fmt.Errorf("ical: invalid RRULE %q: %w", p.Value(), err)
		}
		opt.Dtstart = dtstart
		r, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("ical: invalid RRULE %q: %w", p.Value(), err)
		}
		set.RRule(r)
	}

	for _, p := range c.PropertiesOf("RDATE") {
		ts, err := recurrenceTimes(p, loc)
		if err != nil {
			return nil, err
		}
		for _, t := range ts {
			set.RDate(t)
		}
	}

	for _, p := range c.PropertiesOf("EXDATE") {
		ts, err := recurrenceTimes(p, loc)
		if err != nil {
			return nil, err
		}
		for _, t := range ts {
			set.ExDate(t)
		}
	}

	return set, nil
}

// Occurrences expands the recurrence set in chronological order. At most
// limit occurrences are returned; a limit out of (0, RecurrenceLimit] is
// read as RecurrenceLimit. A component without RRULE or RDATE has DTSTART
// as its single occurrence.
func (c *Component) Occurrences(limit int, loc *time.Location) ([]time.Time, error) {
	if limit <= 0 || limit > RecurrenceLimit {
		limit = RecurrenceLimit
	}

	set, err := c.RecurrenceSet(loc)
	if err != nil {
		return nil, err
	}
	if !c.Properties.Has("RRULE") && !c.Properties.Has("RDATE") {
		return []time.Time{set.GetDTStart()}, nil
	}

	var out []time.Time
	next := set.Iterator()
	for len(out) < limit {
		t, ok := next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

// recurrenceTimes reads the comma separated date or date-time values of
// p.
func recurrenceTimes(p Property, loc *time.Location) ([]time.Time, error) {
	if tzid, ok := p.ParamValue(paramTZID); ok {
		l, err := time.LoadLocation(tzid)
		if err != nil {
			return nil, fmt.Errorf("ical: %s: unknown TZID %q: %w", p.Key(), tzid, err)
		}
		loc = l
	}
	isDate := false
	if vt, ok := p.ValueType(); ok && vt == ValueDate {
		isDate = true
	}

	var out []time.Time
	for _, v := range strings.Split(p.Value(), ",") {
		v = strings.TrimSpace(v)
		if isDate {
			d, ok := ParseDate(v)
			if !ok {
				return nil, fmt.Errorf("ical: %s: invalid date %q", p.Key(), v)
			}
			out = append(out, d.In(loc))
			continue
		}
		dt, ok := ParseCalendarDateTime(v)
		if !ok {
			return nil, fmt.Errorf("ical: %s: invalid date-time %q", p.Key(), v)
		}
		out = append(out, dt.In(loc))
	}
	return out, nil
}
