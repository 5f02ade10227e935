package ical

import (
	"time"
)

const (
	dateLayout              = "20060102"
	dateTimeLayoutUTC       = "20060102T150405Z"
	dateTimeLayoutLocalized = "20060102T150405"
)

const paramTZID = "TZID"

// A Date is a calendar day without time of day or time zone.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.4
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, normalized the way
// time.Date normalizes out of range values.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYYMMDD value.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.In(time.UTC).Format(dateLayout)
}

// A CalendarDateTime is a DATE-TIME value in one of two forms: floating
// (local time without a zone, FORM #1) or UTC (FORM #2).
//
// FORM #3, local time with a TZID reference, is not represented. Values
// carrying a TZID parameter are reported as absent by DatePerhapsTimeOf so
// that callers fall back to the raw property instead of reading a wrong
// instant.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
type CalendarDateTime struct {
	t   time.Time // wall clock in time.UTC for floating values
	utc bool
}

// FloatingDateTime keeps the wall clock of t and drops its location.
func FloatingDateTime(t time.Time) CalendarDateTime {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return CalendarDateTime{t: time.Date(y, mo, d, h, mi, s, 0, time.UTC)}
}

// UTCDateTime converts t to UTC.
func UTCDateTime(t time.Time) CalendarDateTime {
	return CalendarDateTime{t: t.UTC().Truncate(time.Second), utc: true}
}

// ParseCalendarDateTime parses a floating (YYYYMMDDTHHMMSS) value and,
// failing that, a UTC (YYYYMMDDTHHMMSSZ) value.
func ParseCalendarDateTime(s string) (CalendarDateTime, bool) {
	if t, err := time.Parse(dateTimeLayoutLocalized, s); err == nil {
		return CalendarDateTime{t: t}, true
	}
	if t, err := time.Parse(dateTimeLayoutUTC, s); err == nil {
		return CalendarDateTime{t: t, utc: true}, true
	}
	return CalendarDateTime{}, false
}

// IsUTC reports whether dt is in UTC form.
func (dt CalendarDateTime) IsUTC() bool { return dt.utc }

// IsFloating reports whether dt is a floating local time.
func (dt CalendarDateTime) IsFloating() bool { return !dt.utc }

// Time returns the instant for UTC values. For floating values the wall
// clock is returned in time.UTC.
func (dt CalendarDateTime) Time() time.Time { return dt.t }

// In returns dt in loc. Floating values are read as wall clock time in loc.
func (dt CalendarDateTime) In(loc *time.Location) time.Time {
	if dt.utc {
		return dt.t.In(loc)
	}
	y, mo, d := dt.t.Date()
	h, mi, s := dt.t.Clock()
	return time.Date(y, mo, d, h, mi, s, 0, loc)
}

// Equal reports whether both values have the same form and fields.
func (dt CalendarDateTime) Equal(o CalendarDateTime) bool {
	return dt.utc == o.utc && dt.t.Equal(o.t)
}

// IsZero reports whether dt is the zero value.
func (dt CalendarDateTime) IsZero() bool {
	return dt.t.IsZero()
}

func (dt CalendarDateTime) String() string {
	if dt.utc {
		return dt.t.Format(dateTimeLayoutUTC)
	}
	return dt.t.Format(dateTimeLayoutLocalized)
}

// DatePerhapsTime is either a DATE or a DATE-TIME value.
type DatePerhapsTime struct {
	date     Date
	dateTime CalendarDateTime
	isDate   bool
}

// DateValue wraps a date.
func DateValue(d Date) DatePerhapsTime {
	return DatePerhapsTime{date: d, isDate: true}
}

// DateTimeValue wraps a date-time.
func DateTimeValue(dt CalendarDateTime) DatePerhapsTime {
	return DatePerhapsTime{dateTime: dt}
}

// DatePerhapsTimeOf reads a date or date-time property. Properties typed
// DATE are read as dates, all others as date-times. Values that match no
// accepted form, and values that reference a TZID, are reported as absent.
func DatePerhapsTimeOf(p Property) (DatePerhapsTime, bool) {
	if vt, ok := p.ValueType(); ok && vt == ValueDate {
		d, ok := ParseDate(p.Value())
		if !ok {
			return DatePerhapsTime{}, false
		}
		return DateValue(d), true
	}

	dt, ok := ParseCalendarDateTime(p.Value())
	if !ok {
		return DatePerhapsTime{}, false
	}
	if _, zoned := p.Param(paramTZID); zoned && !dt.IsUTC() {
		return DatePerhapsTime{}, false
	}
	return DateTimeValue(dt), true
}

// IsDate reports whether v holds a date.
func (v DatePerhapsTime) IsDate() bool { return v.isDate }

// Date returns the date held by v.
func (v DatePerhapsTime) Date() (Date, bool) { return v.date, v.isDate }

// DateTime returns the date-time held by v.
func (v DatePerhapsTime) DateTime() (CalendarDateTime, bool) { return v.dateTime, !v.isDate }

// In returns v in loc. Dates are read as midnight.
func (v DatePerhapsTime) In(loc *time.Location) time.Time {
	if v.isDate {
		return v.date.In(loc)
	}
	return v.dateTime.In(loc)
}

// Equal reports whether both values hold the same variant and fields.
func (v DatePerhapsTime) Equal(o DatePerhapsTime) bool {
	if v.isDate != o.isDate {
		return false
	}
	if v.isDate {
		return v.date == o.date
	}
	return v.dateTime.Equal(o.dateTime)
}

func (v DatePerhapsTime) String() string {
	if v.isDate {
		return v.date.String()
	}
	return v.dateTime.String()
}

// Property returns v as a property named key. Dates carry VALUE=DATE since
// DATE-TIME is the default for date valued properties.
func (v DatePerhapsTime) Property(key string) Property {
	if v.isDate {
		return BuildProperty(key, v.date.String()).Type(ValueDate).Build()
	}
	return NewProperty(key, v.dateTime.String())
}
