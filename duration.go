package ical

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	isoduration "github.com/ChannelMeter/iso8601duration"
)

// Duration is a DURATION value.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.6
type Duration struct {
	Negative bool
	Weeks    int
	Days     int
	Hours    int
	Minutes  int
	Seconds  int
}

// DurationOf converts d, truncated to seconds. Whole weeks are written as
// weeks only when no day or time part remains.
func DurationOf(d time.Duration) Duration {
	var dur Duration
	if d < 0 {
		dur.Negative = true
		d = -d
	}

	secs := int64(d / time.Second)
	const day = 24 * 60 * 60
	if secs > 0 && secs%(7*day) == 0 {
		dur.Weeks = int(secs / (7 * day))
		return dur
	}
	dur.Days = int(secs / day)
	secs %= day
	dur.Hours = int(secs / 3600)
	secs %= 3600
	dur.Minutes = int(secs / 60)
	dur.Seconds = int(secs % 60)
	return dur
}

// ParseDuration parses a signed DURATION value such as "-PT15M" or "P1W".
func ParseDuration(s string) (Duration, error) {
	var dur Duration

	rest := s
	switch {
	case strings.HasPrefix(rest, "-"):
		dur.Negative = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}
	if !isDurationText(rest) {
		return Duration{}, fmt.Errorf("ical: invalid duration %q", s)
	}

	d, err := isoduration.FromString(rest)
	if err != nil {
		return Duration{}, fmt.Errorf("ical: invalid duration %q: %w", s, err)
	}
	if d.Years != 0 {
		return Duration{}, fmt.Errorf("ical: invalid duration %q: years are not allowed", s)
	}

	dur.Weeks = d.Weeks
	dur.Days = d.Days
	dur.Hours = d.Hours
	dur.Minutes = d.Minutes
	dur.Seconds = d.Seconds
	return dur, nil
}

// isDurationText checks the unsigned form: "P" followed by digits and
// designators, ending on a designator. Weeks stand alone.
func isDurationText(s string) bool {
	if len(s) < 3 || s[0] != 'P' || s == "PT" {
		return false
	}
	if i := strings.IndexByte(s, 'W'); i >= 0 && i != len(s)-1 {
		return false
	}
	if strings.HasSuffix(s, "W") && strings.ContainsAny(s[1:len(s)-1], "DTHMS") {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && !strings.ContainsRune("WDTHMS", rune(c)) {
			return false
		}
	}
	return strings.ContainsRune("WDHMS", rune(s[len(s)-1]))
}

// ToDuration returns the length of d. Days count as 24 hours.
func (d Duration) ToDuration() time.Duration {
	iso := isoduration.Duration{
		Weeks:   d.Weeks,
		Days:    d.Days,
		Hours:   d.Hours,
		Minutes: d.Minutes,
		Seconds: d.Seconds,
	}
	td := iso.ToDuration()
	if d.Negative {
		return -td
	}
	return td
}

// IsZero reports whether d has no length.
func (d Duration) IsZero() bool {
	return d.Weeks == 0 && d.Days == 0 && d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}

// String formats d as an RFC 5545 duration. A zero duration is "PT0S".
// Weeks are written as days when a day or time part is present.
func (d Duration) String() string {
	if d.Weeks != 0 && (d.Days != 0 || d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0) {
		d.Days += 7 * d.Weeks
		d.Weeks = 0
	}

	var b strings.Builder
	if d.Negative && !d.IsZero() {
		b.WriteByte('-')
	}
	b.WriteByte('P')

	if d.IsZero() {
		b.WriteString("T0S")
		return b.String()
	}

	if d.Weeks != 0 {
		b.WriteString(strconv.Itoa(d.Weeks))
		b.WriteByte('W')
	}
	if d.Days != 0 {
		b.WriteString(strconv.Itoa(d.Days))
		b.WriteByte('D')
	}
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		b.WriteByte('T')
		if d.Hours != 0 {
			b.WriteString(strconv.Itoa(d.Hours))
			b.WriteByte('H')
		}
		if d.Minutes != 0 {
			b.WriteString(strconv.Itoa(d.Minutes))
			b.WriteByte('M')
		}
		if d.Seconds != 0 {
			b.WriteString(strconv.Itoa(d.Seconds))
			b.WriteByte('S')
		}
	}
	return b.String()
}
