package ical

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDateTime(t *testing.T) {
	tests := []struct {
		in       string
		ok       bool
		utc      bool
		expected time.Time
	}{
		{"20250101T090000Z", true, true, time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"20250101T090000", true, false, time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"20250101", false, false, time.Time{}},
		{"2025-01-01T09:00:00Z", false, false, time.Time{}},
		{"20251301T090000", false, false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dt, ok := ParseCalendarDateTime(tt.in)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.utc, dt.IsUTC())
			assert.True(t, tt.expected.Equal(dt.Time()))
			assert.Equal(t, tt.in, dt.String())
		})
	}
}

func TestCalendarDateTimeIn(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	floating := FloatingDateTime(time.Date(2025, 6, 1, 9, 30, 0, 0, paris))
	assert.Equal(t, "20250601T093000", floating.String())
	assert.Equal(t, 9, floating.In(paris).Hour())

	utc := UTCDateTime(time.Date(2025, 6, 1, 9, 30, 15, 500, paris))
	assert.Equal(t, "20250601T073015Z", utc.String())
	assert.Equal(t, 9, utc.In(paris).Hour())
}

func TestDate(t *testing.T) {
	d, ok := ParseDate("20241231")
	require.True(t, ok)
	assert.Equal(t, NewDate(2024, time.December, 31), d)
	assert.Equal(t, "20250101", d.AddDays(1).String())
	assert.False(t, d.IsZero())

	_, ok = ParseDate("20241232")
	assert.False(t, ok)
}

func TestDatePerhapsTimeProperty(t *testing.T) {
	date := DateValue(NewDate(2025, time.January, 1))
	prop := date.Property("DTSTART")
	assert.Equal(t, "DTSTART;VALUE=DATE:20250101\r\n", prop.String())

	back, ok := DatePerhapsTimeOf(prop)
	require.True(t, ok)
	assert.True(t, date.Equal(back))

	dt := DateTimeValue(UTCDateTime(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)))
	prop = dt.Property("DTSTART")
	assert.Equal(t, "DTSTART:20250101T090000Z\r\n", prop.String())

	back, ok = DatePerhapsTimeOf(prop)
	require.True(t, ok)
	assert.True(t, dt.Equal(back))
	assert.False(t, dt.Equal(date))
}

func TestDatePerhapsTimeOfDateTypedGarbage(t *testing.T) {
	prop := BuildProperty("DTSTART", "20250101T090000").Type(ValueDate).Build()
	_, ok := DatePerhapsTimeOf(prop)
	assert.False(t, ok)
}
