package ical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want Duration
		d    time.Duration
	}{
		{"PT15M", Duration{Minutes: 15}, 15 * time.Minute},
		{"-PT15M", Duration{Negative: true, Minutes: 15}, -15 * time.Minute},
		{"+P1D", Duration{Days: 1}, 24 * time.Hour},
		{"P2W", Duration{Weeks: 2}, 14 * 24 * time.Hour},
		{"P1DT2H3M4S", Duration{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}, 26*time.Hour + 3*time.Minute + 4*time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.d, got.ToDuration())
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, in := range []string{"", "P", "PT", "15M", "P1Y", "P1.5D", "PT1H30", "-", "P1W2D", "P2DW"} {
		_, err := ParseDuration(in)
		assert.Error(t, err, in)
	}
}

func TestDurationString(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{}, "PT0S"},
		{Duration{Negative: true}, "PT0S"},
		{Duration{Negative: true, Minutes: 15}, "-PT15M"},
		{Duration{Weeks: 1}, "P1W"},
		{Duration{Weeks: 1, Hours: 2}, "P7DT2H"},
		{Duration{Days: 1, Seconds: 5}, "P1DT5S"},
		{Duration{Hours: 1, Minutes: 30}, "PT1H30M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}
}

func TestDurationOf(t *testing.T) {
	assert.Equal(t, Duration{Weeks: 2}, DurationOf(14*24*time.Hour))
	assert.Equal(t, Duration{Days: 8}, DurationOf(8*24*time.Hour))
	assert.Equal(t, Duration{Negative: true, Minutes: 15}, DurationOf(-15*time.Minute))
	assert.Equal(t, Duration{Hours: 1, Minutes: 1, Seconds: 1}, DurationOf(time.Hour+time.Minute+time.Second+time.Millisecond))

	d := 36*time.Hour + 17*time.Second
	parsed, err := ParseDuration(DurationOf(d).String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed.ToDuration())
}
