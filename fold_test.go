package ical

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestUnfold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"crlf", "A:1\r\nB:2\r\n", []string{"A:1", "B:2"}},
		{"lf", "A:1\nB:2", []string{"A:1", "B:2"}},
		{"fold with space", "A:hel\r\n lo\r\n", []string{"A:hello"}},
		{"fold with tab", "A:hel\n\tlo\n", []string{"A:hello"}},
		{"only one blank removed", "A:hel\r\n  lo", []string{"A:hel lo"}},
		{"empty lines", "\r\n\r\nA:1\r\n\r\n", []string{"A:1"}},
		{"bare cr kept", "A:1\r2\r\n", []string{"A:1\r2"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unfold(tt.in))
		})
	}
}

func TestFoldShortLine(t *testing.T) {
	line := "SUMMARY:" + strings.Repeat("x", MaxLineOctets-8)
	assert.Equal(t, line, Fold(line))
}

func TestFoldLimits(t *testing.T) {
	line := "DESCRIPTION:" + strings.Repeat("abcdefghij", 30)
	lines := strings.Split(Fold(line), crlf)

	assert.Len(t, lines[0], MaxLineOctets)
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, " "))
		assert.LessOrEqual(t, len(l), MaxLineOctets)
	}
}

func TestFoldNeverSplitsRunes(t *testing.T) {
	// 3 octet runes that do not line up with the 75 octet limit
	line := "SUMMARY:" + strings.Repeat("日本語", 20)
	for _, l := range strings.Split(Fold(line), crlf) {
		assert.True(t, utf8.ValidString(l), "invalid segment %q", l)
		assert.LessOrEqual(t, len(l), MaxLineOctets)
	}
}

func TestFoldAvoidsLeadingWhitespace(t *testing.T) {
	line := strings.Repeat("a", MaxLineOctets) + " tail"
	folded := Fold(line)
	lines := strings.Split(folded, crlf)

	assert.Equal(t, strings.Repeat("a", MaxLineOctets-1), lines[0])
	assert.Equal(t, " a tail", lines[1])
}

func TestFoldRoundTrip(t *testing.T) {
	lines := []string{
		"",
		"SUMMARY:short",
		"DESCRIPTION:" + strings.Repeat("é", 100),
		"DESCRIPTION:" + strings.Repeat("a ", 100),
		"DESCRIPTION:" + strings.Repeat(" ", 200),
		"X:" + strings.Repeat("\t", 80) + "x",
		"SUMMARY:" + strings.Repeat("x", 66) + "€€€€€€",
		"SUMMARY:" + strings.Repeat("🎉", 50),
		"X:" + strings.Repeat("\xff", 100),
	}

	for _, line := range lines {
		got := Unfold(Fold(line))
		if line == "" {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, []string{line}, got)
	}
}
