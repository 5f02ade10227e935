package ical

import (
	"strings"
	"unicode/utf8"
)

// MaxLineOctets is the length limit of a physical content line, excluding
// the line break.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.1
const MaxLineOctets = 75

const foldSeparator = crlf + " "

// Unfold normalizes line endings, joins folded lines and returns the
// logical content lines. Empty lines are dropped.
//
// CRLF and bare LF are both accepted as line terminators. A terminator
// followed by a space or a horizontal tab is a fold and is removed together
// with that single whitespace character.
func Unfold(text string) []string {
	var (
		lines []string
		b     strings.Builder
	)
	b.Grow(128)

	flush := func() {
		if b.Len() > 0 {
			lines = append(lines, b.String())
			b.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\r' && i+1 < len(text) && text[i+1] == '\n':
			// CRLF is handled by the LF branch.
			continue
		case c == '\n':
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				i++
				continue
			}
			flush()
		default:
			b.WriteByte(c)
		}
	}
	flush()

	return lines
}

// Fold splits a logical line into physical lines of at most MaxLineOctets
// octets joined by CRLF and a single space. The result carries no
// trailing line break.
//
// A line is never split inside a UTF-8 sequence, and a continuation line
// does not start with whitespace when another split point is available.
func Fold(line string) string {
	if len(line) <= MaxLineOctets {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + len(line)/(MaxLineOctets-1)*len(foldSeparator))

	// The first line holds MaxLineOctets octets, the following ones one
	// octet less to leave room for the leading space.
	limit := MaxLineOctets
	for len(line) > limit {
		cut := foldPoint(line, limit)
		b.WriteString(line[:cut])
		b.WriteString(foldSeparator)
		line = line[cut:]
		limit = MaxLineOctets - 1
	}
	b.WriteString(line)

	return b.String()
}

// foldPoint returns the largest index in (0, limit] at which s may be
// split. len(s) must be greater than limit.
//
// Preferred is a rune boundary that is not followed by whitespace. If the
// whole window is whitespace, any rune boundary is used; unfolding removes
// exactly one whitespace character so the line still survives a round
// trip. Invalid UTF-8 without any rune start in the window is cut at limit.
func foldPoint(s string, limit int) int {
	for i := limit; i > 0; i-- {
		if utf8.RuneStart(s[i]) && !isFoldSpace(s[i]) {
			return i
		}
	}
	for i := limit; i > 0; i-- {
		if utf8.RuneStart(s[i]) {
			return i
		}
	}
	return limit
}

func isFoldSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
