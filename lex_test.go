package ical

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	ical, err := os.ReadFile("fixtures/example.ics")
	require.NoError(t, err)

	for _, line := range Unfold(string(ical)) {
		if _, _, ok := delimiter(line); ok {
			continue
		}

		lexer := lex(line)
		for {
			item := lexer.nextItem()

			if item.typ == itemEOF {
				break
			}

			if item.typ == itemError {
				t.Errorf("%s: %v", line, item)
			}
		}
	}
}

func collect(input string) []item {
	var items []item
	l := lex(input)
	for {
		item := l.nextItem()
		items = append(items, item)
		if item.typ == itemEOF || item.typ == itemError {
			return items
		}
	}
}

func TestLexItems(t *testing.T) {
	tests := []struct {
		input string
		want  []item
	}{
		{
			input: "SUMMARY:Hello",
			want: []item{
				{itemName, 0, "SUMMARY"},
				{itemColon, 7, ":"},
				{itemValue, 8, "Hello"},
				{itemEOF, 13, ""},
			},
		},
		{
			input: `ATTENDEE;CN="Doe; John";RSVP=TRUE:mailto:a@b.c`,
			want: []item{
				{itemName, 0, "ATTENDEE"},
				{itemSemiColon, 8, ";"},
				{itemParamName, 9, "CN"},
				{itemEqual, 11, "="},
				{itemParamValue, 12, `"Doe; John"`},
				{itemSemiColon, 23, ";"},
				{itemParamName, 24, "RSVP"},
				{itemEqual, 28, "="},
				{itemParamValue, 29, "TRUE"},
				{itemColon, 33, ":"},
				{itemValue, 34, "mailto:a@b.c"},
				{itemEOF, 46, ""},
			},
		},
		{
			input: "X-FLAG;EMPTY:",
			want: []item{
				{itemName, 0, "X-FLAG"},
				{itemSemiColon, 6, ";"},
				{itemParamName, 7, "EMPTY"},
				{itemColon, 12, ":"},
				{itemValue, 13, ""},
				{itemEOF, 13, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.input))
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{":value", 0},
		{"BEGIN;X=1:VEVENT", 0},
		{"SUMMARY", 7},
		{"SUMMARY;=x:y", 8},
		{`SUMMARY;CN="open:y`, 11},
		{"SUM MARY:x", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			items := collect(tt.input)
			last := items[len(items)-1]
			assert.Equal(t, itemError, last.typ, "items: %v", items)
			assert.Equal(t, tt.pos, last.pos)
		})
	}
}
