package ical

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("ical: syntax error")

	// ErrInvalidEncoding is returned when a content line is not valid
	// UTF-8.
	ErrInvalidEncoding = errors.New("ical: invalid UTF-8")

	// ErrInvalidValue is returned when a property holds a character its
	// content line cannot carry, such as a line break in a non-TEXT value
	// or a double quote in a parameter value.
	ErrInvalidValue = errors.New("ical: value cannot be written")
)

// A SyntaxError describes a content line that does not match the
// iCalendar grammar.
type SyntaxError struct {
	Line   int    // 1-based index of the logical (unfolded) line, 0 if unknown
	Offset int    // byte offset of the offending input within the line
	Input  string // the logical line
	Msg    string
	Err    error // underlying cause, if any
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("ical: line %d, offset %d: %s near %s", e.Line, e.Offset, e.Msg, e.near())
	}
	return fmt.Sprintf("ical: offset %d: %s near %s", e.Offset, e.Msg, e.near())
}

// Is makes errors.Is(err, ErrSyntax) hold.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Unwrap returns the underlying cause.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Near returns the input starting at the offending position.
func (e *SyntaxError) Near() string {
	if e.Offset < 0 || e.Offset > len(e.Input) {
		return e.Input
	}
	return e.Input[e.Offset:]
}

func (e *SyntaxError) near() string {
	s := e.Near()
	if len(s) > 20 {
		return fmt.Sprintf("%.20q...", s)
	}
	return fmt.Sprintf("%q", s)
}
