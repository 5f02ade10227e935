package ical

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// item represents a token or text string returned from the scanner.
type item struct {
	typ itemType // The type of this item.
	pos int      // The starting position, in bytes, of this item in the input string.
	val string   // The value of this item.
}

func (i item) String() string {
	switch {
	case i.typ == itemEOF:
		return "EOF"
	case i.typ == itemError:
		return i.val
	case len(i.val) > 10:
		return fmt.Sprintf("%.10q...", i.val)
	}
	return fmt.Sprintf("%q", i.val)
}

// itemType identifies the type of lex items.
type itemType int

const (
	// Special tokens
	itemError itemType = iota
	itemEOF

	// Literals
	itemName
	itemParamName
	itemParamValue
	itemValue

	// Misc
	itemColon     // :
	itemSemiColon // ;
	itemEqual     // =
)

const eof = -1

const (
	crlf  = "\r\n"
	begin = "BEGIN"
	end   = "END"
)

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the scanner. It scans a single unfolded
// content line.
type lexer struct {
	input string  // the string being scanned
	state stateFn // the next lexing function to enter
	start int     // start position of this item
	pos   int     // current position in the input
	width int     // width of last rune read from input
	items []item  // scanned items not yet returned
}

// lex creates a new scanner for the input string.
func lex(input string) *lexer {
	return &lexer{
		input: input,
		state: lexName,
	}
}

// emit queues an item for the client.
func (l *lexer) emit(t itemType) {
	l.items = append(l.items, item{t, l.start, l.input[l.start:l.pos]})
	l.start = l.pos
}

// ignore skips over the pending input before this point.
func (l *lexer) ignore() {
	l.start = l.pos
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += l.width
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
}

// errorf queues an error token and terminates the scan by returning a nil
// state.
func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.items = append(l.items, item{itemError, l.start, fmt.Sprintf(format, args...)})
	return nil
}

// nextItem returns the next item from the input, running state functions
// until one is available. Once the scan is over it keeps returning EOF.
func (l *lexer) nextItem() item {
	for len(l.items) == 0 {
		if l.state == nil {
			return item{itemEOF, l.pos, ""}
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// State functions

// lexName scans the name in the content line
//
// name       = iana-token / x-name
// iana-token = 1*(ALPHA / DIGIT / "-") ; iCalendar identifier registered with IANA
// x-name     = "X-" [vendorid "-"] 1*(ALPHA / DIGIT / "-") ; Reserved for experimental use.
// vendorid   = 3*(ALPHA / DIGIT) ; Vendor identification
//
// ",", "/" and "_" are accepted as well since they show up in the wild.
func lexName(l *lexer) stateFn {
	for isName(l.next()) {
		// absorb
	}
	l.backup()

	name := l.input[l.start:l.pos]
	if name == "" {
		return l.errorf("missing property name")
	}
	if isReserved(name) {
		return l.errorf("%s is not a property name", name)
	}

	l.emit(itemName)
	return lexContentLine
}

// lexContentLine scans the delimiter following a name or a param-value.
func lexContentLine(l *lexer) stateFn {
	switch r := l.next(); {
	case r == ';':
		l.emit(itemSemiColon)
		return lexParamName
	case r == ':':
		l.emit(itemColon)
		return lexValue
	case r == eof:
		return l.errorf("missing \":\" before the value")
	default:
		return l.errorf("unexpected character %#U", r)
	}
}

// lexParamName scans the param-name in the content line
//
// param-name = iana-token / x-name
//
// Blanks around the name are skipped. A parameter without "=" is a
// parameter without value.
func lexParamName(l *lexer) stateFn {
	l.skipBlanks()

	for isParamName(l.next()) {
		// absorb
	}
	l.backup()

	if l.pos == l.start {
		return l.errorf("missing parameter name")
	}
	l.emit(itemParamName)

	l.skipBlanks()
	if l.peek() == '=' {
		l.next()
		l.emit(itemEqual)
		return lexParamValue
	}
	return lexContentLine
}

// lexParamValue scans the param-value in the content line
//
// param-value   = paramtext / quoted-string
// paramtext     = *SAFE-CHAR
// quoted-string = DQUOTE *QSAFE-CHAR DQUOTE
// QSAFE-CHAR    = WSP / %x21 / %x23-7E / NON-US-ASCII ; Any character except CONTROL and DQUOTE
//
// The value ends at the first ";" or ":" outside of quotes. Commas are part
// of the value, so a list of values is returned as a single item.
func lexParamValue(l *lexer) stateFn {
	for {
		switch r := l.next(); {
		case r == '"':
			for {
				r := l.next()
				if r == '"' {
					break
				}
				if r == eof || !isQSafeChar(r) {
					return l.errorf("missing closing quote in parameter value")
				}
			}
		case r == ';' || r == ':' || r == eof:
			l.backup()
			l.emit(itemParamValue)
			return lexContentLine
		case unicode.IsControl(r) && r != '\t':
			return l.errorf("control character %#U in parameter value", r)
		}
	}
}

// lexValue scans the value in the content line
//
// value      = *VALUE-CHAR
// VALUE-CHAR = WSP / %x21-7E / NON-US-ASCII ; Any textual character
//
// The value is kept raw; its escaping depends on the value type.
func lexValue(l *lexer) stateFn {
	l.pos = len(l.input)
	l.emit(itemValue)
	l.emit(itemEOF)
	return nil
}

func (l *lexer) skipBlanks() {
	for l.peek() == ' ' {
		l.next()
	}
	l.ignore()
}

// rune helpers

func isName(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == ',' || r == '/'
}

func isParamName(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

func isQSafeChar(r rune) bool {
	return r == '\t' || !unicode.IsControl(r) && r != '"'
}

// isReserved reports whether name delimits a component.
func isReserved(name string) bool {
	return strings.EqualFold(name, begin) || strings.EqualFold(name, end)
}
