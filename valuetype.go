package ical

import (
	"strings"
)

// ValueType is the RFC 5545 value data type of a property.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3
type ValueType int

// Value types, in the order of RFC 5545 section 3.3.
const (
	ValueBinary ValueType = iota + 1
	ValueBoolean
	ValueCalAddress
	ValueDate
	ValueDateTime
	ValueDuration
	ValueFloat
	ValueInteger
	ValuePeriod
	ValueRecur
	ValueText
	ValueTime
	ValueURI
	ValueUTCOffset
)

var valueTypeNames = map[ValueType]string{
	ValueBinary:     "BINARY",
	ValueBoolean:    "BOOLEAN",
	ValueCalAddress: "CAL-ADDRESS",
	ValueDate:       "DATE",
	ValueDateTime:   "DATE-TIME",
	ValueDuration:   "DURATION",
	ValueFloat:      "FLOAT",
	ValueInteger:    "INTEGER",
	ValuePeriod:     "PERIOD",
	ValueRecur:      "RECUR",
	ValueText:       "TEXT",
	ValueTime:       "TIME",
	ValueURI:        "URI",
	ValueUTCOffset:  "UTC-OFFSET",
}

var valueTypesByName = func() map[string]ValueType {
	m := make(map[string]ValueType, len(valueTypeNames))
	for vt, name := range valueTypeNames {
		m[name] = vt
	}
	return m
}()

// defaultValueTypes maps property names to the value type they take when
// no VALUE parameter is present.
var defaultValueTypes = map[string]ValueType{
	// calendar properties
	"CALSCALE": ValueText,
	"METHOD":   ValueText,
	"PRODID":   ValueText,
	"VERSION":  ValueText,

	// descriptive
	"ATTACH":           ValueURI,
	"CATEGORIES":       ValueText,
	"CLASS":            ValueText,
	"COMMENT":          ValueText,
	"DESCRIPTION":      ValueText,
	"GEO":              ValueFloat,
	"LOCATION":         ValueText,
	"PERCENT-COMPLETE": ValueInteger,
	"PRIORITY":         ValueInteger,
	"RESOURCES":        ValueText,
	"STATUS":           ValueText,
	"SUMMARY":          ValueText,

	// date and time
	"COMPLETED": ValueDateTime,
	"DTEND":     ValueDateTime,
	"DUE":       ValueDateTime,
	"DTSTART":   ValueDateTime,
	"DURATION":  ValueDuration,
	"FREEBUSY":  ValuePeriod,
	"TRANSP":    ValueText,

	// time zone
	"TZID":         ValueText,
	"TZNAME":       ValueText,
	"TZOFFSETFROM": ValueUTCOffset,
	"TZOFFSETTO":   ValueUTCOffset,
	"TZURL":        ValueURI,

	// relationship
	"ATTENDEE":      ValueCalAddress,
	"CONTACT":       ValueText,
	"ORGANIZER":     ValueCalAddress,
	"RECURRENCE-ID": ValueDateTime,
	"RELATED-TO":    ValueText,
	"URL":           ValueURI,
	"UID":           ValueText,

	// recurrence
	"EXDATE": ValueDateTime,
	"EXRULE": ValueRecur,
	"RDATE":  ValueDateTime,
	"RRULE":  ValueRecur,

	// alarm
	"ACTION":  ValueText,
	"REPEAT":  ValueInteger,
	"TRIGGER": ValueDuration,

	// change management
	"CREATED":       ValueDateTime,
	"DTSTAMP":       ValueDateTime,
	"LAST-MODIFIED": ValueDateTime,
	"SEQUENCE":      ValueInteger,

	"REQUEST-STATUS": ValueText,

	// RFC 7986
	"NAME":  ValueText,
	"COLOR": ValueText,

	// RFC 9073
	"CALENDAR-ADDRESS":   ValueCalAddress,
	"LOCATION-TYPE":      ValueText,
	"PARTICIPANT-TYPE":   ValueText,
	"RESOURCE-TYPE":      ValueText,
	"STRUCTURED-DATA":    ValueText,
	"STYLED-DESCRIPTION": ValueText,

	// VVENUE draft
	"COUNTRY":          ValueText,
	"EXTENDED-ADDRESS": ValueText,
	"LOCALITY":         ValueText,
	"POSTAL-CODE":      ValueText,
	"REGION":           ValueText,
	"STREET-ADDRESS":   ValueText,
}

func (vt ValueType) String() string {
	if name, ok := valueTypeNames[vt]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseValueType returns the value type named by a VALUE parameter.
// Names are matched case-insensitively.
func ParseValueType(name string) (ValueType, bool) {
	vt, ok := valueTypesByName[strings.ToUpper(name)]
	return vt, ok
}

// DefaultValueType returns the value type a property takes when it carries
// no VALUE parameter. Unknown and extension properties are untyped.
func DefaultValueType(key string) (ValueType, bool) {
	vt, ok := defaultValueTypes[strings.ToUpper(key)]
	return vt, ok
}

// resolveValueType picks the explicit VALUE parameter when it names a known
// type, and falls back to the static table otherwise.
func resolveValueType(key string, params []Parameter) (ValueType, bool) {
	for _, param := range params {
		if strings.EqualFold(param.Key, paramValue) {
			if vt, ok := ParseValueType(param.Value); ok {
				return vt, true
			}
			break
		}
	}
	return DefaultValueType(key)
}

// escapeValue renders a logical value in its wire form. Only TEXT values
// are escaped.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.11
func escapeValue(vt ValueType, typed bool, value string) string {
	if !typed || vt != ValueText {
		return value
	}
	return EscapeText(value)
}

// unescapeValue is the inverse of escapeValue.
func unescapeValue(vt ValueType, typed bool, value string) string {
	if !typed || vt != ValueText {
		return value
	}
	return UnescapeText(value)
}

// EscapeText escapes backslash, comma, semicolon and newline.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, "\\,;\n") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case ',':
			b.WriteString(`\,`)
		case ';':
			b.WriteString(`\;`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// UnescapeText reverses EscapeText. `\N` is read as a newline as well;
// unknown escape sequences are kept verbatim.
func UnescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch next := s[i+1]; next {
		case '\\', ',', ';':
			b.WriteByte(next)
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(c)
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

// quoteParamValue wraps a parameter value in double quotes when it holds a
// character that would end the parameter. Lists already holding quoted
// items are written as they are.
func quoteParamValue(s string) string {
	if !strings.ContainsAny(s, ":;") || strings.Contains(s, `"`) {
		return s
	}
	return `"` + s + `"`
}

// isParamValue reports whether s can be written as a parameter value.
// Control characters other than HTAB are refused. Double quotes may only
// enclose the items of a list of two or more items, the form the parser
// keeps raw; plain items of such a list must not hold ":" or ";".
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.1
func isParamValue(s string) bool {
	for _, r := range s {
		if isControl(r) {
			return false
		}
	}
	if !strings.Contains(s, `"`) {
		return true
	}

	items := splitParamList(s)
	if len(items) < 2 {
		return false
	}
	for _, item := range items {
		if isQuoted(item) {
			if strings.Contains(item[1:len(item)-1], `"`) {
				return false
			}
			continue
		}
		if strings.ContainsAny(item, `":;`) {
			return false
		}
	}
	return true
}

// splitParamList splits s on the commas found outside of quotes.
func splitParamList(s string) []string {
	var (
		items   []string
		start   int
		inQuote bool
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				items = append(items, s[start:i])
				start = i + 1
			}
		}
	}
	return append(items, s[start:])
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// isControl matches CONTROL of RFC 5545: every ASCII control character
// except HTAB.
func isControl(r rune) bool {
	return r < 0x20 && r != '\t' || r == 0x7f
}
