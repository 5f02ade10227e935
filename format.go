package ical

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

// Format writes the calendar to the provided io.Writer.
func Format(w io.Writer, cal *Calendar) error {
	return FormatComponent(w, cal.Component)
}

// FormatComponent writes comp and its nested components. Properties are
// written in key insertion order, then the nested components in order.
func FormatComponent(w io.Writer, comp *Component) error {
	if _, err := io.WriteString(w, begin+":"+comp.Name+crlf); err != nil {
		return err
	}

	if err := formatPropertiesList(w, &comp.Properties); err != nil {
		return err
	}

	for _, child := range comp.Children {
		if err := FormatComponent(w, child); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, end+":"+comp.Name+crlf)
	return err
}

func formatPropertiesList(w io.Writer, props *Properties) error {
	return props.Each(func(prop Property) error {
		return FormatProperty(w, prop)
	})
}

// FormatProperty writes prop as a folded content line terminated by CRLF.
// Parameter values holding ":" or ";" are quoted and TEXT values are
// escaped. Nothing is written when prop cannot be represented as a single
// content line.
func FormatProperty(w io.Writer, prop Property) error {
	if err := checkEncoding(prop); err != nil {
		return err
	}
	vt, typed := prop.ValueType()
	if err := checkProperty(prop, typed && vt == ValueText); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(prop.key)

	for _, param := range prop.params {
		buf.WriteString(";")
		buf.WriteString(param.Key)
		if param.Value == "" {
			continue
		}
		buf.WriteString("=")
		buf.WriteString(quoteParamValue(param.Value))
	}

	buf.WriteString(":")
	buf.WriteString(escapeValue(vt, typed, prop.value))

	line := Fold(buf.String())
	buf.Reset()
	buf.WriteString(line)
	buf.WriteString(crlf)

	_, err := buf.WriteTo(w)
	return err
}

func checkEncoding(prop Property) error {
	if !utf8.ValidString(prop.key) || !utf8.ValidString(prop.value) {
		return fmt.Errorf("%w: property %s", ErrInvalidEncoding, prop.key)
	}
	for _, param := range prop.params {
		if !utf8.ValidString(param.Key) || !utf8.ValidString(param.Value) {
			return fmt.Errorf("%w: parameter %s of property %s", ErrInvalidEncoding, param.Key, prop.key)
		}
	}
	return nil
}

// checkProperty rejects keys and values that would change the structure of
// the content line once written.
func checkProperty(prop Property, text bool) error {
	if !isNameToken(prop.key, isName) || isReserved(prop.key) {
		return fmt.Errorf("%w: invalid property name %q", ErrInvalidValue, prop.key)
	}
	for _, param := range prop.params {
		if !isNameToken(param.Key, isParamName) {
			return fmt.Errorf("%w: invalid parameter name %q of property %s", ErrInvalidValue, param.Key, prop.key)
		}
		if !isParamValue(param.Value) {
			return fmt.Errorf("%w: parameter %s of property %s", ErrInvalidValue, param.Key, prop.key)
		}
	}
	for _, r := range prop.value {
		// TEXT escapes LF; every other control character is refused.
		if r == '\n' && text {
			continue
		}
		if isControl(r) {
			return fmt.Errorf("%w: control character %#U in property %s", ErrInvalidValue, r, prop.key)
		}
	}
	return nil
}

func isNameToken(s string, valid func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !valid(r) {
			return false
		}
	}
	return true
}
