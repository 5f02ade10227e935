package ical

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrNoCalendar is returned by Parse when the input holds no VCALENDAR.
var ErrNoCalendar = errors.New("ical: no VCALENDAR found")

// A ParseOption configures parsing.
type ParseOption func(*parser)

// WithErrorHandler makes the parser skip content lines that fail to parse
// and report them to fn instead of aborting. Unbalanced BEGIN/END lines are
// reported and skipped as well; components left open at the end of the
// input are closed.
func WithErrorHandler(fn func(*SyntaxError)) ParseOption {
	return func(p *parser) {
		p.onError = fn
	}
}

type parser struct {
	lex       *lexer
	token     [2]item
	peekCount int
	line      int
	input     string
	onError   func(*SyntaxError)
}

// Parse transforms the raw iCalendar into a Calendar. The first VCALENDAR
// of the input is returned.
// It's up to the caller to close the io.Reader.
func Parse(r io.Reader, opts ...ParseOption) (*Calendar, error) {
	cals, err := ParseAll(r, opts...)
	if err != nil {
		return nil, err
	}
	if len(cals) == 0 {
		return nil, ErrNoCalendar
	}
	return cals[0], nil
}

// ParseAll returns every VCALENDAR of the input.
func ParseAll(r io.Reader, opts ...ParseOption) ([]*Calendar, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	comps, err := newParser(opts).parse(string(b))
	if err != nil {
		return nil, err
	}

	cals := make([]*Calendar, 0, len(comps))
	for _, comp := range comps {
		if comp.Name != CompCalendar {
			return nil, &SyntaxError{Msg: fmt.Sprintf("found BEGIN:%s, expected BEGIN:%s", comp.Name, CompCalendar)}
		}
		cals = append(cals, &Calendar{comp})
	}
	return cals, nil
}

// ParseComponent parses text holding exactly one BEGIN/END block.
func ParseComponent(text string, opts ...ParseOption) (*Component, error) {
	comps, err := newParser(opts).parse(text)
	if err != nil {
		return nil, err
	}
	if len(comps) != 1 {
		return nil, &SyntaxError{Msg: fmt.Sprintf("found %d components, expected 1", len(comps))}
	}
	return comps[0], nil
}

// ParseProperty parses a single content line, folded or not. The value of
// TEXT typed properties is unescaped.
func ParseProperty(line string) (Property, error) {
	lines := Unfold(line)
	switch len(lines) {
	case 0:
		return Property{}, &SyntaxError{Msg: "empty content line"}
	case 1:
	default:
		return Property{}, &SyntaxError{Line: 2, Input: lines[1], Msg: "more than one content line"}
	}
	p := newParser(nil)
	p.input = lines[0]
	if err := p.checkEncoding(lines[0]); err != nil {
		return Property{}, err
	}
	return p.parseProperty(lines[0])
}

// ParseParameters parses a parameter list such as ";ROLE=CHAIR;CN=Jane".
func ParseParameters(s string) ([]Parameter, error) {
	p := newParser(nil)
	p.input = s
	if err := p.checkEncoding(s); err != nil {
		return nil, err
	}
	// The trailing colon lets the content line states finish the list.
	p.lex = &lexer{input: s + ":", state: lexContentLine}

	prop, err := p.scanParams(Property{})
	if err != nil {
		return nil, err
	}
	if item := p.next(); item.typ != itemColon || item.pos != len(s) {
		return nil, p.errorf(item, "unexpected %s in parameter list", item)
	}
	return prop.params, nil
}

func newParser(opts []ParseOption) *parser {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// next returns the next token.
func (p *parser) next() item {
	if p.peekCount > 0 {
		p.peekCount--
	} else {
		p.token[0] = p.lex.nextItem()
	}
	return p.token[p.peekCount]
}

// backup backs the input stream up one token.
func (p *parser) backup() {
	p.peekCount++
}

// errorf builds a SyntaxError positioned at the item.
func (p *parser) errorf(i item, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Line:   p.line,
		Offset: i.pos,
		Input:  p.input,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// checkEncoding returns a SyntaxError pointing at the first byte of s that
// is not valid UTF-8.
func (p *parser) checkEncoding(s string) *SyntaxError {
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && w == 1 {
			serr := p.errorf(item{pos: i}, "invalid UTF-8 byte %#02x", s[i])
			serr.Err = ErrInvalidEncoding
			return serr
		}
		i += w
	}
	return nil
}

// fail reports err to the error handler. It returns err when parsing must
// stop.
func (p *parser) fail(err *SyntaxError) error {
	if p.onError == nil {
		return err
	}
	p.onError(err)
	return nil
}

// parse assembles the components of text.
func (p *parser) parse(text string) ([]*Component, error) {
	var (
		roots []*Component
		stack []*Component
	)

	lines := Unfold(text)
	for i, line := range lines {
		p.line = i + 1
		p.input = line

		if serr := p.checkEncoding(line); serr != nil {
			if err := p.fail(serr); err != nil {
				return nil, err
			}
			continue
		}

		if name, isBegin, ok := delimiter(line); ok {
			if name == "" {
				if err := p.fail(p.errorf(item{pos: len(line)}, "missing component name")); err != nil {
					return nil, err
				}
				continue
			}

			if isBegin {
				stack = append(stack, NewComponent(name))
				continue
			}

			if len(stack) == 0 || stack[len(stack)-1].Name != name {
				expected := "BEGIN:" + name
				if len(stack) > 0 {
					expected = "END:" + stack[len(stack)-1].Name
				}
				if err := p.fail(p.errorf(item{}, "found END:%s, expected %s", name, expected)); err != nil {
					return nil, err
				}
				continue
			}

			comp := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				roots = append(roots, comp)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, comp)
			}
			continue
		}

		prop, err := p.parseProperty(line)
		if err != nil {
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				return nil, err
			}
			if err := p.fail(serr); err != nil {
				return nil, err
			}
			continue
		}

		if len(stack) == 0 {
			if err := p.fail(p.errorf(item{}, "property %s outside of a component", prop.key)); err != nil {
				return nil, err
			}
			continue
		}
		stack[len(stack)-1].Properties.Append(prop)
	}

	for len(stack) > 0 {
		comp := stack[len(stack)-1]
		if err := p.fail(&SyntaxError{Line: len(lines), Msg: "missing END:" + comp.Name}); err != nil {
			return nil, err
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			roots = append(roots, comp)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, comp)
		}
	}

	return roots, nil
}

// delimiter recognizes BEGIN:<name> and END:<name> lines. Component names
// are upper-cased.
func delimiter(line string) (name string, isBegin, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", false, false
	}
	switch key := line[:i]; {
	case strings.EqualFold(key, begin):
		isBegin = true
	case strings.EqualFold(key, end):
	default:
		return "", false, false
	}
	return strings.ToUpper(strings.TrimSpace(line[i+1:])), isBegin, true
}

// parseProperty parses a content-line
//
// contentline = name *(";" param ) ":" value CRLF
func (p *parser) parseProperty(line string) (Property, error) {
	p.input = line
	p.lex = lex(line)
	p.peekCount = 0

	name := p.next()
	if name.typ == itemError {
		return Property{}, p.errorf(name, "%s", name.val)
	}

	prop, err := p.scanParams(Property{key: name.val})
	if err != nil {
		return Property{}, err
	}

	if item := p.next(); item.typ != itemColon {
		if item.typ == itemError {
			return Property{}, p.errorf(item, "%s", item.val)
		}
		return Property{}, p.errorf(item, "found %s, expected \":\"", item)
	}

	value := p.next()
	if value.typ != itemValue {
		return Property{}, p.errorf(value, "found %s, expected a value", value)
	}

	vt, typed := prop.ValueType()
	prop.value = unescapeValue(vt, typed, value.val)
	return prop, nil
}

// scanParams parses a list of param inside a content-line
//
// param = param-name "=" param-value *("," param-value)
func (p *parser) scanParams(prop Property) (Property, error) {
	for {
		item := p.next()

		if item.typ != itemSemiColon {
			p.backup()
			return prop, nil
		}

		paramName := p.next()
		if paramName.typ == itemError {
			return prop, p.errorf(paramName, "%s", paramName.val)
		}
		if paramName.typ != itemParamName {
			return prop, p.errorf(paramName, "found %s, expected a param-name", paramName)
		}

		param := NewParameter(paramName.val, "")
		if item := p.next(); item.typ == itemEqual {
			paramValue := p.next()
			if paramValue.typ == itemError {
				return prop, p.errorf(paramValue, "%s", paramValue.val)
			}
			if paramValue.typ != itemParamValue {
				return prop, p.errorf(paramValue, "found %s, expected a param-value", paramValue)
			}
			param.Value = unquote(paramValue.val)
		} else {
			p.backup()
		}

		prop = prop.withParam(param)
	}
}

// unquote strips the quotes of a value made of a single quoted string.
// Lists of quoted strings are kept as they are.
func unquote(s string) string {
	if isQuoted(s) && strings.Count(s, `"`) == 2 {
		return s[1 : len(s)-1]
	}
	return s
}
