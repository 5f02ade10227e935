package ical

import (
	"strings"
)

const paramValue = "VALUE"

// A Parameter is a key/value pair attached to a Property.
type Parameter struct {
	Key   string
	Value string
}

// NewParameter creates a Parameter.
func NewParameter(key, value string) Parameter {
	return Parameter{Key: key, Value: value}
}

// A Property is a single content line of a component.
//
// The value is kept in its logical, unescaped form. Escaping happens only
// when the property is written out. A Property is not modified after it
// has been built; use a PropertyBuilder to derive a new one.
type Property struct {
	key    string
	value  string
	params []Parameter
}

// NewProperty creates a Property without parameters.
func NewProperty(key, value string) Property {
	return Property{key: key, value: value}
}

// Key returns the property name.
func (p Property) Key() string { return p.key }

// Value returns the unescaped property value.
func (p Property) Value() string { return p.value }

// Params returns a copy of the parameters in the order they were added.
func (p Property) Params() []Parameter {
	if len(p.params) == 0 {
		return nil
	}
	params := make([]Parameter, len(p.params))
	copy(params, p.params)
	return params
}

// Param returns the parameter stored under key.
func (p Property) Param(key string) (Parameter, bool) {
	for _, param := range p.params {
		if param.Key == key {
			return param, true
		}
	}
	return Parameter{}, false
}

// ParamValue returns the value of the parameter stored under key.
func (p Property) ParamValue(key string) (string, bool) {
	param, ok := p.Param(key)
	return param.Value, ok
}

// ValueType resolves the value type of the property: a recognized VALUE
// parameter wins over the default type of the property name. The second
// result is false for untyped properties.
func (p Property) ValueType() (ValueType, bool) {
	return resolveValueType(p.key, p.params)
}

// Equal reports whether both properties have the same key, value and
// parameter set. Parameter order is not significant.
func (p Property) Equal(o Property) bool {
	if p.key != o.key || p.value != o.value || len(p.params) != len(o.params) {
		return false
	}
	for _, param := range p.params {
		v, ok := o.ParamValue(param.Key)
		if !ok || v != param.Value {
			return false
		}
	}
	return true
}

// String returns the folded, CRLF terminated content line.
func (p Property) String() string {
	var b strings.Builder
	_ = FormatProperty(&b, p)
	return b.String()
}

// withParam returns a copy of p with the parameter set. An existing
// parameter with the same key is replaced in place.
func (p Property) withParam(param Parameter) Property {
	params := make([]Parameter, 0, len(p.params)+1)
	replaced := false
	for _, existing := range p.params {
		if existing.Key == param.Key {
			params = append(params, param)
			replaced = true
			continue
		}
		params = append(params, existing)
	}
	if !replaced {
		params = append(params, param)
	}
	p.params = params
	return p
}

// A PropertyBuilder assembles a Property.
//
//	prop := ical.BuildProperty("DTSTART", "20250101").Type(ical.ValueDate).Build()
type PropertyBuilder struct {
	prop Property
}

// BuildProperty starts a builder for a property.
func BuildProperty(key, value string) *PropertyBuilder {
	return &PropertyBuilder{prop: NewProperty(key, value)}
}

// Derive starts a builder from an existing property.
func (p Property) Derive() *PropertyBuilder {
	return &PropertyBuilder{prop: Property{key: p.key, value: p.value, params: p.Params()}}
}

// Param sets a parameter. Parameters never repeat: the last value set for
// a key wins.
func (b *PropertyBuilder) Param(key, value string) *PropertyBuilder {
	b.prop = b.prop.withParam(NewParameter(key, value))
	return b
}

// Params sets several parameters in order.
func (b *PropertyBuilder) Params(params ...Parameter) *PropertyBuilder {
	for _, param := range params {
		b.prop = b.prop.withParam(param)
	}
	return b
}

// Type sets the VALUE parameter.
func (b *PropertyBuilder) Type(vt ValueType) *PropertyBuilder {
	return b.Param(paramValue, vt.String())
}

// Value replaces the property value.
func (b *PropertyBuilder) Value(value string) *PropertyBuilder {
	b.prop.value = value
	return b
}

// Build returns the finished Property. The builder may keep being used;
// later changes do not affect properties already built.
func (b *PropertyBuilder) Build() Property {
	return Property{key: b.prop.key, value: b.prop.value, params: b.prop.Params()}
}
