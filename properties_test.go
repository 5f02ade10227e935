package ical

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesMultiplicity(t *testing.T) {
	var ps Properties

	for i := 0; i < 5; i++ {
		ps.Append(NewProperty("RDATE", fmt.Sprint(i)))
	}
	all := ps.All("RDATE")
	require.Len(t, all, 5)
	for i, p := range all {
		assert.Equal(t, fmt.Sprint(i), p.Value())
	}

	first, ok := ps.Get("RDATE")
	require.True(t, ok)
	assert.Equal(t, "0", first.Value())

	ps.Set(NewProperty("RDATE", "only"))
	all = ps.All("RDATE")
	require.Len(t, all, 1)
	assert.Equal(t, "only", all[0].Value())

	ps.Remove("RDATE")
	assert.Empty(t, ps.All("RDATE"))
	assert.False(t, ps.Has("RDATE"))
	assert.Equal(t, 0, ps.Len())

	ps.Remove("ABSENT")
}

func TestPropertiesKeyOrder(t *testing.T) {
	var ps Properties
	ps.Set(NewProperty("UID", "1"))
	ps.Append(NewProperty("ATTENDEE", "a"))
	ps.Set(NewProperty("SUMMARY", "s"))
	ps.Append(NewProperty("ATTENDEE", "b"))
	ps.Set(NewProperty("UID", "2"))

	assert.Equal(t, []string{"UID", "ATTENDEE", "SUMMARY"}, ps.Keys())

	var values []string
	for _, p := range ps.List() {
		values = append(values, p.Value())
	}
	assert.Equal(t, []string{"2", "a", "b", "s"}, values)

	ps.Remove("UID")
	ps.Set(NewProperty("UID", "3"))
	assert.Equal(t, []string{"ATTENDEE", "SUMMARY", "UID"}, ps.Keys())
}

func TestPropertiesEachStops(t *testing.T) {
	var ps Properties
	ps.Append(NewProperty("A", "1"))
	ps.Append(NewProperty("B", "2"))

	errStop := errors.New("stop")
	var seen []string
	err := ps.Each(func(p Property) error {
		seen = append(seen, p.Key())
		return errStop
	})
	assert.Equal(t, errStop, err)
	assert.Equal(t, []string{"A"}, seen)
}

func TestPropertiesCopies(t *testing.T) {
	var ps Properties
	ps.Append(NewProperty("A", "1"))

	all := ps.All("A")
	all[0] = NewProperty("A", "changed")
	first, _ := ps.Get("A")
	assert.Equal(t, "1", first.Value())

	clone := ps.clone()
	clone.Append(NewProperty("A", "2"))
	assert.Len(t, ps.All("A"), 1)
}

func TestPropertyBuilder(t *testing.T) {
	b := BuildProperty("ATTENDEE", "mailto:a@b.c").Param("ROLE", "CHAIR")
	first := b.Build()
	second := b.Param("RSVP", "TRUE").Build()

	assert.Len(t, first.Params(), 1)
	assert.Len(t, second.Params(), 2)

	derived := second.Derive().Param("ROLE", "OPT-PARTICIPANT").Value("mailto:x@y.z").Build()
	role, _ := derived.ParamValue("ROLE")
	assert.Equal(t, "OPT-PARTICIPANT", role)
	role, _ = second.ParamValue("ROLE")
	assert.Equal(t, "CHAIR", role)
	assert.Equal(t, "mailto:x@y.z", derived.Value())
}

func TestPropertyEqualIgnoresParamOrder(t *testing.T) {
	a := BuildProperty("X", "v").Param("A", "1").Param("B", "2").Build()
	b := BuildProperty("X", "v").Param("B", "2").Param("A", "1").Build()
	c := BuildProperty("X", "v").Param("B", "2").Build()

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewProperty("X", "w")))
}

func TestStructuredDataOrder(t *testing.T) {
	comp := NewComponent(CompEvent)
	comp.AddStructuredData("A")
	comp.AddStructuredData("B")

	all := comp.AllStructuredData()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Value())
	assert.Equal(t, "B", all[1].Value())
}
