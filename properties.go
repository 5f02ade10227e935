package ical

// Properties stores the properties of a component.
//
// Several properties may share a key (RDATE, ATTENDEE, STRUCTURED-DATA...).
// Keys are kept in the order they were first inserted and the properties
// of a key in the order they were added. The zero value is ready to use.
type Properties struct {
	keys  []string
	byKey map[string][]Property
}

// Set replaces every property stored under p's key with p.
func (ps *Properties) Set(p Property) {
	if ps.byKey == nil {
		ps.byKey = make(map[string][]Property)
	}
	if _, ok := ps.byKey[p.key]; !ok {
		ps.keys = append(ps.keys, p.key)
	}
	ps.byKey[p.key] = []Property{p}
}

// Append adds p after the properties already stored under its key.
func (ps *Properties) Append(p Property) {
	if ps.byKey == nil {
		ps.byKey = make(map[string][]Property)
	}
	if _, ok := ps.byKey[p.key]; !ok {
		ps.keys = append(ps.keys, p.key)
	}
	ps.byKey[p.key] = append(ps.byKey[p.key], p)
}

// Remove drops every property stored under key. Removing an absent key is
// a no-op.
func (ps *Properties) Remove(key string) {
	if _, ok := ps.byKey[key]; !ok {
		return
	}
	delete(ps.byKey, key)
	for i, k := range ps.keys {
		if k == key {
			ps.keys = append(ps.keys[:i:i], ps.keys[i+1:]...)
			break
		}
	}
}

// Get returns the first property stored under key.
func (ps *Properties) Get(key string) (Property, bool) {
	l := ps.byKey[key]
	if len(l) == 0 {
		return Property{}, false
	}
	return l[0], true
}

// All returns a copy of the properties stored under key, in insertion
// order.
func (ps *Properties) All(key string) []Property {
	l := ps.byKey[key]
	if len(l) == 0 {
		return nil
	}
	out := make([]Property, len(l))
	copy(out, l)
	return out
}

// Has reports whether at least one property is stored under key.
func (ps *Properties) Has(key string) bool {
	return len(ps.byKey[key]) > 0
}

// Keys returns the stored keys in first-insertion order.
func (ps *Properties) Keys() []string {
	keys := make([]string, len(ps.keys))
	copy(keys, ps.keys)
	return keys
}

// Len returns the number of stored properties.
func (ps *Properties) Len() int {
	n := 0
	for _, l := range ps.byKey {
		n += len(l)
	}
	return n
}

// Each calls fn for every property in output order and stops at the first
// error.
func (ps *Properties) Each(fn func(Property) error) error {
	for _, key := range ps.keys {
		for _, p := range ps.byKey[key] {
			if err := fn(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// List returns every property in output order.
func (ps *Properties) List() []Property {
	out := make([]Property, 0, ps.Len())
	for _, key := range ps.keys {
		out = append(out, ps.byKey[key]...)
	}
	return out
}

func (ps *Properties) clone() Properties {
	c := Properties{keys: ps.Keys()}
	if ps.byKey != nil {
		c.byKey = make(map[string][]Property, len(ps.byKey))
		for k, l := range ps.byKey {
			c.byKey[k] = append([]Property(nil), l...)
		}
	}
	return c
}
