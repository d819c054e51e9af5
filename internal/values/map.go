package values

import (
	"iter"
	"slices"
)

// Map is a string-keyed mapping that remembers insertion order.
// The zero value is not usable; create maps with New or Parse.
type Map struct {
	keys  []string
	items map[string]any
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		keys:  []string{},
		items: map[string]any{},
	}
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// All iterates over key/value pairs in order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}

		for _, k := range m.keys {
			if !yield(k, m.items[k]) {
				return
			}
		}
	}
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}

	_, ok := m.items[key]

	return ok
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.items[key]

	return v, ok
}

// String returns the value under key when it is a string.
func (m *Map) String(key string) (string, bool) {
	v, _ := m.Get(key)
	s, ok := v.(string)

	return s, ok
}

// List returns the value under key when it is a list.
func (m *Map) List(key string) ([]any, bool) {
	v, _ := m.Get(key)
	l, ok := v.([]any)

	return l, ok
}

// Map returns the value under key when it is a nested mapping.
func (m *Map) Map(key string) (*Map, bool) {
	v, _ := m.Get(key)
	n, ok := v.(*Map)

	return n, ok
}

// Set stores value under key. A new key is appended after the existing ones;
// an existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.items[key] = value
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}

	delete(m.items, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })

	return true
}

// Clone returns a deep copy of m. Nested maps and lists are copied too.
func (m *Map) Clone() *Map {
	out := &Map{
		keys:  make([]string, 0, m.Len()),
		items: make(map[string]any, m.Len()),
	}

	for k, v := range m.All() {
		out.keys = append(out.keys, k)
		out.items[k] = Clone(v)
	}

	return out
}

// Clone deep-copies a decoded value. Scalars are returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}

		return out
	default:
		return v
	}
}
