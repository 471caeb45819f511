package values

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Map is an insertion ordered string keyed mapping. It is used both for attribute bags and
// for nested property sets such as custom properties.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates a map from alternating key, value pairs. Later duplicates replace the
// value but keep the position of the first occurrence.
func NewMap(pairs ...KeyValue) *Map {
	m := &Map{values: make(map[string]any, len(pairs))}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

type KeyValue struct {
	Key   string
	Value any
}

func KV(key string, value any) KeyValue {
	return KeyValue{Key: key, Value: value}
}

// FromGoMap copies an unordered Go map. Keys are sorted since Go maps carry no order.
func FromGoMap(src map[string]any) *Map {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := &Map{keys: keys, values: make(map[string]any, len(src))}
	for k, v := range src {
		m.values[k] = v
	}
	return m
}

// Set is only meant to be used while a map is being populated
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

func (m *Map) ForEach(callback func(key string, value any)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		callback(k, m.values[k])
	}
}

// Clone returns a shallow copy, nested values are shared
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap()
	}
	c := &Map{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]any, len(m.values)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// MarshalJSON writes the entries in insertion order. The value receiver lets maps that are
// stored by value, e.g. inside a List, marshal the same way as *Map.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		v, err := marshalJSON(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
