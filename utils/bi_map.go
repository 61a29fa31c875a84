package utils

import "fmt"

// Pair is a single key/value association used to build a BiMap.
type Pair[K comparable, V comparable] struct {
	Key   K
	Value V
}

// BiMap is a bidirectional map that allows lookups in both directions.
// It maintains two internal maps to provide efficient lookups by either key or value,
// and remembers the order in which keys were supplied.
// BiMap is immutable, it does not provide methods to update its content.
type BiMap[K comparable, V comparable] struct {
	a    map[K]V // Forward mapping (key -> value)
	b    map[V]K // Reverse mapping (value -> key)
	keys []K     // Keys in construction order
}

// NewBiMap creates a new bidirectional map from the provided pairs.
// Both directions must be one-to-one: a repeated key or a repeated value is an error,
// since the reverse lookup of a shared value would be ambiguous.
//
// Parameters:
//   - pairs: The key-value associations, in the order Keys should report them
//
// Returns:
//   - A new BiMap with both forward and reverse mappings
//   - An error if a key or a value appears twice
func NewBiMap[K comparable, V comparable](pairs ...Pair[K, V]) (*BiMap[K, V], error) {
	a := make(map[K]V, len(pairs))
	b := make(map[V]K, len(pairs))
	keys := make([]K, 0, len(pairs))

	for _, p := range pairs {
		if _, dup := a[p.Key]; dup {
			return nil, fmt.Errorf("duplicate key %v", p.Key)
		}
		if prev, dup := b[p.Value]; dup {
			return nil, fmt.Errorf("value %v is already mapped from %v", p.Value, prev)
		}
		a[p.Key] = p.Value
		b[p.Value] = p.Key
		keys = append(keys, p.Key)
	}

	return &BiMap[K, V]{a: a, b: b, keys: keys}, nil
}

// MustBiMap is like NewBiMap but panics on a duplicate. It is meant for
// package-level tables whose contents are fixed at compile time.
func MustBiMap[K comparable, V comparable](pairs ...Pair[K, V]) *BiMap[K, V] {
	m, err := NewBiMap(pairs...)
	if err != nil {
		panic("utils: " + err.Error())
	}
	return m
}

// Lookup finds a value by its key in the forward mapping.
func (m *BiMap[K, V]) Lookup(key K) (V, bool) {
	value, ok := m.a[key]
	return value, ok
}

// DirectLookup finds a value by its key without checking if the key exists.
// If the key doesn't exist, it returns the zero value for type V.
func (m *BiMap[K, V]) DirectLookup(key K) V {
	return m.a[key]
}

// RLookup finds a key by its value in the reverse mapping.
func (m *BiMap[K, V]) RLookup(value V) (K, bool) {
	key, ok := m.b[value]
	return key, ok
}

// Len returns the number of pairs.
func (m *BiMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in construction order.
func (m *BiMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}
