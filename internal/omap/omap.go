// Package omap implements basic insertion-ordered map with string key type.
package omap

// Map implements generic hashmap with string keys that remembers the order
// in which keys were first added.
// It is intended to store a small set of keys and it has some limitations:
// keys cannot be deleted.
// Rewriting a value keeps the key at its original position.
// Implementation is intended to be as simple (and bug-free) as possible.
type Map[T any] struct {
	keys []string
	smap map[string]T
}

// New creates ordered map. size defines expected number of stored keys.
func New[T any](size int) *Map[T] {
	return &Map[T]{
		keys: make([]string, 0, size),
		smap: make(map[string]T, size),
	}
}

// Len returns the number of stored keys.
func (m *Map[T]) Len() int {
	return len(m.keys)
}

// Has tells whether given key is stored in the map.
func (m *Map[T]) Has(key string) bool {
	_, has := m.smap[key]
	return has
}

// Get returns stored value by key and a flag telling whether this key is stored in the map.
// Returns zero value if the key is not present.
func (m *Map[T]) Get(key string) (T, bool) {
	result, has := m.smap[key]
	return result, has
}

// Set adds or rewrites value for given key.
func (m *Map[T]) Set(key string, value T) {
	_, has := m.smap[key]
	if !has {
		m.keys = append(m.keys, key)
	}
	m.smap[key] = value
}

// Keys returns stored keys in insertion order.
// Returned slice is a copy and may be modified freely.
func (m *Map[T]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}
