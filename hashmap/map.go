// Package hashmap implements a generic hash map that resolves
// collisions by separate chaining.
//
// Keys are routed to one of a number of buckets by their hash
// modulo the bucket count; each bucket is a slice of entries that is
// searched linearly by key equality. The bucket array doubles when
// the map reaches 3/4 load and, by default, never shrinks.
//
// A Map is not safe for concurrent use.
package hashmap

import "go.uber.org/zap"

// Map is a hash-table-based mapping from keys K to values V.
//
// The zero value is an empty map ready to use. Just as with map[K]V,
// a nil *Map is a valid empty map for reading.
type Map[K comparable, V any] struct {
	// storage holds the buckets. Every entry in storage[i]
	// has a key that routes to i.
	storage [][]entry[K, V]

	// count holds the number of entries across all buckets.
	count int

	cfg MapConfig
}

// entry is an association in a bucket.
type entry[K comparable, V any] struct {
	key K
	val V
}

var nopLogger = zap.NewNop()

// New returns a new empty Map. No buckets are allocated until
// the first Insert.
func New[K comparable, V any](options ...func(*MapConfig)) *Map[K, V] {
	return &Map[K, V]{
		cfg: newConfig(options),
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Insert sets the value for k to v. If k was already present,
// its value is replaced in place and the previous value is
// returned along with true.
//
// Insert may rehash every entry in the map first, so positions
// observed before the call are not meaningful after it.
func (m *Map[K, V]) Insert(k K, v V) (prev V, replaced bool) {
	if m == nil {
		panic("(*Map).Insert called on nil *Map")
	}
	m.maybeResize()
	h := Hash(k)
	i, _ := m.route(h)
	b := m.storage[i]
	for j := range b {
		if b[j].key == k {
			prev = b[j].val
			b[j].val = v
			return prev, true
		}
	}
	m.storage[i] = append(b, entry[K, V]{key: k, val: v})
	m.count++
	return prev, false
}

// Get returns the value for k and reports whether it was found.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return GetView(m, Owned[K]{k})
}

// ContainsKey reports whether k is present in the map.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// MustGet returns the value for k. It panics if k is not present,
// so it should only be used where the caller knows the key exists.
func (m *Map[K, V]) MustGet(k K) V {
	v, ok := m.Get(k)
	if !ok {
		panic("(*Map).MustGet: key not found")
	}
	return v
}

// Remove removes the entry for k, if present, returning its value
// and reporting whether it was found.
//
// The last entry of the bucket is moved into the vacated slot,
// so removal does not preserve the order of the remaining entries.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	return RemoveView(m, Owned[K]{k})
}

// find locates the entry whose key has hash h and satisfies match.
// It returns the bucket index and the position within the bucket.
func (m *Map[K, V]) find(h uint64, match func(K) bool) (int, int, bool) {
	i, ok := m.route(h)
	if !ok {
		return 0, 0, false
	}
	b := m.storage[i]
	for j := range b {
		if match(b[j].key) {
			return i, j, true
		}
	}
	return 0, 0, false
}

// removeAt swap-removes the entry at storage[i][j] and returns its value.
func (m *Map[K, V]) removeAt(i, j int) V {
	b := m.storage[i]
	v := b[j].val
	last := len(b) - 1
	b[j] = b[last]
	b[last] = entry[K, V]{}
	m.storage[i] = b[:last]
	m.count--
	m.maybeResize()
	return v
}

func (m *Map[K, V]) logger() *zap.Logger {
	if m.cfg.logger == nil {
		return nopLogger
	}
	return m.cfg.logger
}
