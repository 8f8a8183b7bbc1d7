package hashmap

import "iter"

// All returns an iterator over (key, value) pairs. Buckets are
// visited in order, and the entries of each bucket in their current
// order, which Remove may have changed.
//
// The map must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, b := range m.storage {
			for _, e := range b {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over keys in the same order as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over values in the same order as All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain moves every entry out of the map and returns an iterator
// that yields them. The map is empty, with no buckets allocated, as
// soon as Drain returns.
//
// Each bucket is emptied from its last entry backwards. The returned
// iterator can be used only once; entries not yet yielded when
// iteration stops are discarded.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	if m == nil {
		return func(func(K, V) bool) {}
	}
	storage := m.storage
	m.storage = nil
	m.count = 0
	return func(yield func(K, V) bool) {
		defer func() {
			clear(storage)
			storage = nil
		}()
		for i, b := range storage {
			for len(b) > 0 {
				last := len(b) - 1
				e := b[last]
				b[last] = entry[K, V]{}
				b = b[:last]
				storage[i] = b
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}
