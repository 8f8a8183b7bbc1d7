package hashmap

import "github.com/cespare/xxhash/v2"

// View is a borrowed form of a key of type K. It allows a map to be
// searched without first constructing a K, for example looking up
// a string key from a []byte read off the wire.
//
// Hash must agree with [Hash] for every key that Matches reports
// true for, and Matches must agree with == on K.
type View[K comparable] interface {
	Hash() uint64
	Matches(k K) bool
}

// Owned is the trivial view of an owned key.
type Owned[K comparable] struct {
	Key K
}

func (o Owned[K]) Hash() uint64 {
	return Hash(o.Key)
}

func (o Owned[K]) Matches(k K) bool {
	return o.Key == k
}

// Bytes is a view of a string key as a byte slice.
// It hashes the bytes exactly as [Hash] hashes the string,
// so lookups through Bytes do not allocate.
type Bytes []byte

func (b Bytes) Hash() uint64 {
	return xxhash.Sum64(b)
}

func (b Bytes) Matches(k string) bool {
	return string(b) == k
}

// GetView is like [Map.Get] but looks up the entry matched by q.
func GetView[K comparable, V any, Q View[K]](m *Map[K, V], q Q) (V, bool) {
	i, j, ok := m.find(q.Hash(), q.Matches)
	if !ok {
		return *new(V), false
	}
	return m.storage[i][j].val, true
}

// ContainsView reports whether m holds an entry matched by q.
func ContainsView[K comparable, V any, Q View[K]](m *Map[K, V], q Q) bool {
	_, ok := GetView(m, q)
	return ok
}

// RemoveView is like [Map.Remove] but removes the entry matched by q.
func RemoveView[K comparable, V any, Q View[K]](m *Map[K, V], q Q) (V, bool) {
	i, j, ok := m.find(q.Hash(), q.Matches)
	if !ok {
		return *new(V), false
	}
	return m.removeAt(i, j), true
}
