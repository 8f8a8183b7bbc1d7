package hashmap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// seed is used for keys that have no fixed byte encoding.
// It is chosen once per process, so hashes are stable for the
// lifetime of the process but not across runs.
var seed = maphash.MakeSeed()

// Hash returns the 64-bit hash that the map uses to route k to
// a bucket.
//
// Strings are hashed with xxhash over their bytes and fixed-width
// integers with xxhash over their 8-byte little-endian encoding.
// Any other comparable key is hashed with [maphash.Comparable].
//
// A [View] must return the same value from its Hash method as Hash
// does for every key that the view matches.
func Hash[K comparable](k K) uint64 {
	switch k := any(k).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashUint64(uint64(k))
	case int8:
		return hashUint64(uint64(k))
	case int16:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case uint:
		return hashUint64(uint64(k))
	case uint8:
		return hashUint64(uint64(k))
	case uint16:
		return hashUint64(uint64(k))
	case uint32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uintptr:
		return hashUint64(uint64(k))
	}
	return maphash.Comparable(seed, k)
}

func hashUint64(x uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)
	return xxhash.Sum64(buf[:])
}

// route returns the index of the bucket that holds keys with hash h,
// or false if the map has no buckets yet.
// The result is only valid until the next resize.
func (m *Map[K, V]) route(h uint64) (int, bool) {
	if m == nil || len(m.storage) == 0 {
		return 0, false
	}
	return int(h % uint64(len(m.storage))), true
}
