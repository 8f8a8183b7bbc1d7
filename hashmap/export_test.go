package hashmap

import "fmt"

// BucketCount returns the current number of buckets.
func (m *Map[K, V]) BucketCount() int {
	return len(m.storage)
}

// CheckInvariants checks that the entry count matches the buckets and
// that every entry lives in the bucket its key routes to.
func (m *Map[K, V]) CheckInvariants() error {
	n := 0
	for i, b := range m.storage {
		for _, e := range b {
			n++
			if j, _ := m.route(Hash(e.key)); j != i {
				return fmt.Errorf("key %v found in bucket %d but routes to %d", e.key, i, j)
			}
		}
	}
	if n != m.count {
		return fmt.Errorf("count is %d but buckets hold %d entries", m.count, n)
	}
	return nil
}
