package hashmap

import "go.uber.org/zap"

// maybeResize grows the bucket array when the map is at or above
// 3/4 load and, if shrinking is enabled, halves it when the map is
// at or below 1/4 load. A map with no buckets always grows.
func (m *Map[K, V]) maybeResize() {
	n := len(m.storage)
	switch {
	case m.count >= 3*n/4:
		m.rehash(max(2*n, m.minBuckets()))
	case m.count <= n/4:
		// Grow-only unless WithShrinkEnabled was given.
		if !m.cfg.shrinkEnabled || n <= m.minBuckets() {
			return
		}
		m.rehash(max(n/2, m.minBuckets()))
	}
}

func (m *Map[K, V]) minBuckets() int {
	if m.cfg.minBuckets <= 0 {
		return DefaultMinBuckets
	}
	return m.cfg.minBuckets
}

// rehash moves every entry into a new array of n buckets.
func (m *Map[K, V]) rehash(n int) {
	if ce := m.logger().Check(zap.DebugLevel, "resizing hash map"); ce != nil {
		ce.Write(
			zap.Int("from", len(m.storage)),
			zap.Int("to", n),
			zap.Int("count", m.count),
		)
	}
	old := m.storage
	m.storage = make([][]entry[K, V], n)
	for _, b := range old {
		for _, e := range b {
			i, _ := m.route(Hash(e.key))
			m.storage[i] = append(m.storage[i], e)
		}
		clear(b)
	}
}
