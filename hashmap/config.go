package hashmap

import "go.uber.org/zap"

// DefaultMinBuckets is the number of buckets allocated by the first
// insert into a map created without WithPresize.
const DefaultMinBuckets = 4

// MapConfig defines configurable Map options.
type MapConfig struct {
	minBuckets    int
	shrinkEnabled bool
	logger        *zap.Logger
}

// WithPresize configures a new Map so that its first allocation
// holds at least sizeHint entries without growing. The resulting
// bucket count is also the minimum the map will ever shrink to.
// If sizeHint is zero or negative, the value is ignored.
//
// Storage is still allocated lazily by the first Insert.
func WithPresize(sizeHint int) func(*MapConfig) {
	return func(c *MapConfig) {
		if sizeHint <= 0 {
			return
		}
		// The grow check runs before each insert, so the table must
		// stay strictly below 3/4 load while the last of sizeHint
		// entries is added.
		n := sizeHint*4/3 + 1
		if n > c.minBuckets {
			c.minBuckets = n
		}
	}
}

// WithShrinkEnabled configures the map to halve its bucket array when
// a removal leaves it at or below 1/4 load. Maps are grow-only by
// default.
func WithShrinkEnabled() func(*MapConfig) {
	return func(c *MapConfig) {
		c.shrinkEnabled = true
	}
}

// WithLogger sets the logger used to report resizes. A nil logger
// leaves the default no-op logger in place.
func WithLogger(logger *zap.Logger) func(*MapConfig) {
	return func(c *MapConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(options []func(*MapConfig)) MapConfig {
	c := MapConfig{
		minBuckets: DefaultMinBuckets,
		logger:     zap.NewNop(),
	}
	for _, o := range options {
		o(&c)
	}
	return c
}
