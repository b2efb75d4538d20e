package reactive

import "github.com/crandicha/acncheck/pkg/memo"

// DefaultCapacity keeps only the latest snapshot.
const DefaultCapacity = 1

// Option configures a Computed.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets how many snapshots keep their result cached.
// Non positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Computed derives a value from a source accessor and recomputes it only when
// the observed snapshot changes.
type Computed[K comparable, V any] struct {
	source  func() K
	compute func(K) V
	cache   *memo.Cache[K, V]
}

// NewComputed returns a derived value over source.
func NewComputed[K comparable, V any](source func() K, compute func(K) V, opts ...Option) *Computed[K, V] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return &Computed[K, V]{
		source:  source,
		compute: compute,
		cache:   memo.New[K, V](o.capacity),
	}
}

// Get reads the source once and returns the result for that snapshot.
func (c *Computed[K, V]) Get() V {
	return c.GetFor(c.source())
}

// GetFor returns the result for an explicit snapshot. Callers that derive
// several values from one read of the source use it to keep them consistent.
func (c *Computed[K, V]) GetFor(key K) V {
	return c.cache.GetOrCompute(key, c.compute)
}

// Stats exposes the hit and miss counters of the underlying cache.
func (c *Computed[K, V]) Stats() memo.Stats {
	return c.cache.Stats()
}
