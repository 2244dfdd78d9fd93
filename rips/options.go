package rips

import "github.com/katalvlaran/tda/clique"

// DefaultCacheDistances selects the "light" build: re-evaluate the metric on
// demand rather than materializing the N×N table. Callers with cheap memory
// and an expensive metric flip it with WithCachedDistances.
const DefaultCacheDistances = false

// Option mutates the builder configuration. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	cacheDistances bool
	enum           clique.Enumerator
}

// WithCachedDistances precomputes all pairwise distances into an in-memory
// table before building ("fast" mode). Trades O(N²) memory for never calling
// the metric twice on the same pair. Outputs are identical to light mode.
func WithCachedDistances() Option {
	return func(o *options) { o.cacheDistances = true }
}

// WithLightDistances re-evaluates the metric on demand (the default).
func WithLightDistances() Option {
	return func(o *options) { o.cacheDistances = false }
}

// WithCliqueEnumerator substitutes the maximal-clique enumerator. The
// replacement must return every maximal clique exactly once; clique order is
// free, but it must be deterministic for reproducible output. A nil
// enumerator restores the default.
func WithCliqueEnumerator(e clique.Enumerator) Option {
	return func(o *options) { o.enum = e }
}

func gatherOptions(opts ...Option) options {
	o := options{cacheDistances: DefaultCacheDistances, enum: clique.Maximal}
	for _, set := range opts {
		set(&o)
	}
	if o.enum == nil {
		o.enum = clique.Maximal
	}

	return o
}
