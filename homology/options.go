package homology

// DefaultParallel keeps per-dimension reductions on the calling goroutine.
// Parallelism is opt-in: small complexes finish before workers spin up.
const DefaultParallel = false

// Option mutates the homology configuration. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	parallel bool
}

// WithParallel computes independent per-dimension reductions concurrently.
// Results are bit-identical to the serial run: workers write disjoint output
// slots and share no mutable state.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

// WithSerial forces sequential reduction (the default).
func WithSerial() Option {
	return func(o *options) { o.parallel = false }
}

// gatherOptions resolves setters over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{parallel: DefaultParallel}
	for _, set := range opts {
		set(&o)
	}

	return o
}
