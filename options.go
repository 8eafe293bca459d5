package microbench

import "math/rand"

// Option configures optional benchmark behavior.
type Option func(*Benchmark)

// WithProgress installs a sink for single-line status messages
// emitted at the three phase boundaries (warmup start, sampling
// start, completion). Without it the benchmark is silent; the sink
// has no effect on timing or control flow.
func WithProgress(fn func(string)) Option {
	return func(b *Benchmark) {
		if fn != nil {
			b.progress = fn
		}
	}
}

// WithSeed fixes the shuffle seed so randomized execution orders are
// reproducible. By default every Benchmark draws a fresh seed.
func WithSeed(seed int64) Option {
	return func(b *Benchmark) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}
