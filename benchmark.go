// Package microbench compares named pieces of code by timing them
// under a warmup-then-sample protocol and reducing the samples to
// outlier-resistant statistics.
package microbench

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrNoVariants is returned by New for an empty variant list.
	ErrNoVariants = errors.New("microbench: benchmark needs at least one variant")

	// ErrInvalidConfig is returned by New for a configuration or
	// variant that cannot be measured.
	ErrInvalidConfig = errors.New("microbench: invalid configuration")
)

// Benchmark measures a fixed set of variants under one Config.
//
// Execution is strictly single-threaded: variants run one at a time
// on the calling goroutine, because concurrent wall-clock
// measurements contend for cache and scheduler time and skew each
// other. A Benchmark holds no state between Run invocations.
type Benchmark struct {
	config   Config
	variants []Variant
	progress func(string)
	rng      *rand.Rand
}

// New builds a Benchmark over the given variants. It fails with
// ErrNoVariants when the list is empty and with ErrInvalidConfig for
// non-positive iteration or sample counts, negative warmup, an
// unnamed variant, or a nil Run.
func New(config Config, variants []Variant, opts ...Option) (*Benchmark, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	for i, v := range variants {
		if v.Name == "" {
			return nil, fmt.Errorf("%w: variant %d has no name", ErrInvalidConfig, i)
		}
		if v.Run == nil {
			return nil, fmt.Errorf("%w: variant %q has no Run function", ErrInvalidConfig, v.Name)
		}
	}

	b := &Benchmark{
		config:   config,
		variants: append([]Variant(nil), variants...),
		progress: func(string) {},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Run executes the warmup and sampling phases and returns one Result
// per variant, in declaration order regardless of shuffling.
//
// A panic raised by variant code propagates unmodified and leaves no
// Result behind: masking a crash would also mask the performance
// characteristics of the crashing path.
func (b *Benchmark) Run() []Result {
	b.progress(fmt.Sprintf("warmup: %d iterations per variant", b.config.WarmupIterations))
	for _, v := range b.variants {
		for i := 0; i < b.config.WarmupIterations; i++ {
			v.Run()
		}
	}

	b.progress(fmt.Sprintf("sampling: %d samples of %d iterations per variant",
		b.config.Samples, b.config.Iterations))
	samples := make([][]float64, len(b.variants))
	for i := range samples {
		samples[i] = make([]float64, 0, b.config.Samples)
	}
	order := make([]int, len(b.variants))
	for i := range order {
		order[i] = i
	}
	for s := 0; s < b.config.Samples; s++ {
		if b.config.RandomizeOrder {
			// Fresh permutation per round, not one reused across
			// rounds.
			b.rng.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}
		for _, idx := range order {
			samples[idx] = append(samples[idx], b.measure(b.variants[idx]))
		}
	}

	results := make([]Result, len(b.variants))
	for i, v := range b.variants {
		results[i] = NewResult(v.Name, samples[i])
	}
	b.progress(fmt.Sprintf("done: measured %d variants", len(results)))
	return results
}

// measure times one sample: Iterations back-to-back calls on the
// monotonic clock, reported as microseconds per operation.
func (b *Benchmark) measure(v Variant) float64 {
	start := time.Now()
	for i := 0; i < b.config.Iterations; i++ {
		v.Run()
	}
	elapsed := time.Since(start)
	return float64(elapsed.Nanoseconds()) / float64(b.config.Iterations) / 1e3
}
