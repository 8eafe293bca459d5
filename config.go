package microbench

import "fmt"

// Config controls how a benchmark measures its variants. A Config is
// a plain value: build it once, pass it to New, never mutate it.
type Config struct {
	// Iterations is the number of operations timed per sample.
	Iterations int
	// Samples is the number of independent measurements collected
	// per variant.
	Samples int
	// WarmupIterations is the number of untimed executions run per
	// variant before measurement starts, to stabilize JIT and cache
	// state.
	WarmupIterations int
	// RandomizeOrder shuffles the variant execution order with a
	// fresh permutation for every sampling round, so no variant is
	// systematically measured early or late within a round.
	RandomizeOrder bool
}

// StandardConfig returns the documented defaults.
func StandardConfig() Config {
	return Config{
		Iterations:       1000,
		Samples:          10,
		WarmupIterations: 500,
		RandomizeOrder:   true,
	}
}

// QuickConfig trades accuracy for a fast run.
func QuickConfig() Config {
	return Config{
		Iterations:       100,
		Samples:          5,
		WarmupIterations: 50,
		RandomizeOrder:   true,
	}
}

// ThoroughConfig trades run time for tighter statistics.
func ThoroughConfig() Config {
	return Config{
		Iterations:       10000,
		Samples:          30,
		WarmupIterations: 2000,
		RandomizeOrder:   true,
	}
}

func (c Config) validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.WarmupIterations < 0 {
		return fmt.Errorf("%w: warmup iterations must not be negative, got %d", ErrInvalidConfig, c.WarmupIterations)
	}
	return nil
}
