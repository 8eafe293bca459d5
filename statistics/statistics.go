// Package statistics provides outlier-resistant statistics over
// benchmark timing samples.
package statistics

import (
	"errors"
	"math"
	"sort"

	"github.com/moguls753/microbench/percent"
)

// ErrEmptyInput is returned by Min and Max when given no samples.
// Unlike the other statistics these cannot default to zero, because a
// zero minimum or maximum could be mistaken for a real measurement.
var ErrEmptyInput = errors.New("statistics: empty input")

// Mean calculates the arithmetic mean. Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median calculates the median of a slice of float64 values. It sorts
// a copy; the input is never reordered. Returns 0 for empty input.
//
// Median is the primary comparison metric: timing samples are
// right-skewed by infrequent large pauses (scheduler preemption, GC,
// page faults), and the median ignores a minority of arbitrarily
// large outliers while the mean does not.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}

// StdDev calculates the sample standard deviation with Bessel's
// correction (n-1). Returns 0 for fewer than two values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(values)-1))
}

// CV calculates the coefficient of variation, stddev/mean. A zero
// Percent is returned for empty input or a zero mean.
func CV(values []float64) percent.Percent {
	return percent.FromRatio(StdDev(values), Mean(values))
}

// Min returns the smallest sample, or ErrEmptyInput for no samples.
func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest sample, or ErrEmptyInput for no samples.
func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Percentile returns the p-th percentile using the nearest-rank
// method over a sorted copy. Returns 0 for empty input.
func Percentile(values []float64, p int) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Summary holds every statistical measure for one sample sequence.
type Summary struct {
	Median      float64
	Mean        float64
	StdDev      float64
	Min         float64
	Max         float64
	CV          percent.Percent
	Reliability Reliability
}

// Summarize computes all measures for a slice of values. The zero
// Summary is returned for empty input.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	cv := CV(values)
	return Summary{
		Median:      Median(values),
		Mean:        Mean(values),
		StdDev:      StdDev(values),
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		CV:          cv,
		Reliability: ReliabilityFromCV(cv),
	}
}
