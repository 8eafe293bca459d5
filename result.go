package microbench

import (
	"errors"

	"github.com/moguls753/microbench/percent"
	"github.com/moguls753/microbench/statistics"
)

// ErrZeroMedian is returned by SpeedupVs and ImprovementVs when the
// divisor median is exactly zero. An explicit error was chosen over
// returning Inf so degenerate timing data cannot leak into tables or
// CSV output as unparseable values.
var ErrZeroMedian = errors.New("microbench: zero median")

// Result holds the completed sample sequence for one variant, in
// microseconds per operation and in collection order. The samples are
// owned by value and never aliased; every statistic is recomputed
// from them on access, so repeated reads always agree.
type Result struct {
	name    string
	samples []float64
}

// NewResult copies samples into a Result. Later mutation of the
// argument does not affect the Result.
func NewResult(name string, samples []float64) Result {
	return Result{name: name, samples: append([]float64(nil), samples...)}
}

func (r Result) Name() string {
	return r.name
}

// Samples returns a copy of the sample sequence in collection order.
func (r Result) Samples() []float64 {
	return append([]float64(nil), r.samples...)
}

func (r Result) Mean() float64 {
	return statistics.Mean(r.samples)
}

func (r Result) Median() float64 {
	return statistics.Median(r.samples)
}

func (r Result) StdDev() float64 {
	return statistics.StdDev(r.samples)
}

func (r Result) CV() percent.Percent {
	return statistics.CV(r.samples)
}

func (r Result) Min() (float64, error) {
	return statistics.Min(r.samples)
}

func (r Result) Max() (float64, error) {
	return statistics.Max(r.samples)
}

// Reliability classifies the sample spread via its coefficient of
// variation.
func (r Result) Reliability() statistics.Reliability {
	return statistics.ReliabilityFromCV(r.CV())
}

// Summary computes every statistic at once.
func (r Result) Summary() statistics.Summary {
	return statistics.Summarize(r.samples)
}

// SpeedupVs returns baseline.Median / r.Median. A value above 1 means
// r is faster than the baseline. ErrZeroMedian when r's own median is
// zero.
func (r Result) SpeedupVs(baseline Result) (float64, error) {
	m := r.Median()
	if m == 0 {
		return 0, ErrZeroMedian
	}
	return baseline.Median() / m, nil
}

// ImprovementVs returns (baseline.Median - r.Median) / baseline.Median
// as a Percent. Positive means r improved on the baseline.
// ErrZeroMedian when the baseline median is zero.
func (r Result) ImprovementVs(baseline Result) (percent.Percent, error) {
	bm := baseline.Median()
	if bm == 0 {
		return percent.Percent{}, ErrZeroMedian
	}
	return percent.FromRatio(bm-r.Median(), bm), nil
}
