package microbench

import (
	"github.com/moguls753/microbench/percent"
	"github.com/moguls753/microbench/statistics"
)

// Comparison relates a test Result to a baseline Result. It borrows
// both; neither is copied or mutated.
type Comparison struct {
	Baseline    *Result
	Test        *Result
	Speedup     float64
	Improvement percent.Percent
}

// Compare derives the pairwise metrics between baseline and test.
// ErrZeroMedian when either median is zero.
func Compare(baseline, test *Result) (Comparison, error) {
	speedup, err := test.SpeedupVs(*baseline)
	if err != nil {
		return Comparison{}, err
	}
	improvement, err := test.ImprovementVs(*baseline)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{
		Baseline:    baseline,
		Test:        test,
		Speedup:     speedup,
		Improvement: improvement,
	}, nil
}

// IsReliable reports whether the comparison can be trusted: both
// sides' coefficient of variation must be strictly below 20%. This is
// deliberately stricter than the per-result tiers, where a CV of
// exactly 20% still rates "moderate" on its own.
func (c Comparison) IsReliable() bool {
	limit := percent.FromPercent(20)
	return c.Baseline.CV().Less(limit) && c.Test.CV().Less(limit)
}

// Reliability is the worse of the two results' individual tiers.
func (c Comparison) Reliability() statistics.Reliability {
	return statistics.Worse(c.Baseline.Reliability(), c.Test.Reliability())
}
