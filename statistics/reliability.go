package statistics

import "github.com/moguls753/microbench/percent"

// Reliability classifies how trustworthy a sample sequence is, based
// on its coefficient of variation. Tiers are ordered from most to
// least trustworthy.
type Reliability int

const (
	Excellent Reliability = iota
	Good
	Moderate
	Poor
)

// ReliabilityFromCV maps a coefficient of variation to a tier. The
// intervals are half-open, inclusive on the lower end: [0,10)
// excellent, [10,20) good, [20,50) moderate, [50,inf) poor. A CV of
// exactly 10% is good, not excellent.
func ReliabilityFromCV(cv percent.Percent) Reliability {
	switch p := cv.Percent(); {
	case p < 10:
		return Excellent
	case p < 20:
		return Good
	case p < 50:
		return Moderate
	default:
		return Poor
	}
}

// Worse returns the less trustworthy of two tiers.
func Worse(a, b Reliability) Reliability {
	if b > a {
		return b
	}
	return a
}

func (r Reliability) String() string {
	switch r {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Moderate:
		return "moderate"
	case Poor:
		return "poor"
	default:
		return "unknown"
	}
}
