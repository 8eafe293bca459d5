// Package percent provides a value type for dimensionless relative
// quantities. It keeps the ratio view (0.25) and the percent view (25)
// of the same number from being confused when a value crosses an
// interface boundary.
package percent

import "fmt"

// Percent stores a single ratio. The zero value means 0%. Two Percent
// values compare equal exactly when their underlying ratios are equal,
// regardless of which constructor produced them.
type Percent struct {
	ratio float64
}

// FromRatio builds a Percent from numerator/denominator. A zero
// denominator yields a zero Percent rather than an error.
func FromRatio(numerator, denominator float64) Percent {
	if denominator == 0 {
		return Percent{}
	}
	return Percent{ratio: numerator / denominator}
}

// FromPercent builds a Percent from a value on the 0-100 scale.
func FromPercent(p float64) Percent {
	return Percent{ratio: p / 100}
}

// Ratio returns the value on the 0.0-1.0+ scale.
func (p Percent) Ratio() float64 {
	return p.ratio
}

// Percent returns the value on the 0-100+ scale.
func (p Percent) Percent() float64 {
	return p.ratio * 100
}

// Less reports whether p is strictly smaller than other.
func (p Percent) Less(other Percent) bool {
	return p.ratio < other.ratio
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", p.Percent())
}
