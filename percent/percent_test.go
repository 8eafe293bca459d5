package percent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moguls753/microbench/percent"
)

func TestFromRatio(t *testing.T) {
	p := percent.FromRatio(1, 4)
	assert.Equal(t, 0.25, p.Ratio())
	assert.Equal(t, 25.0, p.Percent())
}

func TestFromRatioZeroDenominator(t *testing.T) {
	p := percent.FromRatio(42, 0)
	assert.Equal(t, 0.0, p.Ratio())
	assert.Equal(t, percent.Percent{}, p)
}

func TestFromPercent(t *testing.T) {
	p := percent.FromPercent(50)
	assert.Equal(t, 0.5, p.Ratio())
	assert.Equal(t, 50.0, p.Percent())
}

func TestEqualityIsOnRatio(t *testing.T) {
	// The same quantity built through either constructor must compare
	// equal: 20% is 1/5, no matter how it entered the system.
	assert.Equal(t, percent.FromRatio(1, 5), percent.FromPercent(20))
	assert.NotEqual(t, percent.FromPercent(20), percent.FromPercent(0.2))
}

func TestLess(t *testing.T) {
	assert.True(t, percent.FromPercent(19).Less(percent.FromPercent(20)))
	assert.False(t, percent.FromPercent(20).Less(percent.FromPercent(20)))
	assert.False(t, percent.FromPercent(21).Less(percent.FromPercent(20)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.5%", percent.FromRatio(1, 8).String())
	assert.Equal(t, "0.0%", percent.Percent{}.String())
}
