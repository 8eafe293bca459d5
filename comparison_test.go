package microbench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moguls753/microbench"
	"github.com/moguls753/microbench/statistics"
)

func TestCompare(t *testing.T) {
	baseline := microbench.NewResult("old", []float64{10, 10.2, 9.8, 10.1, 9.9})
	test := microbench.NewResult("new", []float64{5, 5.1, 4.9, 5.0, 5.0})

	comp, err := microbench.Compare(&baseline, &test)
	require.NoError(t, err)

	assert.Equal(t, 2.0, comp.Speedup)
	assert.Equal(t, 0.5, comp.Improvement.Ratio())
	assert.Same(t, &baseline, comp.Baseline)
	assert.Same(t, &test, comp.Test)
	assert.True(t, comp.IsReliable())
	assert.Equal(t, statistics.Excellent, comp.Reliability())
}

func TestCompareReflexive(t *testing.T) {
	r := microbench.NewResult("same", []float64{3, 3.1, 2.9})

	comp, err := microbench.Compare(&r, &r)
	require.NoError(t, err)
	assert.Equal(t, 1.0, comp.Speedup)
	assert.Equal(t, 0.0, comp.Improvement.Ratio())
}

func TestCompareZeroMedian(t *testing.T) {
	zero := microbench.NewResult("zero", []float64{0, 0, 0})
	ok := microbench.NewResult("ok", []float64{1, 1, 1})

	_, err := microbench.Compare(&ok, &zero)
	assert.ErrorIs(t, err, microbench.ErrZeroMedian)

	_, err = microbench.Compare(&zero, &ok)
	assert.ErrorIs(t, err, microbench.ErrZeroMedian)
}

func TestComparisonReliabilityIsWorseOfBoth(t *testing.T) {
	steady := microbench.NewResult("steady", []float64{10, 10.1, 9.9, 10, 10})
	noisy := microbench.NewResult("noisy", []float64{5, 15, 25, 2, 40})

	require.Equal(t, statistics.Excellent, steady.Reliability())
	require.Equal(t, statistics.Poor, noisy.Reliability())

	comp, err := microbench.Compare(&steady, &noisy)
	require.NoError(t, err)
	assert.Equal(t, statistics.Poor, comp.Reliability())
	assert.False(t, comp.IsReliable())
}

func TestIsReliableNeedsBothSidesUnderTwentyPercent(t *testing.T) {
	steady := microbench.NewResult("steady", []float64{10, 10.1, 9.9, 10, 10})
	// CV in the moderate band: well above 20%.
	wobbly := microbench.NewResult("wobbly", []float64{10, 16, 6, 13, 8})

	require.True(t, wobbly.CV().Percent() >= 20)

	comp, err := microbench.Compare(&steady, &wobbly)
	require.NoError(t, err)
	assert.False(t, comp.IsReliable())

	comp, err = microbench.Compare(&wobbly, &steady)
	require.NoError(t, err)
	assert.False(t, comp.IsReliable())

	comp, err = microbench.Compare(&steady, &steady)
	require.NoError(t, err)
	assert.True(t, comp.IsReliable())
}
