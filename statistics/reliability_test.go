package statistics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moguls753/microbench/percent"
	"github.com/moguls753/microbench/statistics"
)

func TestReliabilityFromCVBoundaries(t *testing.T) {
	cases := []struct {
		cv   float64
		want statistics.Reliability
	}{
		{0.0, statistics.Excellent},
		{9.9, statistics.Excellent},
		{10.0, statistics.Good},
		{19.9, statistics.Good},
		{20.0, statistics.Moderate},
		{49.9, statistics.Moderate},
		{50.0, statistics.Poor},
		{120.0, statistics.Poor},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("cv=%.1f", tc.cv), func(t *testing.T) {
			assert.Equal(t, tc.want, statistics.ReliabilityFromCV(percent.FromPercent(tc.cv)))
		})
	}
}

func TestWorse(t *testing.T) {
	assert.Equal(t, statistics.Good, statistics.Worse(statistics.Excellent, statistics.Good))
	assert.Equal(t, statistics.Poor, statistics.Worse(statistics.Poor, statistics.Moderate))
	assert.Equal(t, statistics.Moderate, statistics.Worse(statistics.Moderate, statistics.Moderate))
}

func TestReliabilityString(t *testing.T) {
	assert.Equal(t, "excellent", statistics.Excellent.String())
	assert.Equal(t, "good", statistics.Good.String())
	assert.Equal(t, "moderate", statistics.Moderate.String())
	assert.Equal(t, "poor", statistics.Poor.String())
	assert.Equal(t, "unknown", statistics.Reliability(99).String())
}
