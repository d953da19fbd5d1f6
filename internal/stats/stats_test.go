package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 40.0, Mean([]float64{20, 60}))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
}

func TestWeightedMean(t *testing.T) {
	t.Run("weights shift the mean", func(t *testing.T) {
		got := WeightedMean([]float64{20, 60}, []float64{0.9, 0.1})
		assert.InDelta(t, 24.0, got, 1e-9)
	})

	t.Run("zero weights fall back to unweighted mean", func(t *testing.T) {
		got := WeightedMean([]float64{20, 60}, []float64{0, 0})
		assert.InDelta(t, 40.0, got, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0.0, WeightedMean(nil, nil))
	})
}

func TestVariance(t *testing.T) {
	assert.Equal(t, 0.0, Variance([]float64{5}))
	assert.InDelta(t, 2.5, Variance([]float64{1, 2, 3, 4, 5}), 1e-9)
}

func TestStdDev(t *testing.T) {
	assert.InDelta(t, 1.5811, StdDev([]float64{1, 2, 3, 4, 5}), 1e-4)
	assert.Equal(t, 0.0, StdDev([]float64{1}))
}
