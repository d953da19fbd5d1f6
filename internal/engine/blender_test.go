package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendBothPresent(t *testing.T) {
	normal := Aggregate{
		"101N04411": {PredictedSpeed: 30, ReferenceSpeed: 48, ConfidenceMean: 0.8, SampleSize: 10},
	}
	holiday := Aggregate{
		"101N04411": {PredictedSpeed: 50, ReferenceSpeed: 52, ConfidenceMean: 0.6, SampleSize: 5},
	}

	merged := NewBlender(DefaultBlendWeight).Blend(normal, holiday)

	require.Len(t, merged, 1)
	got := merged["101N04411"]
	assert.InDelta(t, 40.0, got.PredictedSpeed, 1e-9)
	assert.InDelta(t, 0.7, got.ConfidenceMean, 1e-9)
	assert.InDelta(t, 50.0, got.ReferenceSpeed, 1e-9)
	assert.Equal(t, 15, got.SampleSize)
}

func TestBlendSingleSided(t *testing.T) {
	holiday := Aggregate{
		"101N04413": {PredictedSpeed: 45, ConfidenceMean: 0.9, SampleSize: 3},
	}

	merged := NewBlender(DefaultBlendWeight).Blend(Aggregate{}, holiday)

	// A segment seen in only one pattern passes through unscaled
	got := merged["101N04413"]
	assert.InDelta(t, 45.0, got.PredictedSpeed, 1e-9)
	assert.InDelta(t, 0.9, got.ConfidenceMean, 1e-9)
	assert.Equal(t, 3, got.SampleSize)
}

func TestBlendNormalOnlySegmentKept(t *testing.T) {
	normal := Aggregate{
		"101N04414": {PredictedSpeed: 33, ConfidenceMean: 0.7, SampleSize: 8},
	}

	merged := NewBlender(DefaultBlendWeight).Blend(normal, nil)

	got := merged["101N04414"]
	assert.InDelta(t, 33.0, got.PredictedSpeed, 1e-9)
	assert.Equal(t, 8, got.SampleSize)
}

func TestBlendConfigurableWeight(t *testing.T) {
	normal := Aggregate{"s": {PredictedSpeed: 10, SampleSize: 1}}
	holiday := Aggregate{"s": {PredictedSpeed: 20, SampleSize: 1}}

	merged := NewBlender(0.75).Blend(normal, holiday)
	assert.InDelta(t, 12.5, merged["s"].PredictedSpeed, 1e-9)
}

func TestBlendWeightClamped(t *testing.T) {
	normal := Aggregate{"s": {PredictedSpeed: 10, SampleSize: 1}}
	holiday := Aggregate{"s": {PredictedSpeed: 20, SampleSize: 1}}

	assert.InDelta(t, 10.0, NewBlender(5).Blend(normal, holiday)["s"].PredictedSpeed, 1e-9)
	assert.InDelta(t, 20.0, NewBlender(-1).Blend(normal, holiday)["s"].PredictedSpeed, 1e-9)
}

func TestBlendEmptyInputs(t *testing.T) {
	merged := NewBlender(DefaultBlendWeight).Blend(nil, nil)
	assert.Empty(t, merged)
}
