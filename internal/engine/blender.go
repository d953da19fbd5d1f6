package engine

// DefaultBlendWeight is the share of the normal pattern in a special-event
// blend; the holiday pattern receives the remainder.
const DefaultBlendWeight = 0.5

// Blender combines the normal and holiday aggregates for special-event
// requests. The mix is presence-aware: a segment observed in only one
// pattern keeps that pattern's values unscaled instead of being halved or
// dropped.
type Blender struct {
	weight float64 // weight of the normal side, 0~1
}

// NewBlender creates a blender giving the normal aggregate the supplied
// weight. Weights outside [0,1] are clamped.
func NewBlender(weight float64) *Blender {
	if weight < 0 {
		weight = 0
	}
	if weight > 1 {
		weight = 1
	}
	return &Blender{weight: weight}
}

// Blend merges the two aggregates. Sample sizes always add, so the
// data-quality signal reflects every reading behind the blend.
func (b *Blender) Blend(normal, holiday Aggregate) Aggregate {
	merged := make(Aggregate, len(normal)+len(holiday))

	for segmentID, n := range normal {
		h, ok := holiday[segmentID]
		if !ok {
			merged[segmentID] = n
			continue
		}
		w := b.weight
		merged[segmentID] = SegmentAggregate{
			PredictedSpeed: w*n.PredictedSpeed + (1-w)*h.PredictedSpeed,
			ReferenceSpeed: w*n.ReferenceSpeed + (1-w)*h.ReferenceSpeed,
			ConfidenceMean: w*n.ConfidenceMean + (1-w)*h.ConfidenceMean,
			ConfidenceStd:  w*n.ConfidenceStd + (1-w)*h.ConfidenceStd,
			SampleSize:     n.SampleSize + h.SampleSize,
		}
	}

	for segmentID, h := range holiday {
		if _, ok := normal[segmentID]; !ok {
			merged[segmentID] = h
		}
	}

	return merged
}
