package engine

// Speed classes attached to predictions for client-side coloring.
const (
	ClassFast     = "fast"
	ClassModerate = "moderate"
	ClassSlow     = "slow"
)

// Thresholds is the speed-classification policy. Consumer components have
// historically disagreed on the exact cut-offs, so the policy is injected
// rather than baked into the engine; the continuous predicted speed is
// always exposed alongside the class.
type Thresholds struct {
	FastMin     float64 // predicted speed at or above this is "fast"
	ModerateMin float64 // at or above this (but below FastMin) is "moderate"
}

// DefaultThresholds classifies fast >= 45 mph, moderate 30-45, slow < 30.
var DefaultThresholds = Thresholds{FastMin: 45, ModerateMin: 30}

// LegacyThresholds matches the 40/25 mph cut-offs used by the original
// map renderer.
var LegacyThresholds = Thresholds{FastMin: 40, ModerateMin: 25}

// Classify maps a predicted speed to its class.
func (t Thresholds) Classify(speed float64) string {
	switch {
	case speed >= t.FastMin:
		return ClassFast
	case speed >= t.ModerateMin:
		return ClassModerate
	default:
		return ClassSlow
	}
}
