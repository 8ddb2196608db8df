package scoring

// Tier is the coarse classification of a quiz result.
type Tier string

const (
	TierHigh Tier = "high"
	TierLow  Tier = "low"
)

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierHigh:
		return "High"
	case TierLow:
		return "Low"
	default:
		return string(t)
	}
}

// DefaultThreshold is the High cutoff for the seven-question challenge.
const DefaultThreshold = 5

// ThresholdFor scales the 5-of-7 cutoff to a challenge of total questions,
// rounding up.
func ThresholdFor(total int) int {
	if total <= 0 {
		return 0
	}
	return (total*DefaultThreshold + 6) / 7
}

// RewardTier returns TierHigh when score reaches threshold.
func RewardTier(score, threshold int) Tier {
	if score >= threshold {
		return TierHigh
	}
	return TierLow
}
