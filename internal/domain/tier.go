package domain

// Tier is the advisory level derived from a UV index value.
type Tier string

const (
	TierLow      Tier = "low"
	TierModerate Tier = "moderate"
	TierHigh     Tier = "high"
)

// Exact user-facing advisory strings per tier.
const (
	advisoryLow      = "Get some sun."
	advisoryModerate = "Hat, sunscreen, long sleeves."
	advisoryHigh     = "Stay inside."
)

// ClassifyIndex maps a numeric UV index onto an advisory tier.
// Both boundaries are moderate: 3 ≤ index ≤ 5.
func ClassifyIndex(index float64) Tier {
	switch {
	case index < 3:
		return TierLow
	case index <= 5:
		return TierModerate
	default:
		return TierHigh
	}
}

// Advisory returns the user-facing message for the tier.
func (t Tier) Advisory() string {
	switch t {
	case TierLow:
		return advisoryLow
	case TierModerate:
		return advisoryModerate
	case TierHigh:
		return advisoryHigh
	default:
		return ""
	}
}

// Level returns the tier as an ordinal (0=low, 1=moderate, 2=high),
// used for the advisory tier gauge.
func (t Tier) Level() int {
	switch t {
	case TierModerate:
		return 1
	case TierHigh:
		return 2
	default:
		return 0
	}
}
