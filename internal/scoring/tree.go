package scoring

import "fmt"

type Tier string

const (
	TierFlourishing Tier = "flourishing"
	TierHealthy     Tier = "healthy"
	TierNeutral     Tier = "neutral"
	TierWilting     Tier = "wilting"
	TierRotting     Tier = "rotting"
)

// TreeTier maps a health score to its display band. Values outside [0,100]
// fall into the nearest band.
func TreeTier(health int) Tier {
	switch {
	case health > 80:
		return TierFlourishing
	case health > 60:
		return TierHealthy
	case health > 40:
		return TierNeutral
	case health > 20:
		return TierWilting
	default:
		return TierRotting
	}
}

// ImageFile is the tree picture served under /images for a tier.
func (t Tier) ImageFile() string {
	return fmt.Sprintf("tree-%s.png", t)
}
