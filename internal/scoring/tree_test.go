package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeTierIsTotalOverRange(t *testing.T) {
	for h := 0; h <= 100; h++ {
		var want Tier
		switch {
		case h >= 81:
			want = TierFlourishing
		case h >= 61:
			want = TierHealthy
		case h >= 41:
			want = TierNeutral
		case h >= 21:
			want = TierWilting
		default:
			want = TierRotting
		}
		assert.Equal(t, want, TreeTier(h), "health %d", h)
	}
}

func TestTreeTierBoundaries(t *testing.T) {
	assert.Equal(t, TierFlourishing, TreeTier(81))
	assert.Equal(t, TierHealthy, TreeTier(80))
	assert.Equal(t, TierHealthy, TreeTier(61))
	assert.Equal(t, TierNeutral, TreeTier(60))
	assert.Equal(t, TierNeutral, TreeTier(41))
	assert.Equal(t, TierWilting, TreeTier(40))
	assert.Equal(t, TierWilting, TreeTier(21))
	assert.Equal(t, TierRotting, TreeTier(20))
	assert.Equal(t, TierRotting, TreeTier(0))
}

func TestImageFile(t *testing.T) {
	assert.Equal(t, "tree-flourishing.png", TierFlourishing.ImageFile())
	assert.Equal(t, "tree-rotting.png", TreeTier(7).ImageFile())
}
