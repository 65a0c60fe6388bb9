package scoring

import (
	"testing"

	"github.com/authentiq/authentiq/internal/domain"
	"github.com/stretchr/testify/assert"
)

func creatorLikeFeatures() domain.DerivedFeatures {
	p := profileAged(2000)
	p.Followers = 500_000
	p.Following = 200
	p.Statuses = 20_000
	p.Favorites = 4000
	p.Listed = 500
	p.Media = 16_000
	p.Verified = true
	return ExtractFeatures(p)
}

func TestCreatorScore_MediaHeavyVerifiedLargeAudience(t *testing.T) {
	assert.Greater(t, CreatorScore(creatorLikeFeatures()), 0.8)
}

func TestCreatorScore_OrdinaryHumanStaysLow(t *testing.T) {
	assert.Less(t, CreatorScore(humanLikeFeatures()), 0.3)
}

func TestCreatorScore_SmallAudienceStaysLow(t *testing.T) {
	f := creatorLikeFeatures()
	f.Followers = 300
	assert.Less(t, CreatorScore(f), CreatorScore(creatorLikeFeatures()))
}

func TestCreatorScore_Bounded(t *testing.T) {
	for _, f := range []domain.DerivedFeatures{creatorLikeFeatures(), botLikeFeatures(), {}} {
		s := CreatorScore(f)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
