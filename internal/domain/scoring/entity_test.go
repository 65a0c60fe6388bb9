package scoring

import (
	"testing"

	"github.com/authentiq/authentiq/internal/domain"
	"github.com/stretchr/testify/assert"
)

// entityLikeFeatures models a brand account: huge one-way follow graph,
// steady posting cadence, media content, essentially no favoriting.
func entityLikeFeatures() domain.DerivedFeatures {
	p := profileAged(2000)
	p.Followers = 500_000
	p.Following = 200
	p.Statuses = 16_000
	p.Favorites = 100
	p.Listed = 800
	p.Media = 8_000
	p.Verified = true
	return ExtractFeatures(p)
}

func TestEntityScore_BrandAccount(t *testing.T) {
	assert.Greater(t, EntityScore(entityLikeFeatures()), 0.65)
}

// A creator with comparable reach but real personal engagement must stay
// below the classifier's Entity guard.
func TestEntityScore_EngagedCreatorStaysBelowGuard(t *testing.T) {
	assert.Less(t, EntityScore(creatorLikeFeatures()), 0.5)
}

func TestEntityScore_OrdinaryHumanNearZero(t *testing.T) {
	assert.Less(t, EntityScore(humanLikeFeatures()), 0.1)
}

func TestEntityScore_HyperactivePostingLosesCadenceCredit(t *testing.T) {
	steady := entityLikeFeatures()
	hyper := entityLikeFeatures()
	hyper.ActivityRate = 100
	assert.Greater(t, EntityScore(steady), EntityScore(hyper))
}

func TestEntityScore_Bounded(t *testing.T) {
	for _, f := range []domain.DerivedFeatures{entityLikeFeatures(), botLikeFeatures(), {}} {
		s := EntityScore(f)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
