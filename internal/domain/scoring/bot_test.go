package scoring

import (
	"testing"

	"github.com/authentiq/authentiq/internal/domain"
	"github.com/stretchr/testify/assert"
)

func botLikeFeatures() domain.DerivedFeatures {
	p := profileAged(10)
	p.Followers = 10
	p.Following = 5000
	p.Statuses = 600
	p.DefaultProfile = true
	p.DefaultImage = true
	return ExtractFeatures(p)
}

func humanLikeFeatures() domain.DerivedFeatures {
	p := profileAged(730)
	p.Followers = 1500
	p.Following = 800
	p.Statuses = 1100
	p.Favorites = 330
	p.Listed = 5
	p.Media = 110
	return ExtractFeatures(p)
}

func TestBotScore_AllSignalsFiring(t *testing.T) {
	assert.Greater(t, BotScore(botLikeFeatures()), 0.9)
}

func TestBotScore_NoSignalsNearZero(t *testing.T) {
	assert.Less(t, BotScore(humanLikeFeatures()), 0.1)
}

func TestBotScore_Bounded(t *testing.T) {
	for _, f := range []domain.DerivedFeatures{botLikeFeatures(), humanLikeFeatures(), {}} {
		s := BotScore(f)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

// Pushing activity far past the hyperactivity band must never make an
// account look less automated.
func TestBotScore_HyperactivityMonotone(t *testing.T) {
	f := humanLikeFeatures()

	prev := -1.0
	for _, rate := range []float64{30, 60, 120, 500, 5000} {
		f.ActivityRate = rate
		s := BotScore(f)
		assert.GreaterOrEqual(t, s, prev, "activity %v", rate)
		prev = s
	}
}

func TestBotScore_YoungAccountScoresHigherThanOld(t *testing.T) {
	young := botLikeFeatures()
	old := botLikeFeatures()
	old.AgeDays = 2000
	assert.Greater(t, BotScore(young), BotScore(old))
}
