package scoring

import (
	"testing"

	"github.com/authentiq/authentiq/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPersonScore_OrdinaryHumanBand(t *testing.T) {
	s := PersonScore(humanLikeFeatures(), domain.DefaultConfig())
	assert.Greater(t, s, 0.6)
	assert.Less(t, s, 0.85)
}

func TestPersonScore_BotLikeProfileStaysLow(t *testing.T) {
	s := PersonScore(botLikeFeatures(), domain.DefaultConfig())
	assert.Less(t, s, 0.45)
}

func TestPersonScore_Bounded(t *testing.T) {
	cfg := domain.DefaultConfig()
	for _, f := range []domain.DerivedFeatures{humanLikeFeatures(), botLikeFeatures(), entityLikeFeatures(), {}} {
		s := PersonScore(f, cfg)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

// The established-audience credit must never decrease as followers grow.
func TestAudienceCredit_Monotone(t *testing.T) {
	prev := -1.0
	for _, followers := range []int64{0, 10, 1000, 100_000, 10_000_000, 1_000_000_000} {
		c := audienceCredit(followers)
		assert.GreaterOrEqual(t, c, prev, "followers %d", followers)
		assert.LessOrEqual(t, c, 1.0)
		prev = c
	}
}

func TestCadenceCredit_FullInsideOptimalBand(t *testing.T) {
	bp := domain.DefaultConfig().ActivityBreakpoints
	assert.Equal(t, 1.0, cadenceCredit(1.0, bp))
	assert.Equal(t, 1.0, cadenceCredit(bp.LowOptimal, bp))
	assert.Equal(t, 1.0, cadenceCredit(bp.HighOptimal, bp))
}

func TestCadenceCredit_SilentAccountGetsNothing(t *testing.T) {
	bp := domain.DefaultConfig().ActivityBreakpoints
	assert.Equal(t, 0.0, cadenceCredit(0, bp))
}

func TestCadenceCredit_DecaysPastOptimal(t *testing.T) {
	bp := domain.DefaultConfig().ActivityBreakpoints
	assert.Greater(t, cadenceCredit(5, bp), cadenceCredit(10, bp))
	assert.Greater(t, cadenceCredit(10, bp), cadenceCredit(30, bp))
	assert.Greater(t, cadenceCredit(30, bp), cadenceCredit(200, bp))
	assert.Greater(t, cadenceCredit(200, bp), 0.0)
}

func TestCadenceCredit_ContinuousAtBreakpoints(t *testing.T) {
	bp := domain.DefaultConfig().ActivityBreakpoints
	const eps = 1e-6
	for _, x := range []float64{bp.Min, bp.LowOptimal, bp.HighOptimal, bp.High, bp.Extreme} {
		below := cadenceCredit(x-eps, bp)
		above := cadenceCredit(x+eps, bp)
		assert.InDelta(t, below, above, 1e-3, "breakpoint %v", x)
	}
}

func TestFollowRestraintCredit_PenalizesExcessiveFollowing(t *testing.T) {
	assert.Greater(t, followRestraintCredit(100), 0.9)
	assert.Less(t, followRestraintCredit(10_000), 0.01)
	assert.Greater(t, followRestraintCredit(500), followRestraintCredit(5000))
}

// Verification alone cannot rescue a weak profile; it only lifts profiles
// whose base score already clears the bonus gate.
func TestPersonScore_VerificationBonusGated(t *testing.T) {
	cfg := domain.DefaultConfig()

	weak := botLikeFeatures()
	weakVerified := weak
	weakVerified.VerifiedBonus = 1
	assert.InDelta(t, PersonScore(weak, cfg), PersonScore(weakVerified, cfg), 0.01)

	strong := humanLikeFeatures()
	strongVerified := strong
	strongVerified.VerifiedBonus = 1
	lift := PersonScore(strongVerified, cfg) - PersonScore(strong, cfg)
	assert.Greater(t, lift, 0.03)
}

func TestPersonScore_WeightsSumBelowOne(t *testing.T) {
	sum := domain.DefaultConfig().PersonWeights.Sum()
	assert.Greater(t, sum, 0.80)
	assert.Less(t, sum, 0.95)
}
