package scoring

import (
	"testing"

	"github.com/authentiq/authentiq/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testActivation = domain.DefaultConfig().Activation

func TestClassify_BotWinsFirst(t *testing.T) {
	// Bot outranks everything else even when other scores also clear their
	// thresholds.
	label, raw := classify(typeScores{bot: 0.9, entity: 0.9, creator: 0.9, person: 0.9}, testActivation)
	assert.Equal(t, domain.TypeBot, label)
	assert.InDelta(t, 0.1, raw, 1e-12)
}

func TestClassify_EntityRequiresBotBelowGuard(t *testing.T) {
	label, raw := classify(typeScores{bot: 0.2, entity: 0.8, person: 0.7}, testActivation)
	assert.Equal(t, domain.TypeEntity, label)
	assert.InDelta(t, 0.2, raw, 1e-12)
}

func TestClassify_EntityBlockedByAmbiguousBot(t *testing.T) {
	// Bot missed its own threshold but sits above the guard: Entity may not
	// claim the profile.
	label, _ := classify(typeScores{bot: 0.6, entity: 0.8, person: 0.7}, testActivation)
	assert.NotEqual(t, domain.TypeEntity, label)
}

func TestClassify_CreatorRequiresBothGuards(t *testing.T) {
	label, raw := classify(typeScores{bot: 0.1, entity: 0.3, creator: 0.8, person: 0.7}, testActivation)
	assert.Equal(t, domain.TypeCreator, label)
	assert.Equal(t, 0.8, raw)

	label, _ = classify(typeScores{bot: 0.1, entity: 0.55, creator: 0.8, person: 0.7}, testActivation)
	assert.NotEqual(t, domain.TypeCreator, label)
}

func TestClassify_PersonScoreUsedDirectly(t *testing.T) {
	label, raw := classify(typeScores{bot: 0.1, entity: 0.2, creator: 0.3, person: 0.72}, testActivation)
	assert.Equal(t, domain.TypeHuman, label)
	assert.Equal(t, 0.72, raw)
}

func TestClassify_FallbackPicksBestHumanLikeScore(t *testing.T) {
	// Nothing clears activation; person wins the argmax (Bot and Entity rank
	// by their inverted values).
	label, raw := classify(typeScores{bot: 0.65, entity: 0.62, creator: 0.3, person: 0.4}, testActivation)
	assert.Equal(t, domain.TypeHuman, label)
	assert.Equal(t, 0.4, raw)
}

func TestClassify_FallbackCreator(t *testing.T) {
	label, raw := classify(typeScores{bot: 0.45, entity: 0.45, creator: 0.6, person: 0.4}, testActivation)
	assert.Equal(t, domain.TypeCreator, label)
	assert.Equal(t, 0.6, raw)
}

// Pinned behavior: when the argmax lands on Bot or Entity the label collapses
// to Other with a flat neutral 0.5 rather than surfacing an inverted
// low-confidence value as if it were a real score.
func TestClassify_FallbackToOtherIsNeutral(t *testing.T) {
	label, raw := classify(typeScores{bot: 0.05, entity: 0.3, creator: 0.2, person: 0.3}, testActivation)
	assert.Equal(t, domain.TypeOther, label)
	assert.Equal(t, 0.5, raw)
}

func TestClassify_AlwaysProducesAValidLabel(t *testing.T) {
	grid := []float64{0, 0.25, 0.5, 0.75, 1}
	for _, b := range grid {
		for _, e := range grid {
			for _, c := range grid {
				for _, p := range grid {
					label, raw := classify(typeScores{bot: b, entity: e, creator: c, person: p}, testActivation)
					assert.Contains(t, domain.ValidUserTypes, label)
					assert.GreaterOrEqual(t, raw, 0.0)
					assert.LessOrEqual(t, raw, 1.0)
				}
			}
		}
	}
}
