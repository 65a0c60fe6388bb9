package scoring

import "github.com/authentiq/authentiq/internal/domain"

// typeScores collects the four type-scorer outputs for one profile.
type typeScores struct {
	bot     float64
	creator float64
	entity  float64
	person  float64
}

// guardCeiling blocks lower-priority labels when a higher-priority score is
// ambiguous even though it missed its activation threshold.
const guardCeiling = 0.5

// classify applies the fixed priority order over the four type scores and
// returns exactly one label with its raw (pre-penalty) score.
//
// Bot and Entity raw scores are inverted: a confident bot/org classification
// means a low usable authenticity score.
func classify(s typeScores, act domain.ActivationThresholds) (domain.UserType, float64) {
	switch {
	case s.bot > act.Bot:
		return domain.TypeBot, 1 - s.bot
	case s.entity > act.Entity && s.bot < guardCeiling:
		return domain.TypeEntity, 1 - s.entity
	case s.creator > act.Creator && s.entity < guardCeiling && s.bot < guardCeiling:
		return domain.TypeCreator, s.creator
	case s.person > act.Person:
		return domain.TypeHuman, s.person
	}
	return fallback(s)
}

// fallback picks the argmax over all four scores, ranking Bot and Entity by
// their inverted values for consistency with the priority rules. When the
// argmax lands on Bot or Entity anyway, the label collapses to Other with a
// neutral 0.5: an inverted low-confidence value must not surface as if it
// were a confident score. Pinned behavior.
func fallback(s typeScores) (domain.UserType, float64) {
	candidates := []struct {
		label domain.UserType
		rank  float64
		score float64
	}{
		{domain.TypeHuman, s.person, s.person},
		{domain.TypeCreator, s.creator, s.creator},
		{domain.TypeEntity, 1 - s.entity, 1 - s.entity},
		{domain.TypeBot, 1 - s.bot, 1 - s.bot},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.rank > best.rank {
			best = c
		}
	}

	if best.label == domain.TypeBot || best.label == domain.TypeEntity {
		return domain.TypeOther, 0.5
	}
	return best.label, best.score
}
