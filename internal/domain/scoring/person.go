package scoring

import (
	"math"

	"github.com/authentiq/authentiq/internal/domain"
)

const (
	personBalanceCenter = 0.0 // log10 ratio; 1:1 follow graph
	personBalanceWidth  = 0.9

	personAudienceLogCap = 6.0 // full credit at 1M followers

	personFollowRestraintMid   = 3000.0 // following count where credit halves
	personFollowRestraintScale = 800.0

	personVolumeDecayStatuses = 150000.0
	personMaturityHalfDays    = 730.0 // slower-saturating than the shared age decay

	// Verification bonus: gated on the base score so verification lifts only
	// already-strong profiles toward 1.0 instead of rescuing weak ones.
	personBonusGate  = 0.70
	personBonusSteep = 12.0
	personBonusMax   = 0.12
)

// PersonScore estimates the likelihood of an ordinary human account as a
// weighted sum of nine sub-signals. Unlike the other scorers it is not passed
// through a final sigmoid: the configured weights sum below 1, so the base
// score already reads as a probability-like confidence, and the gated
// verification bonus is the only path above that cap.
func PersonScore(f domain.DerivedFeatures, cfg domain.HASConfig) float64 {
	w := cfg.PersonWeights

	base := w.Balance*bell(f.Ratio, personBalanceCenter, personBalanceWidth) +
		w.Cadence*cadenceCredit(f.ActivityRate, cfg.ActivityBreakpoints) +
		w.Audience*audienceCredit(f.Followers) +
		w.FollowRestraint*followRestraintCredit(f.Following) +
		w.Engagement*math.Sqrt(f.Engagement) +
		w.VolumeRestraint*math.Exp(-float64(f.Statuses)/personVolumeDecayStatuses) +
		w.Maturity*(1-math.Exp(-f.AgeDays/personMaturityHalfDays)) +
		w.Customization*f.Customization +
		w.Safety*f.Safety

	bonus := f.VerifiedBonus * personBonusMax * sigmoid((base-personBonusGate)*personBonusSteep)

	return clamp01(base + bonus)
}

// cadenceCredit is the piecewise posting-cadence desirability curve over the
// five configured breakpoints: a ramp up to the optimal band, full credit
// inside it, then two linear descents and a tail that fades hyperactive
// posting toward zero.
func cadenceCredit(rate float64, bp domain.ActivityBreakpoints) float64 {
	switch {
	case rate <= 0:
		return 0
	case rate < bp.Min:
		return 0.3 * rate / bp.Min
	case rate < bp.LowOptimal:
		return 0.3 + 0.7*(rate-bp.Min)/(bp.LowOptimal-bp.Min)
	case rate <= bp.HighOptimal:
		return 1.0
	case rate <= bp.High:
		return 1.0 - 0.6*(rate-bp.HighOptimal)/(bp.High-bp.HighOptimal)
	case rate <= bp.Extreme:
		return 0.4 - 0.3*(rate-bp.High)/(bp.Extreme-bp.High)
	default:
		return 0.1 * bp.Extreme / rate
	}
}

// audienceCredit grants logarithmic credit for an established audience.
// Monotone nondecreasing in follower count.
func audienceCredit(followers int64) float64 {
	return math.Min(1, math.Log10(float64(followers+1))/personAudienceLogCap)
}

// followRestraintCredit smoothly penalizes excessive following.
func followRestraintCredit(following int64) float64 {
	return sigmoid((personFollowRestraintMid - float64(following)) / personFollowRestraintScale)
}
