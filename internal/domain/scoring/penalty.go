package scoring

import "github.com/authentiq/authentiq/internal/domain"

// penaltyCheck pairs a red-flag predicate with the multiplier applied when it
// triggers. Checks are independent and evaluated in a fixed order.
type penaltyCheck struct {
	triggered  func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool
	multiplier func(m domain.PenaltyMultipliers) float64
}

// penaltyChecks is the fixed sequence of red-flag patterns. Multipliers stack
// multiplicatively, so a profile triggering several checks degrades faster
// than any single flag would suggest: favor false negatives on bots over
// false positives on humans.
var penaltyChecks = []penaltyCheck{
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.Followers < t.VeryFewFollowers
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.VeryFewFollowers },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.Followers >= t.VeryFewFollowers && f.Followers < t.FewFollowers
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.FewFollowers },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.Statuses == 0
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.ZeroStatuses },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.Statuses > 0 && f.Statuses < t.VeryFewStatuses
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.VeryFewStatuses },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.AgeDays < t.VeryNewAccountDays
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.VeryNewAccount },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.AgeDays >= t.VeryNewAccountDays && f.AgeDays < t.NewAccountDays
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.NewAccount },
	},
	{
		// Classic mass-follow spam: following thousands while almost nobody
		// follows back.
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			if f.Following <= t.MassFollowFollowing {
				return false
			}
			rawRatio := float64(f.Followers) / float64(f.Following+1)
			return f.Followers < t.MassFollowMaxFollowers || rawRatio < t.MassFollowMaxRatio
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.MassFollow },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.ActivityRate > t.HyperactiveRate
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.Hyperactive },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.ActivityRate > t.HighActivityRate && f.ActivityRate <= t.HyperactiveRate
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.HighActivity },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.Statuses > t.HighVolumeStatuses && f.Followers < t.HighVolumeMaxFollowers
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.HighVolumeNoAudience },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.Customization == 0
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.DefaultProfile },
	},
	{
		triggered: func(f domain.DerivedFeatures, t domain.PenaltyThresholds) bool {
			return f.Engagement < t.LowEngagement && f.ActivityRate > t.LowEngagementMinRate
		},
		multiplier: func(m domain.PenaltyMultipliers) float64 { return m.LowEngagementHighActivity },
	},
}

// Penalty reduces the fixed check list to a single dampening factor in (0,1].
// It is a pure function of the current features and config; no state survives
// between calls.
func Penalty(f domain.DerivedFeatures, cfg domain.HASConfig) float64 {
	penalty := 1.0
	for _, check := range penaltyChecks {
		if check.triggered(f, cfg.PenaltyThresholds) {
			penalty *= check.multiplier(cfg.PenaltyMultipliers)
		}
	}
	return penalty
}
