package domain

import (
	"fmt"
	"math"
)

// HASConfig carries every weight, threshold and multiplier the scoring engine
// consumes. It is pure data: construct once, share by reference, never mutate.
// Derived configurations are produced with Merge, not by editing in place.
type HASConfig struct {
	PersonWeights       PersonWeights        `yaml:"person_weights"       json:"person_weights"`
	ActivityBreakpoints ActivityBreakpoints  `yaml:"activity_breakpoints" json:"activity_breakpoints"`
	PenaltyThresholds   PenaltyThresholds    `yaml:"penalty_thresholds"   json:"penalty_thresholds"`
	Activation          ActivationThresholds `yaml:"activation"           json:"activation"`
	PenaltyMultipliers  PenaltyMultipliers   `yaml:"penalty_multipliers"  json:"penalty_multipliers"`
}

// PersonWeights weighs the nine sub-signals of the Person score. The weights
// intentionally sum to less than 1 so the verification bonus is the only way
// a profile can approach a score of 1.
type PersonWeights struct {
	Balance         float64 `yaml:"balance"          json:"balance"`
	Cadence         float64 `yaml:"cadence"          json:"cadence"`
	Audience        float64 `yaml:"audience"         json:"audience"`
	FollowRestraint float64 `yaml:"follow_restraint" json:"follow_restraint"`
	Engagement      float64 `yaml:"engagement"       json:"engagement"`
	VolumeRestraint float64 `yaml:"volume_restraint" json:"volume_restraint"`
	Maturity        float64 `yaml:"maturity"         json:"maturity"`
	Customization   float64 `yaml:"customization"    json:"customization"`
	Safety          float64 `yaml:"safety"           json:"safety"`
}

// Sum returns the total of all nine weights.
func (w PersonWeights) Sum() float64 {
	return w.Balance + w.Cadence + w.Audience + w.FollowRestraint +
		w.Engagement + w.VolumeRestraint + w.Maturity + w.Customization + w.Safety
}

// ActivityBreakpoints are the five posts-per-day breakpoints of the piecewise
// cadence desirability curve. Must be strictly increasing.
type ActivityBreakpoints struct {
	Min         float64 `yaml:"min"          json:"min"`
	LowOptimal  float64 `yaml:"low_optimal"  json:"low_optimal"`
	HighOptimal float64 `yaml:"high_optimal" json:"high_optimal"`
	High        float64 `yaml:"high"         json:"high"`
	Extreme     float64 `yaml:"extreme"      json:"extreme"`
}

// PenaltyThresholds are the trigger points of the penalty engine's checks.
type PenaltyThresholds struct {
	VeryFewFollowers       int64   `yaml:"very_few_followers"        json:"very_few_followers"`
	FewFollowers           int64   `yaml:"few_followers"             json:"few_followers"`
	VeryFewStatuses        int64   `yaml:"very_few_statuses"         json:"very_few_statuses"`
	VeryNewAccountDays     float64 `yaml:"very_new_account_days"     json:"very_new_account_days"`
	NewAccountDays         float64 `yaml:"new_account_days"          json:"new_account_days"`
	MassFollowFollowing    int64   `yaml:"mass_follow_following"     json:"mass_follow_following"`
	MassFollowMaxFollowers int64   `yaml:"mass_follow_max_followers" json:"mass_follow_max_followers"`
	MassFollowMaxRatio     float64 `yaml:"mass_follow_max_ratio"     json:"mass_follow_max_ratio"`
	HyperactiveRate        float64 `yaml:"hyperactive_rate"          json:"hyperactive_rate"`
	HighActivityRate       float64 `yaml:"high_activity_rate"        json:"high_activity_rate"`
	HighVolumeStatuses     int64   `yaml:"high_volume_statuses"      json:"high_volume_statuses"`
	HighVolumeMaxFollowers int64   `yaml:"high_volume_max_followers" json:"high_volume_max_followers"`
	LowEngagement          float64 `yaml:"low_engagement"            json:"low_engagement"`
	LowEngagementMinRate   float64 `yaml:"low_engagement_min_rate"   json:"low_engagement_min_rate"`
}

// ActivationThresholds are the per-type cutoffs a type score must exceed to
// win classification.
type ActivationThresholds struct {
	Bot     float64 `yaml:"bot"     json:"bot"`
	Entity  float64 `yaml:"entity"  json:"entity"`
	Creator float64 `yaml:"creator" json:"creator"`
	Person  float64 `yaml:"person"  json:"person"`
}

// PenaltyMultipliers are the dampening factors applied when the matching
// penalty check triggers. Each must be in (0,1]; they stack multiplicatively.
type PenaltyMultipliers struct {
	VeryFewFollowers          float64 `yaml:"very_few_followers"           json:"very_few_followers"`
	FewFollowers              float64 `yaml:"few_followers"                json:"few_followers"`
	ZeroStatuses              float64 `yaml:"zero_statuses"                json:"zero_statuses"`
	VeryFewStatuses           float64 `yaml:"very_few_statuses"            json:"very_few_statuses"`
	VeryNewAccount            float64 `yaml:"very_new_account"             json:"very_new_account"`
	NewAccount                float64 `yaml:"new_account"                  json:"new_account"`
	MassFollow                float64 `yaml:"mass_follow"                  json:"mass_follow"`
	Hyperactive               float64 `yaml:"hyperactive"                  json:"hyperactive"`
	HighActivity              float64 `yaml:"high_activity"                json:"high_activity"`
	HighVolumeNoAudience      float64 `yaml:"high_volume_no_audience"      json:"high_volume_no_audience"`
	DefaultProfile            float64 `yaml:"default_profile"              json:"default_profile"`
	LowEngagementHighActivity float64 `yaml:"low_engagement_high_activity" json:"low_engagement_high_activity"`
}

// DefaultConfig returns the built-in tuning. Callers derive experiment
// configurations with Merge rather than mutating the returned value.
func DefaultConfig() HASConfig {
	return HASConfig{
		PersonWeights: PersonWeights{
			Balance:         0.16,
			Cadence:         0.14,
			Audience:        0.12,
			FollowRestraint: 0.08,
			Engagement:      0.12,
			VolumeRestraint: 0.06,
			Maturity:        0.10,
			Customization:   0.05,
			Safety:          0.03,
		},
		ActivityBreakpoints: ActivityBreakpoints{
			Min:         0.02,
			LowOptimal:  0.2,
			HighOptimal: 5,
			High:        20,
			Extreme:     50,
		},
		PenaltyThresholds: PenaltyThresholds{
			VeryFewFollowers:       5,
			FewFollowers:           25,
			VeryFewStatuses:        10,
			VeryNewAccountDays:     30,
			NewAccountDays:         180,
			MassFollowFollowing:    2500,
			MassFollowMaxFollowers: 100,
			MassFollowMaxRatio:     0.05,
			HyperactiveRate:        50,
			HighActivityRate:       20,
			HighVolumeStatuses:     50000,
			HighVolumeMaxFollowers: 1000,
			LowEngagement:          0.01,
			LowEngagementMinRate:   10,
		},
		Activation: ActivationThresholds{
			Bot:     0.70,
			Entity:  0.65,
			Creator: 0.65,
			Person:  0.45,
		},
		PenaltyMultipliers: PenaltyMultipliers{
			VeryFewFollowers:          0.50,
			FewFollowers:              0.85,
			ZeroStatuses:              0.40,
			VeryFewStatuses:           0.70,
			VeryNewAccount:            0.60,
			NewAccount:                0.85,
			MassFollow:                0.45,
			Hyperactive:               0.50,
			HighActivity:              0.80,
			HighVolumeNoAudience:      0.70,
			DefaultProfile:            0.75,
			LowEngagementHighActivity: 0.65,
		},
	}
}

// Validate checks the config for structurally invalid values and returns a
// descriptive error. A config that fails validation must never be scored with.
func (c HASConfig) Validate() error {
	weights := map[string]float64{
		"balance":          c.PersonWeights.Balance,
		"cadence":          c.PersonWeights.Cadence,
		"audience":         c.PersonWeights.Audience,
		"follow_restraint": c.PersonWeights.FollowRestraint,
		"engagement":       c.PersonWeights.Engagement,
		"volume_restraint": c.PersonWeights.VolumeRestraint,
		"maturity":         c.PersonWeights.Maturity,
		"customization":    c.PersonWeights.Customization,
		"safety":           c.PersonWeights.Safety,
	}
	for name, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("person_weights.%s = %v (must be >= 0)", name, w)
		}
	}

	// The sum is deliberately capped below 1 so only the verification bonus
	// can lift a profile near 1.0.
	if sum := c.PersonWeights.Sum(); sum < 0.80 || sum > 0.95 {
		return fmt.Errorf("person_weights sum to %.3f (must be between 0.80 and 0.95)", sum)
	}

	bp := c.ActivityBreakpoints
	if bp.Min <= 0 {
		return fmt.Errorf("activity_breakpoints.min = %v (must be > 0)", bp.Min)
	}
	if !(bp.Min < bp.LowOptimal && bp.LowOptimal < bp.HighOptimal && bp.HighOptimal < bp.High && bp.High < bp.Extreme) {
		return fmt.Errorf("activity_breakpoints must be strictly increasing (got %v < %v < %v < %v < %v)",
			bp.Min, bp.LowOptimal, bp.HighOptimal, bp.High, bp.Extreme)
	}

	if err := c.PenaltyThresholds.validate(); err != nil {
		return err
	}

	acts := map[string]float64{
		"bot": c.Activation.Bot, "entity": c.Activation.Entity,
		"creator": c.Activation.Creator, "person": c.Activation.Person,
	}
	for name, a := range acts {
		if a < 0 || a > 1 {
			return fmt.Errorf("activation.%s = %v (must be between 0 and 1)", name, a)
		}
	}

	mults := map[string]float64{
		"very_few_followers":           c.PenaltyMultipliers.VeryFewFollowers,
		"few_followers":                c.PenaltyMultipliers.FewFollowers,
		"zero_statuses":                c.PenaltyMultipliers.ZeroStatuses,
		"very_few_statuses":            c.PenaltyMultipliers.VeryFewStatuses,
		"very_new_account":             c.PenaltyMultipliers.VeryNewAccount,
		"new_account":                  c.PenaltyMultipliers.NewAccount,
		"mass_follow":                  c.PenaltyMultipliers.MassFollow,
		"hyperactive":                  c.PenaltyMultipliers.Hyperactive,
		"high_activity":                c.PenaltyMultipliers.HighActivity,
		"high_volume_no_audience":      c.PenaltyMultipliers.HighVolumeNoAudience,
		"default_profile":              c.PenaltyMultipliers.DefaultProfile,
		"low_engagement_high_activity": c.PenaltyMultipliers.LowEngagementHighActivity,
	}
	for name, m := range mults {
		if m <= 0 || m > 1 {
			return fmt.Errorf("penalty_multipliers.%s = %v (must be in (0,1])", name, m)
		}
	}

	return nil
}

func (t PenaltyThresholds) validate() error {
	if t.VeryFewFollowers < 0 || t.FewFollowers < 0 || t.VeryFewStatuses < 0 ||
		t.MassFollowFollowing < 0 || t.MassFollowMaxFollowers < 0 ||
		t.HighVolumeStatuses < 0 || t.HighVolumeMaxFollowers < 0 {
		return fmt.Errorf("penalty_thresholds: counts must be >= 0")
	}
	if t.VeryNewAccountDays < 0 || t.NewAccountDays < 0 || t.HyperactiveRate < 0 ||
		t.HighActivityRate < 0 || t.LowEngagement < 0 || t.LowEngagementMinRate < 0 ||
		t.MassFollowMaxRatio < 0 {
		return fmt.Errorf("penalty_thresholds: rates must be >= 0")
	}
	if t.VeryFewFollowers > t.FewFollowers {
		return fmt.Errorf("penalty_thresholds.very_few_followers (%d) must be <= few_followers (%d)",
			t.VeryFewFollowers, t.FewFollowers)
	}
	if t.VeryNewAccountDays > t.NewAccountDays {
		return fmt.Errorf("penalty_thresholds.very_new_account_days (%v) must be <= new_account_days (%v)",
			t.VeryNewAccountDays, t.NewAccountDays)
	}
	if t.HighActivityRate > t.HyperactiveRate {
		return fmt.Errorf("penalty_thresholds.high_activity_rate (%v) must be <= hyperactive_rate (%v)",
			t.HighActivityRate, t.HyperactiveRate)
	}
	return nil
}
