package domain

// Overrides is a partial HASConfig. Pointer fields distinguish "not
// specified" from explicit zero values, so a serialized overrides document
// only changes the fields it names.
type Overrides struct {
	PersonWeights       *PersonWeightsOverride       `yaml:"person_weights,omitempty"       json:"person_weights,omitempty"`
	ActivityBreakpoints *ActivityBreakpointsOverride `yaml:"activity_breakpoints,omitempty" json:"activity_breakpoints,omitempty"`
	PenaltyThresholds   *PenaltyThresholdsOverride   `yaml:"penalty_thresholds,omitempty"   json:"penalty_thresholds,omitempty"`
	Activation          *ActivationOverride          `yaml:"activation,omitempty"           json:"activation,omitempty"`
	PenaltyMultipliers  *PenaltyMultipliersOverride  `yaml:"penalty_multipliers,omitempty"  json:"penalty_multipliers,omitempty"`
}

type PersonWeightsOverride struct {
	Balance         *float64 `yaml:"balance,omitempty"          json:"balance,omitempty"`
	Cadence         *float64 `yaml:"cadence,omitempty"          json:"cadence,omitempty"`
	Audience        *float64 `yaml:"audience,omitempty"         json:"audience,omitempty"`
	FollowRestraint *float64 `yaml:"follow_restraint,omitempty" json:"follow_restraint,omitempty"`
	Engagement      *float64 `yaml:"engagement,omitempty"       json:"engagement,omitempty"`
	VolumeRestraint *float64 `yaml:"volume_restraint,omitempty" json:"volume_restraint,omitempty"`
	Maturity        *float64 `yaml:"maturity,omitempty"         json:"maturity,omitempty"`
	Customization   *float64 `yaml:"customization,omitempty"    json:"customization,omitempty"`
	Safety          *float64 `yaml:"safety,omitempty"           json:"safety,omitempty"`
}

type ActivityBreakpointsOverride struct {
	Min         *float64 `yaml:"min,omitempty"          json:"min,omitempty"`
	LowOptimal  *float64 `yaml:"low_optimal,omitempty"  json:"low_optimal,omitempty"`
	HighOptimal *float64 `yaml:"high_optimal,omitempty" json:"high_optimal,omitempty"`
	High        *float64 `yaml:"high,omitempty"         json:"high,omitempty"`
	Extreme     *float64 `yaml:"extreme,omitempty"      json:"extreme,omitempty"`
}

type PenaltyThresholdsOverride struct {
	VeryFewFollowers       *int64   `yaml:"very_few_followers,omitempty"        json:"very_few_followers,omitempty"`
	FewFollowers           *int64   `yaml:"few_followers,omitempty"             json:"few_followers,omitempty"`
	VeryFewStatuses        *int64   `yaml:"very_few_statuses,omitempty"         json:"very_few_statuses,omitempty"`
	VeryNewAccountDays     *float64 `yaml:"very_new_account_days,omitempty"     json:"very_new_account_days,omitempty"`
	NewAccountDays         *float64 `yaml:"new_account_days,omitempty"          json:"new_account_days,omitempty"`
	MassFollowFollowing    *int64   `yaml:"mass_follow_following,omitempty"     json:"mass_follow_following,omitempty"`
	MassFollowMaxFollowers *int64   `yaml:"mass_follow_max_followers,omitempty" json:"mass_follow_max_followers,omitempty"`
	MassFollowMaxRatio     *float64 `yaml:"mass_follow_max_ratio,omitempty"     json:"mass_follow_max_ratio,omitempty"`
	HyperactiveRate        *float64 `yaml:"hyperactive_rate,omitempty"          json:"hyperactive_rate,omitempty"`
	HighActivityRate       *float64 `yaml:"high_activity_rate,omitempty"        json:"high_activity_rate,omitempty"`
	HighVolumeStatuses     *int64   `yaml:"high_volume_statuses,omitempty"      json:"high_volume_statuses,omitempty"`
	HighVolumeMaxFollowers *int64   `yaml:"high_volume_max_followers,omitempty" json:"high_volume_max_followers,omitempty"`
	LowEngagement          *float64 `yaml:"low_engagement,omitempty"            json:"low_engagement,omitempty"`
	LowEngagementMinRate   *float64 `yaml:"low_engagement_min_rate,omitempty"   json:"low_engagement_min_rate,omitempty"`
}

type ActivationOverride struct {
	Bot     *float64 `yaml:"bot,omitempty"     json:"bot,omitempty"`
	Entity  *float64 `yaml:"entity,omitempty"  json:"entity,omitempty"`
	Creator *float64 `yaml:"creator,omitempty" json:"creator,omitempty"`
	Person  *float64 `yaml:"person,omitempty"  json:"person,omitempty"`
}

type PenaltyMultipliersOverride struct {
	VeryFewFollowers          *float64 `yaml:"very_few_followers,omitempty"           json:"very_few_followers,omitempty"`
	FewFollowers              *float64 `yaml:"few_followers,omitempty"                json:"few_followers,omitempty"`
	ZeroStatuses              *float64 `yaml:"zero_statuses,omitempty"                json:"zero_statuses,omitempty"`
	VeryFewStatuses           *float64 `yaml:"very_few_statuses,omitempty"            json:"very_few_statuses,omitempty"`
	VeryNewAccount            *float64 `yaml:"very_new_account,omitempty"             json:"very_new_account,omitempty"`
	NewAccount                *float64 `yaml:"new_account,omitempty"                  json:"new_account,omitempty"`
	MassFollow                *float64 `yaml:"mass_follow,omitempty"                  json:"mass_follow,omitempty"`
	Hyperactive               *float64 `yaml:"hyperactive,omitempty"                  json:"hyperactive,omitempty"`
	HighActivity              *float64 `yaml:"high_activity,omitempty"                json:"high_activity,omitempty"`
	HighVolumeNoAudience      *float64 `yaml:"high_volume_no_audience,omitempty"      json:"high_volume_no_audience,omitempty"`
	DefaultProfile            *float64 `yaml:"default_profile,omitempty"              json:"default_profile,omitempty"`
	LowEngagementHighActivity *float64 `yaml:"low_engagement_high_activity,omitempty" json:"low_engagement_high_activity,omitempty"`
}

// Merge returns a new config with every field named in o overriding the
// receiver, field-wise last-write-wins. The receiver is not modified.
// Merging an empty Overrides returns the receiver unchanged.
func (c HASConfig) Merge(o Overrides) HASConfig {
	out := c

	if w := o.PersonWeights; w != nil {
		set(&out.PersonWeights.Balance, w.Balance)
		set(&out.PersonWeights.Cadence, w.Cadence)
		set(&out.PersonWeights.Audience, w.Audience)
		set(&out.PersonWeights.FollowRestraint, w.FollowRestraint)
		set(&out.PersonWeights.Engagement, w.Engagement)
		set(&out.PersonWeights.VolumeRestraint, w.VolumeRestraint)
		set(&out.PersonWeights.Maturity, w.Maturity)
		set(&out.PersonWeights.Customization, w.Customization)
		set(&out.PersonWeights.Safety, w.Safety)
	}

	if b := o.ActivityBreakpoints; b != nil {
		set(&out.ActivityBreakpoints.Min, b.Min)
		set(&out.ActivityBreakpoints.LowOptimal, b.LowOptimal)
		set(&out.ActivityBreakpoints.HighOptimal, b.HighOptimal)
		set(&out.ActivityBreakpoints.High, b.High)
		set(&out.ActivityBreakpoints.Extreme, b.Extreme)
	}

	if t := o.PenaltyThresholds; t != nil {
		set(&out.PenaltyThresholds.VeryFewFollowers, t.VeryFewFollowers)
		set(&out.PenaltyThresholds.FewFollowers, t.FewFollowers)
		set(&out.PenaltyThresholds.VeryFewStatuses, t.VeryFewStatuses)
		set(&out.PenaltyThresholds.VeryNewAccountDays, t.VeryNewAccountDays)
		set(&out.PenaltyThresholds.NewAccountDays, t.NewAccountDays)
		set(&out.PenaltyThresholds.MassFollowFollowing, t.MassFollowFollowing)
		set(&out.PenaltyThresholds.MassFollowMaxFollowers, t.MassFollowMaxFollowers)
		set(&out.PenaltyThresholds.MassFollowMaxRatio, t.MassFollowMaxRatio)
		set(&out.PenaltyThresholds.HyperactiveRate, t.HyperactiveRate)
		set(&out.PenaltyThresholds.HighActivityRate, t.HighActivityRate)
		set(&out.PenaltyThresholds.HighVolumeStatuses, t.HighVolumeStatuses)
		set(&out.PenaltyThresholds.HighVolumeMaxFollowers, t.HighVolumeMaxFollowers)
		set(&out.PenaltyThresholds.LowEngagement, t.LowEngagement)
		set(&out.PenaltyThresholds.LowEngagementMinRate, t.LowEngagementMinRate)
	}

	if a := o.Activation; a != nil {
		set(&out.Activation.Bot, a.Bot)
		set(&out.Activation.Entity, a.Entity)
		set(&out.Activation.Creator, a.Creator)
		set(&out.Activation.Person, a.Person)
	}

	if m := o.PenaltyMultipliers; m != nil {
		set(&out.PenaltyMultipliers.VeryFewFollowers, m.VeryFewFollowers)
		set(&out.PenaltyMultipliers.FewFollowers, m.FewFollowers)
		set(&out.PenaltyMultipliers.ZeroStatuses, m.ZeroStatuses)
		set(&out.PenaltyMultipliers.VeryFewStatuses, m.VeryFewStatuses)
		set(&out.PenaltyMultipliers.VeryNewAccount, m.VeryNewAccount)
		set(&out.PenaltyMultipliers.NewAccount, m.NewAccount)
		set(&out.PenaltyMultipliers.MassFollow, m.MassFollow)
		set(&out.PenaltyMultipliers.Hyperactive, m.Hyperactive)
		set(&out.PenaltyMultipliers.HighActivity, m.HighActivity)
		set(&out.PenaltyMultipliers.HighVolumeNoAudience, m.HighVolumeNoAudience)
		set(&out.PenaltyMultipliers.DefaultProfile, m.DefaultProfile)
		set(&out.PenaltyMultipliers.LowEngagementHighActivity, m.LowEngagementHighActivity)
	}

	return out
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
