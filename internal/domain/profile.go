package domain

import "time"

// ProfileData is a normalized snapshot of a social profile's public counters
// and flags. One value is constructed per scoring call and never mutated.
//
// ObservedAt is the instant the snapshot was taken. Account age is derived
// from ObservedAt - CreatedAt, which keeps scoring deterministic: the same
// snapshot always produces the same result, regardless of when it is scored.
type ProfileData struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Statuses  int64 `json:"statuses"`
	Favorites int64 `json:"favorites"`
	Listed    int64 `json:"listed"`
	Media     int64 `json:"media"`

	Verified          bool `json:"verified"`
	DefaultProfile    bool `json:"default_profile"`
	DefaultImage      bool `json:"default_image"`
	PossiblySensitive bool `json:"possibly_sensitive"`

	CreatedAt  time.Time `json:"created_at"`
	ObservedAt time.Time `json:"observed_at"`
}

// DerivedFeatures holds the normalized quantities computed once per profile
// snapshot and shared by all type scorers and the penalty engine. Every ratio
// and signal field is bounded; ActivityRate and the raw pass-throughs are not.
type DerivedFeatures struct {
	Ratio           float64 `json:"ratio"`            // clamped log10 follower/following ratio, in [-2,3]
	RatioNorm       float64 `json:"ratio_norm"`       // Ratio mapped into [0,1]
	Engagement      float64 `json:"engagement"`       // favorites per status, capped at 1
	ListCredibility float64 `json:"list_credibility"` // tanh(listed/50)
	MediaRatio      float64 `json:"media_ratio"`      // media per status, capped at 1
	AgeDecay        float64 `json:"age_decay"`        // 1 - exp(-ageDays/365)
	ActivityRate    float64 `json:"activity_rate"`    // statuses per day
	Customization   float64 `json:"customization"`    // 0, 0.5 or 1
	Safety          float64 `json:"safety"`           // 1, or 0.7 if possibly sensitive
	VerifiedBonus   float64 `json:"verified_bonus"`   // 1 if verified

	// Raw pass-throughs needed by penalty threshold checks.
	Followers int64   `json:"followers"`
	Following int64   `json:"following"`
	Statuses  int64   `json:"statuses"`
	AgeDays   float64 `json:"age_days"`
}
