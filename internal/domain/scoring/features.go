package scoring

import (
	"math"

	"github.com/authentiq/authentiq/internal/domain"
)

// ExtractFeatures converts a raw profile snapshot into the derived features
// consumed by the type scorers and the penalty engine. It is total: every
// division guards its denominator and negative durations clamp to zero, so
// any well-typed snapshot produces a usable feature vector.
func ExtractFeatures(p domain.ProfileData) domain.DerivedFeatures {
	followers := nonneg(p.Followers)
	following := nonneg(p.Following)
	statuses := nonneg(p.Statuses)
	favorites := nonneg(p.Favorites)
	listed := nonneg(p.Listed)
	media := nonneg(p.Media)

	// Raw follower/following ratios are heavy-tailed; log-compression plus
	// clamping keeps both bot-like and celebrity-like extremes bounded.
	ratio := clamp(math.Log10(float64(followers+1)/float64(following+1)), -2, 3)

	ageDays := 0.0
	if !p.CreatedAt.IsZero() {
		ageDays = math.Max(0, p.ObservedAt.Sub(p.CreatedAt).Hours()/24)
	}

	customization := 0.0
	if !p.DefaultProfile {
		customization += 0.5
	}
	if !p.DefaultImage {
		customization += 0.5
	}

	safety := 1.0
	if p.PossiblySensitive {
		safety = 0.7
	}

	verified := 0.0
	if p.Verified {
		verified = 1.0
	}

	return domain.DerivedFeatures{
		Ratio:           ratio,
		RatioNorm:       (ratio + 2) / 5,
		Engagement:      math.Min(1, float64(favorites)/float64(statuses+1)),
		ListCredibility: math.Tanh(float64(listed) / 50),
		MediaRatio:      math.Min(1, float64(media)/float64(statuses+1)),
		AgeDecay:        1 - math.Exp(-ageDays/365),
		ActivityRate:    float64(statuses) / (ageDays + 1),
		Customization:   customization,
		Safety:          safety,
		VerifiedBonus:   verified,
		Followers:       followers,
		Following:       following,
		Statuses:        statuses,
		AgeDays:         ageDays,
	}
}

func nonneg(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
