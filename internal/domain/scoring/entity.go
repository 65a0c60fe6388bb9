package scoring

import "github.com/authentiq/authentiq/internal/domain"

const (
	entityRatioMid   = 2.5 // log10 ratio; activates past ~300:1
	entityRatioSteep = 3.0

	entityLowEngagementMid   = 0.1 // brand accounts rarely favorite others' posts
	entityLowEngagementSteep = 30.0

	entityCadenceCenter = 8.0 // posts/day; steady office-hours cadence
	entityCadenceWidth  = 6.0

	entityWeightRatio         = 2.0
	entityWeightLowEngagement = 1.8
	entityWeightCadence       = 1.2
	entityWeightMedia         = 0.5
	entityWeightVerified      = 0.6
	entityBias                = 4.4
)

// EntityScore estimates the likelihood of an organization rather than an
// individual: an extreme follower ratio, little personal engagement, a
// consistent (but not hyperactive) posting cadence, media content, and
// verification. The low-engagement signal is what separates organizations
// from individual creators with similar reach.
func EntityScore(f domain.DerivedFeatures) float64 {
	extremeRatio := risingStep(f.Ratio, entityRatioMid, entityRatioSteep)
	lowEngagement := fallingStep(f.Engagement, entityLowEngagementMid, entityLowEngagementSteep)
	cadence := bell(f.ActivityRate, entityCadenceCenter, entityCadenceWidth)

	return sigmoid(entityWeightRatio*extremeRatio +
		entityWeightLowEngagement*lowEngagement +
		entityWeightCadence*cadence +
		entityWeightMedia*f.MediaRatio +
		entityWeightVerified*f.VerifiedBonus -
		entityBias)
}
