package scoring

import (
	"math"

	"github.com/authentiq/authentiq/internal/domain"
)

const (
	creatorAudienceMid   = 4.0 // log10 followers; activates around 10k
	creatorAudienceSteep = 2.0

	creatorRatioCenter = 1.5 // log10 ratio; high but not celebrity-extreme
	creatorRatioWidth  = 1.2

	creatorWeightAudience = 2.0
	creatorWeightRatio    = 1.6
	creatorWeightMedia    = 1.2
	creatorWeightLists    = 1.0
	creatorWeightVerified = 0.8
	creatorBias           = 3.2
)

// CreatorScore estimates the likelihood of an individual content creator:
// a large audience, a high (not extreme) follower ratio, media-heavy posting,
// list presence, and verification.
func CreatorScore(f domain.DerivedFeatures) float64 {
	audience := risingStep(math.Log10(float64(f.Followers+1)), creatorAudienceMid, creatorAudienceSteep)
	ratioFit := bell(f.Ratio, creatorRatioCenter, creatorRatioWidth)

	return sigmoid(creatorWeightAudience*audience +
		creatorWeightRatio*ratioFit +
		creatorWeightMedia*f.MediaRatio +
		creatorWeightLists*f.ListCredibility +
		creatorWeightVerified*f.VerifiedBonus -
		creatorBias)
}
