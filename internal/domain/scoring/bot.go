package scoring

import "github.com/authentiq/authentiq/internal/domain"

// Bot activation signal shapes. Each signal is in [0,1]; the negative bias
// keeps the score near zero when no signal fires.
const (
	botHyperactiveMid   = 50.0 // posts/day where hyperactivity activates
	botHyperactiveSteep = 0.1

	botNoEngagementMid   = 0.05 // favorites-per-status below which engagement reads as absent
	botNoEngagementSteep = 60.0

	botUnbalancedMid   = 0.2 // normalized ratio below which the follow graph reads as spam-shaped
	botUnbalancedSteep = 12.0

	botYoungMid   = 30.0 // account age in days
	botYoungSteep = 0.1

	botWeightHyperactive  = 2.2
	botWeightNoEngagement = 1.8
	botWeightUnbalanced   = 1.6
	botWeightUncustomized = 1.2
	botWeightYoung        = 1.4
	botBias               = 4.0
)

// BotScore estimates automation likelihood from five red-flag activations:
// hyperactive posting, near-zero engagement with others, a heavily unbalanced
// follow graph, an uncustomized profile, and a very young account.
func BotScore(f domain.DerivedFeatures) float64 {
	hyperactive := risingStep(f.ActivityRate, botHyperactiveMid, botHyperactiveSteep)
	noEngagement := fallingStep(f.Engagement, botNoEngagementMid, botNoEngagementSteep)
	unbalanced := fallingStep(f.RatioNorm, botUnbalancedMid, botUnbalancedSteep)
	uncustomized := 1 - f.Customization
	young := fallingStep(f.AgeDays, botYoungMid, botYoungSteep)

	return sigmoid(botWeightHyperactive*hyperactive +
		botWeightNoEngagement*noEngagement +
		botWeightUnbalanced*unbalanced +
		botWeightUncustomized*uncustomized +
		botWeightYoung*young -
		botBias)
}
