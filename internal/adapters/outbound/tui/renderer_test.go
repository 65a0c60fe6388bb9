package tui_test

import (
	"testing"

	"github.com/authentiq/authentiq/internal/adapters/outbound/tui"
	"github.com/authentiq/authentiq/internal/application"
	"github.com/authentiq/authentiq/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleDetailed() domain.Detailed {
	return domain.Detailed{
		Features: domain.DerivedFeatures{
			Ratio:         1.88,
			Engagement:    0.3,
			MediaRatio:    0.1,
			AgeDecay:      0.86,
			Customization: 1.0,
			Safety:        1.0,
			ActivityRate:  1.5,
			AgeDays:       730,
		},
		BotScore:     0.02,
		CreatorScore: 0.11,
		EntityScore:  0.08,
		PersonScore:  0.7312,
		Penalty:      1.0,
		Result:       domain.HASResult{Score: 0.7312, Type: domain.TypeHuman},
	}
}

func TestRenderDetailed_ContainsScoreAndLabel(t *testing.T) {
	output := tui.RenderDetailed(sampleDetailed())
	assert.Contains(t, output, "0.7312")
	assert.Contains(t, output, "Human")
	assert.Contains(t, output, "authentiq")
}

func TestRenderDetailed_ContainsModelScores(t *testing.T) {
	output := tui.RenderDetailed(sampleDetailed())
	assert.Contains(t, output, "person")
	assert.Contains(t, output, "bot")
	assert.Contains(t, output, "creator")
	assert.Contains(t, output, "entity")
}

func TestRenderDetailed_ContainsSignals(t *testing.T) {
	output := tui.RenderDetailed(sampleDetailed())
	assert.Contains(t, output, "engagement")
	assert.Contains(t, output, "customization")
	assert.Contains(t, output, "730 days")
}

func TestRenderDetailed_NoPenaltyLine(t *testing.T) {
	output := tui.RenderDetailed(sampleDetailed())
	assert.Contains(t, output, "No penalties applied.")
}

func TestRenderDetailed_PenaltyShown(t *testing.T) {
	d := sampleDetailed()
	d.Penalty = 0.45
	output := tui.RenderDetailed(d)
	assert.Contains(t, output, "×0.4500")
}

func sampleSummary() application.BatchSummary {
	s := application.BatchSummary{
		Total: 100,
		Counts: map[domain.UserType]int64{
			domain.TypeHuman: 70,
			domain.TypeBot:   20,
			domain.TypeOther: 10,
		},
		MeanScore: 0.6123,
	}
	s.Histogram[0] = 20
	s.Histogram[7] = 70
	s.Histogram[9] = 10
	return s
}

func TestRenderSummary_ContainsCounts(t *testing.T) {
	output := tui.RenderSummary(sampleSummary())
	assert.Contains(t, output, "100 profiles")
	assert.Contains(t, output, "Human")
	assert.Contains(t, output, "70")
	assert.Contains(t, output, "Bot")
	assert.Contains(t, output, "mean 0.6123")
}

func TestRenderSummary_ContainsHistogramBuckets(t *testing.T) {
	output := tui.RenderSummary(sampleSummary())
	assert.Contains(t, output, "0.0 – 0.1")
	assert.Contains(t, output, "0.9 – 1.0")
}
