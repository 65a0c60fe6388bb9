// Package scoring implements the Human Authenticity Score engine: a pure,
// deterministic classifier that maps a profile snapshot to a type label and a
// confidence score in [0,1]. The engine owns no state and performs no I/O;
// any number of calls may run concurrently against a shared HASConfig.
package scoring

import "github.com/authentiq/authentiq/internal/domain"

// Compute scores a profile snapshot with the built-in default configuration.
func Compute(p domain.ProfileData) domain.HASResult {
	return ComputeWithConfig(p, domain.DefaultConfig())
}

// ComputeWithConfig scores a profile snapshot with an explicit configuration.
// The config must have passed Validate; the engine does not re-check it on
// the hot path.
func ComputeWithConfig(p domain.ProfileData, cfg domain.HASConfig) domain.HASResult {
	return ComputeDetailed(p, cfg).Result
}

// ComputeDetailed scores a profile and exposes every intermediate value. It
// is a read-only superset of ComputeWithConfig: Result is identical to what
// ComputeWithConfig returns for the same inputs.
func ComputeDetailed(p domain.ProfileData, cfg domain.HASConfig) domain.Detailed {
	f := ExtractFeatures(p)

	s := typeScores{
		bot:     BotScore(f),
		creator: CreatorScore(f),
		entity:  EntityScore(f),
		person:  PersonScore(f, cfg),
	}

	penalty := Penalty(f, cfg)
	label, raw := classify(s, cfg.Activation)

	return domain.Detailed{
		Features:     f,
		BotScore:     s.bot,
		CreatorScore: s.creator,
		EntityScore:  s.entity,
		PersonScore:  s.person,
		Penalty:      penalty,
		Result: domain.HASResult{
			Score: clamp01(round4(raw * penalty)),
			Type:  label,
		},
	}
}
