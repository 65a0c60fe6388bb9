package domain

import "context"

// ConfigLoader loads the effective scoring configuration, merged over the
// built-in defaults and validated.
type ConfigLoader interface {
	Load(path string) (HASConfig, error)
}

// ProfileRecord is a profile snapshot with an optional caller-assigned ID,
// as read from a batch input stream.
type ProfileRecord struct {
	ID string `json:"id,omitempty"`
	ProfileData
}

// ProfileSource streams profile snapshots for batch scoring.
type ProfileSource interface {
	Next() (ProfileRecord, error) // returns io.EOF when exhausted
	Close() error
}

// ScoredProfile pairs a profile snapshot with its scoring output.
type ScoredProfile struct {
	ID       string      `json:"id,omitempty"`
	Profile  ProfileData `json:"profile"`
	Detailed Detailed    `json:"detailed"`
}

// ResultStore persists scored profiles for later analysis.
type ResultStore interface {
	Save(ctx context.Context, results []ScoredProfile) error
	CountByType(ctx context.Context) (map[UserType]int64, error)
	Close() error
}
