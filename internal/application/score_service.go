package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/authentiq/authentiq/internal/domain"
	"github.com/authentiq/authentiq/internal/domain/scoring"
	"golang.org/x/sync/errgroup"
)

// ScoreService orchestrates the scoring pipeline around the pure engine:
// load config → score → optionally persist. The engine itself stays free of
// I/O; everything with a failure mode lives here.
type ScoreService struct {
	loader domain.ConfigLoader
}

func NewScoreService(loader domain.ConfigLoader) *ScoreService {
	return &ScoreService{loader: loader}
}

// ScoreProfile scores a single snapshot with the effective configuration at
// configPath (empty for defaults).
func (s *ScoreService) ScoreProfile(p domain.ProfileData, configPath string) (domain.Detailed, error) {
	cfg, err := s.loader.Load(configPath)
	if err != nil {
		return domain.Detailed{}, fmt.Errorf("loading config: %w", err)
	}
	return scoring.ComputeDetailed(p, cfg), nil
}

// BatchOptions tunes a batch scoring run.
type BatchOptions struct {
	ConfigPath string
	// Workers caps concurrent scoring goroutines; <=0 means GOMAXPROCS.
	Workers int
	// AsOf is substituted for records whose snapshot carries no ObservedAt,
	// so a batch run is reproducible from its inputs plus this one instant.
	AsOf time.Time
}

// ScoreBatch drains src, scoring records concurrently. Each scoring call is
// independent, so results carry no ordering guarantee relative to the input.
func (s *ScoreService) ScoreBatch(ctx context.Context, src domain.ProfileSource, opts BatchOptions) ([]domain.ScoredProfile, error) {
	cfg, err := s.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make(chan domain.ProfileRecord)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(records)
		for {
			rec, err := src.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if rec.ObservedAt.IsZero() {
				rec.ObservedAt = opts.AsOf
			}
			select {
			case records <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	var mu sync.Mutex
	var results []domain.ScoredProfile
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for rec := range records {
				scored := domain.ScoredProfile{
					ID:       rec.ID,
					Profile:  rec.ProfileData,
					Detailed: scoring.ComputeDetailed(rec.ProfileData, cfg),
				}
				mu.Lock()
				results = append(results, scored)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BatchSummary aggregates a scoring run for reporting.
type BatchSummary struct {
	Total     int                       `json:"total"`
	Counts    map[domain.UserType]int64 `json:"counts"`
	Histogram [10]int64                 `json:"histogram"` // 0.1-wide score buckets
	MeanScore float64                   `json:"mean_score"`
}

// Summarize reduces batch results to per-label counts and a score histogram.
func Summarize(results []domain.ScoredProfile) BatchSummary {
	summary := BatchSummary{
		Total:  len(results),
		Counts: make(map[domain.UserType]int64),
	}

	var sum float64
	for _, r := range results {
		summary.Counts[r.Detailed.Result.Type]++
		sum += r.Detailed.Result.Score

		bucket := int(r.Detailed.Result.Score * 10)
		if bucket > 9 {
			bucket = 9
		}
		summary.Histogram[bucket]++
	}

	if summary.Total > 0 {
		summary.MeanScore = sum / float64(summary.Total)
	}
	return summary
}
