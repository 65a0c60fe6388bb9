// Package store persists scored profiles to a local sqlite database for
// later analysis of score distributions.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/authentiq/authentiq/internal/domain"
	_ "modernc.org/sqlite"
)

const ddl = `
CREATE TABLE IF NOT EXISTS scored_profiles (
	id             TEXT,
	observed_at    TEXT NOT NULL,
	created_at     TEXT NOT NULL,
	followers      INTEGER NOT NULL,
	following      INTEGER NOT NULL,
	statuses       INTEGER NOT NULL,
	favorites      INTEGER NOT NULL,
	listed         INTEGER NOT NULL,
	media          INTEGER NOT NULL,
	verified       INTEGER NOT NULL,
	bot_score      REAL NOT NULL,
	creator_score  REAL NOT NULL,
	entity_score   REAL NOT NULL,
	person_score   REAL NOT NULL,
	penalty        REAL NOT NULL,
	score          REAL NOT NULL,
	label          TEXT NOT NULL,
	scored_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scored_profiles_label ON scored_profiles(label);
`

const insertSQL = `
INSERT INTO scored_profiles (
	id, observed_at, created_at,
	followers, following, statuses, favorites, listed, media, verified,
	bot_score, creator_score, entity_score, person_score, penalty,
	score, label, scored_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SQLite implements domain.ResultStore on a local database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("store path not specified")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating store schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Save writes all results in one transaction.
func (s *SQLite) Save(ctx context.Context, results []domain.ScoredProfile) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting store transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	scoredAt := time.Now().UTC().Format(time.RFC3339)
	for _, r := range results {
		p := r.Profile
		d := r.Detailed
		_, err := stmt.ExecContext(ctx,
			r.ID,
			p.ObservedAt.UTC().Format(time.RFC3339),
			p.CreatedAt.UTC().Format(time.RFC3339),
			p.Followers, p.Following, p.Statuses, p.Favorites, p.Listed, p.Media,
			boolToInt(p.Verified),
			d.BotScore, d.CreatorScore, d.EntityScore, d.PersonScore, d.Penalty,
			d.Result.Score, string(d.Result.Type),
			scoredAt,
		)
		if err != nil {
			return fmt.Errorf("inserting scored profile: %w", err)
		}
	}

	return tx.Commit()
}

// CountByType returns how many stored results carry each label.
func (s *SQLite) CountByType(ctx context.Context) (map[domain.UserType]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, COUNT(*) FROM scored_profiles GROUP BY label`)
	if err != nil {
		return nil, fmt.Errorf("querying label counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.UserType]int64)
	for rows.Next() {
		var label string
		var n int64
		if err := rows.Scan(&label, &n); err != nil {
			return nil, fmt.Errorf("scanning label count: %w", err)
		}
		counts[domain.UserType(label)] = n
	}
	return counts, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
