package server

import (
	"context"
	"database/sql"

	"github.com/geoplay/geostats/internal/game"
)

// ResultStore records finished sessions and serves the seeded reference
// leaderboard from SQLite.
type ResultStore struct {
	db *sql.DB
}

func NewResultStore(db *sql.DB) *ResultStore {
	return &ResultStore{db: db}
}

// ReferenceScores returns the fixed global leaderboard entries in seed
// order, which doubles as the tie-break order after merging.
func (s *ResultStore) ReferenceScores(ctx context.Context) ([]game.HighScore, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, score, scored_on FROM reference_scores ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []game.HighScore
	for rows.Next() {
		var hs game.HighScore
		if err := rows.Scan(&hs.Name, &hs.Score, &hs.Date); err != nil {
			return nil, err
		}
		scores = append(scores, hs)
	}
	return scores, rows.Err()
}

// RecordResult logs one finished session.
func (s *ResultStore) RecordResult(ctx context.Context, score, maxLives, rounds int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (score, max_lives, rounds) VALUES (?, ?, ?)
	`, score, maxLives, rounds)
	return err
}
