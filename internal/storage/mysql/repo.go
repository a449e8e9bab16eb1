// Package mysql is the relational rating backend.
package mysql

import (
	"context"
	"database/sql"

	"aquarium_search/internal/domain"
)

type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

// InitSchema creates the ratings table and its index when absent.
// Callers treat failure as non-fatal: writes will fall back to the
// file backend until the database comes back.
func (s *Store) InitSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createRatingsSQL)
	return err
}

func (s *Store) Record(ctx context.Context, r domain.Rating) error {
	var ts any
	if !r.CreatedAt.IsZero() {
		ts = r.CreatedAt.UTC()
	}
	_, err := s.db.ExecContext(ctx, insertRatingSQL, ts, r.SessionID, r.AnimalName, r.Value.String())
	return err
}

// Leaderboard returns the top-N animals per rating value, most votes
// first, recomputed on demand.
func (s *Store) Leaderboard(ctx context.Context, topN int) (domain.Leaderboard, error) {
	if topN <= 0 {
		topN = 10
	}
	love, err := s.topFor(ctx, domain.RatingLove, topN)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	nope, err := s.topFor(ctx, domain.RatingNope, topN)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return domain.Leaderboard{Love: love, Nope: nope}, nil
}

func (s *Store) topFor(ctx context.Context, v domain.RatingValue, topN int) ([]domain.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, leaderboardSQL, v.String(), topN)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.AnimalName, &e.Count); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
