// Package fallback wraps a primary rating store with a file backup.
// A failed primary write is retried against the backup for that single
// write only; the primary stays the first choice for the next one.
package fallback

import (
	"context"

	"github.com/rs/zerolog/log"

	"aquarium_search/internal/adapters/observability"
	"aquarium_search/internal/domain"
)

type Store struct {
	primary domain.RatingStore
	backup  domain.RatingStore
}

func New(primary, backup domain.RatingStore) *Store {
	return &Store{primary: primary, backup: backup}
}

func (s *Store) Record(ctx context.Context, r domain.Rating) error {
	if err := s.primary.Record(ctx, r); err != nil {
		log.Warn().Err(err).
			Str("animal", r.AnimalName).
			Msg("primary rating store write failed, using file backup")
		observability.ObserveStoreWrite("primary", "fallback")
		if berr := s.backup.Record(ctx, r); berr != nil {
			observability.ObserveStoreWrite("backup", "error")
			return berr
		}
		observability.ObserveStoreWrite("backup", "ok")
		return nil
	}
	observability.ObserveStoreWrite("primary", "ok")
	return nil
}

// Leaderboard delegates to the primary when it aggregates; the file
// backup never does.
func (s *Store) Leaderboard(ctx context.Context, topN int) (domain.Leaderboard, error) {
	if agg, ok := s.primary.(domain.Aggregator); ok {
		return agg.Leaderboard(ctx, topN)
	}
	return domain.Leaderboard{}, domain.ErrUnavailable
}
