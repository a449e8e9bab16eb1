package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"aquarium_search/internal/catalog"
	"aquarium_search/internal/domain"
)

var ErrInvalidRating = errors.New("invalid rating value")

// RatingService handles the single write path: rate(animal, love|nope).
type RatingService struct {
	cat     *catalog.Catalog
	store   domain.RatingStore
	tracker domain.SessionTracker
	now     func() time.Time
}

func NewRatingService(c *catalog.Catalog, st domain.RatingStore, tr domain.SessionTracker) *RatingService {
	return &RatingService{cat: c, store: st, tracker: tr, now: time.Now}
}

// RateResult tells the handler what happened; a duplicate is a success
// from the visitor's point of view, nothing is surfaced.
type RateResult struct {
	AnimalName string `json:"animal_name"`
	Rating     string `json:"rating"`
	Label      string `json:"label"`
	Duplicate  bool   `json:"-"`
}

// Rate records one reaction. The tracker's write-once semantics are the
// duplicate guard: a second rating for the same (session, animal) pair
// is silently ignored and the store is not touched again.
func (s *RatingService) Rate(ctx context.Context, sessionID, animalName, value string) (RateResult, error) {
	v, err := domain.ParseRatingValue(value)
	if err != nil {
		return RateResult{}, fmt.Errorf("%w: %q", ErrInvalidRating, value)
	}
	animal, ok := s.cat.Get(strings.TrimSpace(animalName))
	if !ok {
		return RateResult{}, domain.ErrNotFound
	}

	fresh, err := s.tracker.MarkRated(ctx, sessionID, animal.Name, v)
	if err != nil {
		return RateResult{}, err
	}
	res := RateResult{AnimalName: animal.Name, Rating: v.String(), Label: v.Label()}
	if !fresh {
		res.Duplicate = true
		return res, nil
	}

	if err := s.store.Record(ctx, domain.Rating{
		SessionID:  sessionID,
		AnimalName: animal.Name,
		Value:      v,
		CreatedAt:  s.now().UTC(),
	}); err != nil {
		// tracker already marked; keep the session state and surface the error
		log.Error().Err(err).Str("animal", animal.Name).Msg("rating store write failed")
		return RateResult{}, err
	}
	return res, nil
}

// NewSessionID mints a session identifier of the form
// session_<timestamp>_<8 hex chars>.
func NewSessionID(now time.Time) string {
	return fmt.Sprintf("session_%s_%s",
		now.Format("20060102_150405"),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
