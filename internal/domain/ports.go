package domain

import "context"

// RatingStore records reactions. Record is append-only; duplicate
// submissions are filtered one layer up by the SessionTracker.
type RatingStore interface {
	Record(ctx context.Context, r Rating) error
}

// Aggregator is implemented by stores that can answer the leaderboard
// query (the relational backend). topN bounds each per-value list.
type Aggregator interface {
	Leaderboard(ctx context.Context, topN int) (Leaderboard, error)
}

// SessionTracker is the per-session write-once map from animal name to
// the chosen rating. MarkRated returns false when the pair already
// existed, which callers treat as "silently ignore".
type SessionTracker interface {
	MarkRated(ctx context.Context, sessionID, animalName string, v RatingValue) (bool, error)
	Rated(ctx context.Context, sessionID string) (map[string]RatingValue, error)
}
