package app

import (
	"context"
	"errors"

	"aquarium_search/internal/catalog"
	"aquarium_search/internal/domain"
)

// DirectoryService answers the read paths: search, featured set and the
// leaderboard aggregate. Search and Featured are pure over the immutable
// catalog and recomputed per call — there is no result cache.
type DirectoryService struct {
	cat     *catalog.Catalog
	agg     domain.Aggregator
	tracker domain.SessionTracker
}

func NewDirectoryService(c *catalog.Catalog, agg domain.Aggregator, tr domain.SessionTracker) *DirectoryService {
	return &DirectoryService{cat: c, agg: agg, tracker: tr}
}

// Search filters the catalog. An empty query yields an empty result set;
// the caller renders the landing page for it. When a session is known,
// each item carries that session's rating so the UI can swap the buttons
// for an acknowledgment.
func (s *DirectoryService) Search(ctx context.Context, sessionID, query string) SearchResult {
	hits := s.cat.Filter(query)

	var rated map[string]domain.RatingValue
	if s.tracker != nil && sessionID != "" && len(hits) > 0 {
		rated, _ = s.tracker.Rated(ctx, sessionID) // best effort
	}

	items := make([]AnimalView, 0, len(hits))
	for _, a := range hits {
		v := viewOf(a)
		if rv, ok := rated[a.Name]; ok {
			lbl := rv.Label()
			v.Rated = &lbl
		}
		items = append(items, v)
	}
	res := SearchResult{Query: query, Count: len(items), Items: items}
	if query != "" {
		res.Label = resultLabel(len(items))
	}
	return res
}

// Featured returns the landing-page set.
func (s *DirectoryService) Featured(ctx context.Context) []AnimalView {
	fs := s.cat.Featured()
	out := make([]AnimalView, 0, len(fs))
	for _, a := range fs {
		out = append(out, viewOf(a))
	}
	return out
}

// Leaderboard recomputes the aggregate on demand. Backends without an
// aggregate (none, file) yield an empty board, which the presentation
// layer shows as "no ratings yet".
func (s *DirectoryService) Leaderboard(ctx context.Context, topN int) (domain.Leaderboard, error) {
	if s.agg == nil {
		return domain.Leaderboard{}, nil
	}
	lb, err := s.agg.Leaderboard(ctx, topN)
	if errors.Is(err, domain.ErrUnavailable) {
		return domain.Leaderboard{}, nil
	}
	return lb, err
}
