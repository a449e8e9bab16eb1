package app_test

import (
	"context"
	"testing"

	"aquarium_search/internal/adapters/memtrack"
	"aquarium_search/internal/app"
	"aquarium_search/internal/catalog"
	"aquarium_search/internal/domain"
)

// ---- fakes ----

type fakeAgg struct {
	lb  domain.Leaderboard
	err error
}

func (f *fakeAgg) Leaderboard(ctx context.Context, topN int) (domain.Leaderboard, error) {
	return f.lb, f.err
}

func ptr(s string) *string { return &s }

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Animal{
		{Name: "Shark", Habitat: ptr("Coastal waters"), Conservation: ptr("Critically Endangered")},
		{Name: "Sea Otter", Diet: ptr("Sea urchins")},
		{Name: "Jellyfish"},
	})
}

// ---- tests ----

func TestSearch_EmptyQuery(t *testing.T) {
	q := app.NewDirectoryService(testCatalog(), nil, memtrack.New())
	res := q.Search(context.Background(), "", "")
	if res.Count != 0 || len(res.Items) != 0 {
		t.Fatalf("empty query must yield empty result, got %+v", res)
	}
	if res.Label != "" {
		t.Fatalf("empty query carries no result label, got %q", res.Label)
	}
}

func TestSearch_LabelsAndConservationClass(t *testing.T) {
	q := app.NewDirectoryService(testCatalog(), nil, memtrack.New())

	res := q.Search(context.Background(), "", "shark")
	if res.Count != 1 || res.Label != "1 result" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Items[0].ConservationClass != "endangered" {
		t.Fatalf("expected endangered class, got %q", res.Items[0].ConservationClass)
	}

	none := q.Search(context.Background(), "", "kraken")
	if none.Count != 0 || none.Label != "No results found" {
		t.Fatalf("unexpected miss result: %+v", none)
	}
}

func TestSearch_CarriesSessionRating(t *testing.T) {
	tr := memtrack.New()
	q := app.NewDirectoryService(testCatalog(), nil, tr)
	ctx := context.Background()

	if _, err := tr.MarkRated(ctx, "s1", "Shark", domain.RatingLove); err != nil {
		t.Fatalf("mark: %v", err)
	}

	res := q.Search(ctx, "s1", "shark")
	if res.Items[0].Rated == nil || *res.Items[0].Rated != "Literally in love" {
		t.Fatalf("expected rated label on hit, got %+v", res.Items[0])
	}

	// a different session sees rating buttons, not the acknowledgment
	other := q.Search(ctx, "s2", "shark")
	if other.Items[0].Rated != nil {
		t.Fatalf("rating leaked across sessions: %+v", other.Items[0])
	}
}

func TestFeatured_MapsToViews(t *testing.T) {
	q := app.NewDirectoryService(testCatalog(), nil, memtrack.New())
	got := q.Featured(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected fallback to all rows, got %d", len(got))
	}
	if got[2].Diet != nil {
		t.Fatalf("missing field must stay absent: %+v", got[2])
	}
}

func TestLeaderboard_NilAggregatorIsEmptyNotError(t *testing.T) {
	q := app.NewDirectoryService(testCatalog(), nil, memtrack.New())
	lb, err := q.Leaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(lb.Love) != 0 || len(lb.Nope) != 0 {
		t.Fatalf("expected empty board, got %+v", lb)
	}
}

func TestLeaderboard_Delegates(t *testing.T) {
	agg := &fakeAgg{lb: domain.Leaderboard{
		Love: []domain.LeaderboardEntry{{AnimalName: "Shark", Count: 3}},
	}}
	q := app.NewDirectoryService(testCatalog(), agg, memtrack.New())
	lb, err := q.Leaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(lb.Love) != 1 || lb.Love[0].AnimalName != "Shark" || lb.Love[0].Count != 3 {
		t.Fatalf("unexpected board: %+v", lb)
	}
}

func TestLeaderboard_UnavailableBecomesEmpty(t *testing.T) {
	q := app.NewDirectoryService(testCatalog(), &fakeAgg{err: domain.ErrUnavailable}, memtrack.New())
	lb, err := q.Leaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("unavailable aggregate must not surface: %v", err)
	}
	if len(lb.Love) != 0 {
		t.Fatalf("expected empty board, got %+v", lb)
	}
}
