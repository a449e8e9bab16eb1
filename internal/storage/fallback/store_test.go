package fallback_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"aquarium_search/internal/domain"
	"aquarium_search/internal/storage/fallback"
	filestore "aquarium_search/internal/storage/file"
)

// ---- fakes ----

type fakeStore struct {
	records []domain.Rating
	err     error
}

func (s *fakeStore) Record(ctx context.Context, r domain.Rating) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, r)
	return nil
}

type fakeAggStore struct {
	fakeStore
	lb domain.Leaderboard
}

func (s *fakeAggStore) Leaderboard(ctx context.Context, topN int) (domain.Leaderboard, error) {
	return s.lb, nil
}

// ---- tests ----

func TestRecord_PrimaryOK(t *testing.T) {
	primary := &fakeStore{}
	backup := &fakeStore{}
	s := fallback.New(primary, backup)

	if err := s.Record(context.Background(), domain.Rating{AnimalName: "Shark"}); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(primary.records) != 1 || len(backup.records) != 0 {
		t.Fatalf("backup must stay untouched when primary succeeds")
	}
}

func TestRecord_FallsBackPerWrite(t *testing.T) {
	primary := &fakeStore{err: errors.New("connection refused")}
	backup := &fakeStore{}
	s := fallback.New(primary, backup)
	ctx := context.Background()

	// failed primary write lands in the backup, caller sees success
	if err := s.Record(ctx, domain.Rating{AnimalName: "Shark", SessionID: "s1"}); err != nil {
		t.Fatalf("fallback write must succeed: %v", err)
	}
	if len(backup.records) != 1 || backup.records[0].AnimalName != "Shark" {
		t.Fatalf("backup did not receive the record: %+v", backup.records)
	}

	// primary recovers; next write goes there again (no mode latch)
	primary.err = nil
	if err := s.Record(ctx, domain.Rating{AnimalName: "Jellyfish"}); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(primary.records) != 1 || primary.records[0].AnimalName != "Jellyfish" {
		t.Fatalf("recovered primary not used: %+v", primary.records)
	}
}

func TestRecord_BothFail(t *testing.T) {
	s := fallback.New(&fakeStore{err: errors.New("a")}, &fakeStore{err: errors.New("b")})
	if err := s.Record(context.Background(), domain.Rating{AnimalName: "Shark"}); err == nil {
		t.Fatalf("expected error when both stores fail")
	}
}

func TestRecord_FallbackLandsInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings_backup.csv")
	s := fallback.New(&fakeStore{err: errors.New("connection refused")}, filestore.New(path))

	r := domain.Rating{SessionID: "s1", AnimalName: "Shark", Value: domain.RatingLove}
	if err := s.Record(context.Background(), r); err != nil {
		t.Fatalf("record: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if len(rows) != 2 || rows[1][2] != "Shark" || rows[1][3] != "love" {
		t.Fatalf("record not in backup file: %v", rows)
	}
}

func TestLeaderboard_DelegatesToAggregatingPrimary(t *testing.T) {
	primary := &fakeAggStore{lb: domain.Leaderboard{Love: []domain.LeaderboardEntry{{AnimalName: "Shark", Count: 2}}}}
	s := fallback.New(primary, &fakeStore{})
	lb, err := s.Leaderboard(context.Background(), 5)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(lb.Love) != 1 || lb.Love[0].Count != 2 {
		t.Fatalf("unexpected board: %+v", lb)
	}
}

func TestLeaderboard_NonAggregatingPrimary(t *testing.T) {
	s := fallback.New(&fakeStore{}, &fakeStore{})
	if _, err := s.Leaderboard(context.Background(), 5); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
