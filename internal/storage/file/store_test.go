package file_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"aquarium_search/internal/domain"
	filestore "aquarium_search/internal/storage/file"
)

func TestRecord_HeaderOnceThenAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.csv")
	s := filestore.New(path)
	ctx := context.Background()

	ts := time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC)
	r1 := domain.Rating{SessionID: "s1", AnimalName: "Shark", Value: domain.RatingLove, CreatedAt: ts}
	r2 := domain.Rating{SessionID: "s2", AnimalName: "Jellyfish", Value: domain.RatingNope, CreatedAt: ts}

	if err := s.Record(ctx, r1); err != nil {
		t.Fatalf("record 1: %v", err)
	}
	if err := s.Record(ctx, r2); err != nil {
		t.Fatalf("record 2: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "timestamp" || rows[0][3] != "rating" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "s1" || rows[1][2] != "Shark" || rows[1][3] != "love" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[1][0] != ts.Format(time.RFC3339) {
		t.Fatalf("timestamp not RFC3339: %v", rows[1][0])
	}
}

func TestRecord_ZeroTimestampFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.csv")
	s := filestore.New(path)
	if err := s.Record(context.Background(), domain.Rating{SessionID: "s1", AnimalName: "Shark", Value: domain.RatingLove}); err != nil {
		t.Fatalf("record: %v", err)
	}
	f, _ := os.Open(path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, rows[1][0]); err != nil {
		t.Fatalf("filled timestamp not parseable: %v", err)
	}
}
