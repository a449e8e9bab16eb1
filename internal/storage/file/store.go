// Package file is the flat-file rating backend and the fallback target
// for the relational one: an append-only CSV of
// {timestamp, session_id, animal_name, rating}.
package file

import (
	"context"
	"encoding/csv"
	"os"
	"sync"
	"time"

	"aquarium_search/internal/domain"
)

var header = []string{"timestamp", "session_id", "animal_name", "rating"}

type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store { return &Store{path: path} }

// Record appends one row, creating the file with its header first when
// it does not exist yet. Appends are serialized; concurrent sessions
// share one Store per process.
func (s *Store) Record(ctx context.Context, r domain.Rating) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader := false
	if st, err := os.Stat(s.path); os.IsNotExist(err) || (err == nil && st.Size() == 0) {
		writeHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	ts := r.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	if err := w.Write([]string{
		ts.Format(time.RFC3339),
		r.SessionID,
		r.AnimalName,
		r.Value.String(),
	}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
