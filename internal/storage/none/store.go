// Package none is the accept-and-forget rating backend: the rating
// lives only in the session tracker for the life of the session.
package none

import (
	"context"

	"aquarium_search/internal/domain"
)

type Store struct{}

func New() *Store { return &Store{} }

func (*Store) Record(ctx context.Context, r domain.Rating) error { return nil }
