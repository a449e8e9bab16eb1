// Package memtrack is the in-process session tracker, used when no
// redis address is configured (and by tests).
package memtrack

import (
	"context"
	"sync"

	"aquarium_search/internal/adapters/observability"
	"aquarium_search/internal/domain"
)

type Tracker struct {
	mu       sync.Mutex
	sessions map[string]map[string]domain.RatingValue
}

func New() *Tracker {
	return &Tracker{sessions: make(map[string]map[string]domain.RatingValue)}
}

func (t *Tracker) MarkRated(ctx context.Context, sessionID, animalName string, v domain.RatingValue) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := t.sessions[sessionID]
	if m == nil {
		m = make(map[string]domain.RatingValue)
		t.sessions[sessionID] = m
	}
	if _, exists := m[animalName]; exists {
		observability.ObserveTracker("memory", "dup")
		return false, nil
	}
	m[animalName] = v
	observability.ObserveTracker("memory", "mark")
	return true, nil
}

func (t *Tracker) Rated(ctx context.Context, sessionID string) (map[string]domain.RatingValue, error) {
	observability.ObserveTracker("memory", "read")
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]domain.RatingValue, len(t.sessions[sessionID]))
	for k, v := range t.sessions[sessionID] {
		out[k] = v
	}
	return out, nil
}
