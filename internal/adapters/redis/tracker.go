package redisad

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"aquarium_search/internal/adapters/observability"
	"aquarium_search/internal/domain"
)

// Tracker keeps the per-session rated-animal map in a redis hash with a
// session-lifetime TTL. HSETNX gives the write-once guarantee.
type Tracker struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *Tracker {
	return &Tracker{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: ttl,
	}
}

func key(sessionID string) string { return "rated:" + sessionID }

func (t *Tracker) MarkRated(ctx context.Context, sessionID, animalName string, v domain.RatingValue) (bool, error) {
	fresh, err := t.c.HSetNX(ctx, key(sessionID), animalName, v.String()).Result()
	if err != nil {
		return false, err
	}
	if !fresh {
		observability.ObserveTracker("redis", "dup")
		return false, nil
	}
	observability.ObserveTracker("redis", "mark")
	// refresh on every successful mark so the hash lives as long as the session
	_ = t.c.Expire(ctx, key(sessionID), t.ttl).Err()
	return true, nil
}

func (t *Tracker) Rated(ctx context.Context, sessionID string) (map[string]domain.RatingValue, error) {
	observability.ObserveTracker("redis", "read")
	m, err := t.c.HGetAll(ctx, key(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.RatingValue, len(m))
	for animal, raw := range m {
		v, err := domain.ParseRatingValue(raw)
		if err != nil {
			continue
		}
		out[animal] = v
	}
	return out, nil
}
