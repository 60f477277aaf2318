// Package rediscache decorates a lesson repository with a Redis
// read-through cache for the full catalog listing.
package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"lessonhub/pkg/lesson"
)

const listKey = "lessons:all"

// Repository wraps another lesson.Repository, caching List results in
// Redis. Patch writes through and drops the cached listing; Find always
// hits the underlying store so availability checks see fresh counts.
type Repository struct {
	next lesson.Repository
	rdb  *redis.Client
	ttl  time.Duration
}

// New creates a caching repository around next.
func New(next lesson.Repository, rdb *redis.Client, ttl time.Duration) *Repository {
	return &Repository{next: next, rdb: rdb, ttl: ttl}
}

// List returns the cached catalog when present, falling back to the
// underlying store. Cache failures are treated as misses.
func (r *Repository) List(ctx context.Context) ([]lesson.Lesson, error) {
	if raw, err := r.rdb.Get(ctx, listKey).Bytes(); err == nil {
		var lessons []lesson.Lesson
		if err := json.Unmarshal(raw, &lessons); err == nil {
			return lessons, nil
		}
	}
	lessons, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(lessons); err == nil {
		r.rdb.Set(ctx, listKey, raw, r.ttl)
	}
	return lessons, nil
}

// Find delegates to the underlying store.
func (r *Repository) Find(ctx context.Context, id string) (lesson.Lesson, error) {
	return r.next.Find(ctx, id)
}

// Patch delegates to the underlying store and invalidates the cached
// listing on success.
func (r *Repository) Patch(ctx context.Context, id string, p lesson.Patch) (lesson.Lesson, error) {
	l, err := r.next.Patch(ctx, id, p)
	if err != nil {
		return lesson.Lesson{}, err
	}
	r.rdb.Del(ctx, listKey)
	return l, nil
}
