// Package memory implements an in-memory lesson repository.
package memory

import (
	"context"
	"sync"

	"lessonhub/pkg/lesson"
)

// Repository provides an in-memory implementation of lesson.Repository.
// Listing order matches insertion order.
type Repository struct {
	mu      sync.RWMutex
	lessons map[string]lesson.Lesson
	ids     []string
}

// New creates a repository pre-populated with the given lessons.
func New(seed []lesson.Lesson) *Repository {
	r := &Repository{lessons: make(map[string]lesson.Lesson, len(seed))}
	for _, l := range seed {
		r.lessons[l.ID] = l
		r.ids = append(r.ids, l.ID)
	}
	return r
}

// List returns all lessons in insertion order.
func (r *Repository) List(ctx context.Context) ([]lesson.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]lesson.Lesson, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.lessons[id])
	}
	return out, nil
}

// Find retrieves a lesson by ID.
func (r *Repository) Find(ctx context.Context, id string) (lesson.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.lessons[id]
	if !ok {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	return l, nil
}

// Patch overwrites the present fields of the identified lesson and
// returns the updated record.
func (r *Repository) Patch(ctx context.Context, id string, p lesson.Patch) (lesson.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lessons[id]
	if !ok {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	p.Apply(&l)
	r.lessons[id] = l
	return l, nil
}
