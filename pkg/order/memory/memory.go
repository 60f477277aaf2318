// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"sync"

	"lessonhub/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
// Listing order matches insertion order.
type Repository struct {
	mu     sync.RWMutex
	orders []order.Order
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{}
}

// Create appends the order.
func (r *Repository) Create(ctx context.Context, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return nil
}

// List returns all orders in insertion order.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
