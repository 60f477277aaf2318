// Package postgres implements a PostgreSQL-backed order repository.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"lessonhub/pkg/order"
)

// Repository persists orders in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository. The caller must ensure the
// database has an orders table:
// CREATE TABLE IF NOT EXISTS orders (id TEXT PRIMARY KEY, name TEXT, phone TEXT, items JSONB, lesson_ids TEXT[], created_at TIMESTAMPTZ);
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new order. Items are stored as a JSONB document and
// lesson ids as a native text array for backward-compatible querying.
func (r *Repository) Create(ctx context.Context, o order.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO orders (id,name,phone,items,lesson_ids,created_at) VALUES ($1,$2,$3,$4,$5,$6)",
		o.ID, o.Name, o.Phone, items, pq.StringArray(o.LessonIDs), o.CreatedAt)
	return err
}

// List fetches all orders, oldest first.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,name,phone,items,lesson_ids,created_at FROM orders ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []order.Order
	for rows.Next() {
		var o order.Order
		var items []byte
		var ids pq.StringArray
		if err := rows.Scan(&o.ID, &o.Name, &o.Phone, &items, &ids, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		o.LessonIDs = ids
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
