package order

import (
	"context"
	"time"
)

// Item is a single order line referencing a lesson.
type Item struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}

// Order represents a customer purchase order.
type Order struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Items     []Item    `json:"items"`
	LessonIDs []string  `json:"lessonIDs"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository defines behavior for persisting orders.
type Repository interface {
	Create(ctx context.Context, o Order) error
	List(ctx context.Context) ([]Order, error)
}
