package memory

import (
	"context"
	"testing"
	"time"

	"lessonhub/pkg/order"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()

	o := order.Order{
		ID:        "a1",
		Name:      "Jane Doe",
		Phone:     "1234567890",
		Items:     []order.Item{{LessonID: "1", Quantity: 2}},
		LessonIDs: []string{"1"},
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	got := orders[0]
	if got.ID != o.ID || got.Name != o.Name || got.Phone != o.Phone {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0] != o.Items[0] {
		t.Fatalf("items mismatch: %+v", got.Items)
	}
	if len(got.LessonIDs) != 1 || got.LessonIDs[0] != "1" {
		t.Fatalf("lesson ids mismatch: %+v", got.LessonIDs)
	}
}

func TestListOrder(t *testing.T) {
	ctx := context.Background()
	repo := New()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, order.Order{ID: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, id := range []string{"a", "b", "c"} {
		if orders[i].ID != id {
			t.Fatalf("insertion order not preserved: %+v", orders)
		}
	}
}
