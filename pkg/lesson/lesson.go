package lesson

import (
	"context"
	"errors"
)

// Lesson is a purchasable class listing.
type Lesson struct {
	ID       string  `json:"id"`
	Subject  string  `json:"subject"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Spaces   int     `json:"spaces"`
	Image    string  `json:"image,omitempty"`
}

// Patch carries the mutable lesson fields of an update request. Nil
// fields are left untouched; unknown JSON keys are dropped at decode.
type Patch struct {
	Subject  *string  `json:"subject"`
	Location *string  `json:"location"`
	Price    *float64 `json:"price"`
	Spaces   *int     `json:"spaces"`
	Image    *string  `json:"image"`
}

// Apply overwrites the lesson's fields with the patch's present values.
// Spaces is floor-clamped at zero.
func (p Patch) Apply(l *Lesson) {
	if p.Subject != nil {
		l.Subject = *p.Subject
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Spaces != nil {
		l.Spaces = *p.Spaces
		if l.Spaces < 0 {
			l.Spaces = 0
		}
	}
	if p.Image != nil {
		l.Image = *p.Image
	}
}

// Repository defines behavior for persisting lessons.
type Repository interface {
	List(ctx context.Context) ([]Lesson, error)
	Find(ctx context.Context, id string) (Lesson, error)
	Patch(ctx context.Context, id string, p Patch) (Lesson, error)
}

// ErrNotFound indicates the requested lesson does not exist.
var ErrNotFound = errors.New("lesson not found")
