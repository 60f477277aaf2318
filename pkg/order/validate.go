package order

import (
	"errors"
	"fmt"
	"regexp"

	"lessonhub/pkg/lesson"
)

// Validation failures, reported fail-fast: the first violated rule
// aborts validation.
var (
	ErrInvalidName  = errors.New("name must contain only letters and spaces")
	ErrInvalidPhone = errors.New("phone must contain only digits and meet the minimum length")
	ErrEmptyOrder   = errors.New("order must contain at least one item")
)

// InvalidQuantityError reports the first item whose lesson is unknown
// or whose quantity is outside the lesson's remaining spaces.
type InvalidQuantityError struct {
	LessonID string
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity for lesson %s", e.LessonID)
}

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]+$`)
)

// Validator checks prospective orders against format and availability
// rules before they are accepted.
type Validator struct {
	// MinPhoneDigits is the minimum accepted phone length. The policy
	// has changed over time, so it is configuration rather than a
	// constant.
	MinPhoneDigits int
}

// Validate checks name, phone and items in order, returning the first
// violated rule. Lessons are resolved against the given catalog
// snapshot; availability is not re-checked or reserved afterwards.
// On success it returns a normalized order with derived LessonIDs,
// leaving ID and CreatedAt for the caller to assign.
func (v Validator) Validate(name, phone string, items []Item, lessons []lesson.Lesson) (Order, error) {
	if !nameRe.MatchString(name) {
		return Order{}, ErrInvalidName
	}
	if len(phone) < v.MinPhoneDigits || !phoneRe.MatchString(phone) {
		return Order{}, ErrInvalidPhone
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}

	byID := make(map[string]lesson.Lesson, len(lessons))
	for _, l := range lessons {
		byID[l.ID] = l
	}

	lessonIDs := make([]string, 0, len(items))
	for _, it := range items {
		l, ok := byID[it.LessonID]
		if !ok || it.Quantity <= 0 || it.Quantity > l.Spaces {
			return Order{}, InvalidQuantityError{LessonID: it.LessonID}
		}
		lessonIDs = append(lessonIDs, it.LessonID)
	}

	return Order{
		Name:      name,
		Phone:     phone,
		Items:     items,
		LessonIDs: lessonIDs,
	}, nil
}
