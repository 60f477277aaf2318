package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lessonhub/pkg/lesson"
)

func testCatalog() []lesson.Lesson {
	return []lesson.Lesson{
		{ID: "1", Subject: "Mathematics", Location: "Hendon Campus", Price: 100, Spaces: 5},
		{ID: "2", Subject: "Art Class", Location: "Camden Studio", Price: 80, Spaces: 0},
	}
}

func TestValidateRejects(t *testing.T) {
	v := Validator{MinPhoneDigits: 2}

	tests := []struct {
		name    string
		cName   string
		phone   string
		items   []Item
		wantErr error
	}{
		{"digits in name", "John123", "1234567890", []Item{{LessonID: "1", Quantity: 1}}, ErrInvalidName},
		{"empty name", "", "1234567890", []Item{{LessonID: "1", Quantity: 1}}, ErrInvalidName},
		{"letters in phone", "Jane Doe", "abc", []Item{{LessonID: "1", Quantity: 1}}, ErrInvalidPhone},
		{"phone too short", "Jane Doe", "1", []Item{{LessonID: "1", Quantity: 1}}, ErrInvalidPhone},
		{"no items", "Jane Doe", "1234567890", []Item{}, ErrEmptyOrder},
		{"nil items", "Jane Doe", "1234567890", nil, ErrEmptyOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.cName, tt.phone, tt.items, testCatalog())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRejectsBadItems(t *testing.T) {
	v := Validator{MinPhoneDigits: 2}

	tests := []struct {
		name     string
		items    []Item
		lessonID string
	}{
		{"unknown lesson", []Item{{LessonID: "99", Quantity: 1}}, "99"},
		{"zero quantity", []Item{{LessonID: "1", Quantity: 0}}, "1"},
		{"negative quantity", []Item{{LessonID: "1", Quantity: -1}}, "1"},
		{"over capacity", []Item{{LessonID: "1", Quantity: 6}}, "1"},
		{"sold out", []Item{{LessonID: "2", Quantity: 1}}, "2"},
		{"first offender wins", []Item{{LessonID: "99", Quantity: 1}, {LessonID: "1", Quantity: 99}}, "99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate("Jane Doe", "1234567890", tt.items, testCatalog())
			var qErr InvalidQuantityError
			require.True(t, errors.As(err, &qErr))
			assert.Equal(t, tt.lessonID, qErr.LessonID)
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	v := Validator{MinPhoneDigits: 2}

	o, err := v.Validate("Jane Doe", "1234567890", []Item{{LessonID: "1", Quantity: 2}}, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", o.Name)
	assert.Equal(t, "1234567890", o.Phone)
	assert.Equal(t, []Item{{LessonID: "1", Quantity: 2}}, o.Items)
	assert.Equal(t, []string{"1"}, o.LessonIDs)
	assert.Empty(t, o.ID, "id assignment is the caller's job")
	assert.True(t, o.CreatedAt.IsZero())
}

func TestValidatePhonePolicyIsConfigurable(t *testing.T) {
	items := []Item{{LessonID: "1", Quantity: 1}}

	strict := Validator{MinPhoneDigits: 10}
	_, err := strict.Validate("Jane Doe", "12345", items, testCatalog())
	assert.ErrorIs(t, err, ErrInvalidPhone)

	relaxed := Validator{MinPhoneDigits: 2}
	_, err = relaxed.Validate("Jane Doe", "12345", items, testCatalog())
	assert.NoError(t, err)
}

func TestValidateDoesNotMutateCatalog(t *testing.T) {
	v := Validator{MinPhoneDigits: 2}
	catalog := testCatalog()

	_, err := v.Validate("Jane Doe", "1234567890", []Item{{LessonID: "1", Quantity: 5}}, catalog)
	require.NoError(t, err)
	assert.Equal(t, 5, catalog[0].Spaces, "validation must not reserve spaces")
}
