package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Lesson {
	return []Lesson{
		{ID: "1", Subject: "Mathematics", Location: "Hendon Campus", Price: 100, Spaces: 5},
		{ID: "2", Subject: "Art Class", Location: "Camden Studio", Price: 80, Spaces: 5},
		{ID: "3", Subject: "Physics", Location: "Golders Green", Price: 99.5, Spaces: 3},
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	catalog := testCatalog()
	assert.Equal(t, catalog, Filter(catalog, ""))
	assert.Equal(t, catalog, Filter(catalog, "   "))
}

func TestFilter(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"subject match", "math", []string{"1"}},
		{"location match", "camden", []string{"2"}},
		{"case insensitive", "HENDON", []string{"1"}},
		{"price match", "99.5", []string{"3"}},
		{"spaces match", "3", []string{"3"}},
		{"shared substring", "c", []string{"1", "2", "3"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(catalog, tt.query)
			var ids []string
			for _, l := range got {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	catalog := testCatalog()
	got := Filter(catalog, "a")
	require.Len(t, got, 3)
	assert.Equal(t, testCatalog(), catalog, "input must not be mutated")

	// repeated calls on unchanged input agree
	assert.Equal(t, got, Filter(catalog, "a"))
}
