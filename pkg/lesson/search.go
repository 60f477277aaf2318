package lesson

import (
	"strconv"
	"strings"
)

// Filter returns the lessons whose searchable text contains query as a
// case-insensitive substring, preserving input order. An empty query
// returns the input unchanged. Substring containment only; no
// tokenization, no ranking.
func Filter(lessons []Lesson, query string) []Lesson {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return lessons
	}
	var out []Lesson
	for _, l := range lessons {
		if strings.Contains(searchText(l), q) {
			out = append(out, l)
		}
	}
	return out
}

// searchText is the space-joined lowercase concatenation of the fields
// a query is matched against.
func searchText(l Lesson) string {
	parts := []string{
		l.Subject,
		l.Location,
		strconv.FormatFloat(l.Price, 'f', -1, 64),
		strconv.Itoa(l.Spaces),
	}
	return strings.ToLower(strings.Join(parts, " "))
}
