package images

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "http://localhost:3000"

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("png-bytes"), 0o644))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "maths.png")
	r := Resolver{Dir: dir}

	tests := []struct {
		name  string
		image string
		want  string
	}{
		{"empty", "", base + "/lesson-images/ImageNotFound.png"},
		{"absolute http", "http://x/y.jpg", "http://x/y.jpg"},
		{"absolute https", "https://x/y.jpg", "https://x/y.jpg"},
		{"data uri", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"present file", "maths.png", base + "/lesson-images/maths.png"},
		{"missing file", "ghost.png", base + "/lesson-images/ImageNotFound.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.image, base))
		})
	}
}

func TestHandlerServesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "maths.png")

	rec := httptest.NewRecorder()
	Handler{Dir: dir}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lesson-images/maths.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestHandlerRejectsBadPaths(t *testing.T) {
	dir := t.TempDir()

	for _, path := range []string{
		"/lesson-images/",
		"/lesson-images/../secret",
		"/lesson-images/a..b/c",
	} {
		rec := httptest.NewRecorder()
		Handler{Dir: dir}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestHandlerFallsBackToPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, Placeholder)

	rec := httptest.NewRecorder()
	Handler{Dir: dir}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lesson-images/ghost.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestHandlerMissingPlaceholder(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler{Dir: t.TempDir()}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lesson-images/ghost.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
