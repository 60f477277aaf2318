// Package images maps stored lesson image references to client-usable
// URLs and serves the image files themselves.
package images

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder is served and linked whenever a referenced image cannot
// be found.
const Placeholder = "ImageNotFound.png"

// Resolver turns a lesson's stored image reference into an absolute
// URL, checking bare filenames against a fixed directory on disk.
type Resolver struct {
	Dir string
}

// Resolve maps an image reference to a URL a client can fetch.
// Absolute HTTP(S) URLs and inline data URIs pass through unchanged.
// A bare filename resolves under Dir when the file exists; anything
// else falls back to the not-found placeholder.
func (r Resolver) Resolve(image, baseURL string) string {
	switch {
	case image == "":
		return baseURL + "/lesson-images/" + Placeholder
	case strings.HasPrefix(image, "http://"),
		strings.HasPrefix(image, "https://"),
		strings.HasPrefix(image, "data:"):
		return image
	}
	if _, err := os.Stat(filepath.Join(r.Dir, image)); err != nil {
		return baseURL + "/lesson-images/" + Placeholder
	}
	return baseURL + "/lesson-images/" + image
}

// Handler serves GET /lesson-images/{name}. Names containing path
// separators or traversal are rejected; a missing file falls back to
// the placeholder image, and 404 when the placeholder itself is absent.
type Handler struct {
	Dir string
}

func (h Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimPrefix(req.URL.Path, "/lesson-images/")
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		http.Error(w, "invalid image path", http.StatusBadRequest)
		return
	}
	path := filepath.Join(h.Dir, name)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(h.Dir, Placeholder)
		if _, err := os.Stat(path); err != nil {
			http.NotFound(w, req)
			return
		}
	}
	http.ServeFile(w, req, path)
}
