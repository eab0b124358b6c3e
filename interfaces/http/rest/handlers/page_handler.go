package handlers

import (
	"net/http"
	"path/filepath"
)

// PageHandler serves the HTML front-end from the public directory
type PageHandler struct {
	publicDir string
}

// NewPageHandler creates a page handler rooted at publicDir
func NewPageHandler(publicDir string) *PageHandler {
	return &PageHandler{publicDir: publicDir}
}

// Page returns a handler that always serves the named file
func (h *PageHandler) Page(name string) http.HandlerFunc {
	path := filepath.Join(h.publicDir, name)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}

// Assets serves everything under publicDir/assets at /assets/
func (h *PageHandler) Assets() http.Handler {
	return http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(h.publicDir, "assets"))))
}
