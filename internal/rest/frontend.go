package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves static frontend files, falling back to the index
// page for any path that does not match a file on disk.
type FrontendHandler struct {
	dir   string
	index string
	files http.Handler
}

func NewFrontendHandler(dir string, index string) *FrontendHandler {
	return &FrontendHandler{
		dir:   dir,
		index: filepath.Join(dir, index),
		files: http.FileServer(http.Dir(dir)),
	}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, h.index)
		return
	}

	h.files.ServeHTTP(w, r)
}
