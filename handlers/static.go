package handlers

import (
	"net/http"
	"path/filepath"
)

// StaticHandler serves the front-end entry file.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Index — GET /, byte-for-byte passthrough of index.html.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}
