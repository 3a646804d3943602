package handlers

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"mercator-hq/solarsystem/pkg/api/types"
)

// indexFile is served for directory requests.
const indexFile = "index.html"

// StaticHandler serves files from a directory and answers every request it
// cannot satisfy with 404 {"message":"Not Found"}.
type StaticHandler struct {
	fsys  fs.FS
	files http.Handler
}

// NewStaticHandler serves the directory dir.
func NewStaticHandler(dir string) *StaticHandler {
	return NewStaticHandlerFS(os.DirFS(dir))
}

// NewStaticHandlerFS serves fsys.
func NewStaticHandlerFS(fsys fs.FS) *StaticHandler {
	return &StaticHandler{fsys: fsys, files: http.FileServerFS(fsys)}
}

// ServeHTTP implements http.Handler.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if (r.Method != http.MethodGet && r.Method != http.MethodHead) || !h.exists(r.URL.Path) {
		types.WriteMessage(w, http.StatusNotFound, types.MessageNotFound)
		return
	}
	h.files.ServeHTTP(w, r)
}

// exists reports whether urlPath names a servable file, or a directory
// holding an index file.
func (h *StaticHandler) exists(urlPath string) bool {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(h.fsys, name)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	_, err = fs.Stat(h.fsys, path.Join(name, indexFile))
	return err == nil
}
