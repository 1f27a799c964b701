package httptransport

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SPAHandler serves the built single-page app under prefix. Existing files
// are served as-is; every other path gets index.html so client-side routes
// survive a reload.
func SPAHandler(dir, prefix string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := path.Clean("/" + strings.TrimPrefix(r.URL.Path, prefix))
		if rel != "/" {
			info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
			if err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFile(w, r, index)
	})
}
