package http

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/paulkoehlerdev/VenueMap/static"
)

// StaticPageRoute serves the map page and the assets embedded next to it.
// Anything outside the embedded page files is refused.
func StaticPageRoute(mux *http.ServeMux) {
	assets := pageAssets(static.FS)
	fileServ := http.FileServerFS(static.FS)

	mux.HandleFunc("GET /", func(w http.ResponseWriter, req *http.Request) {
		name := strings.TrimPrefix(req.URL.Path, "/")
		if name != "" && !assets[name] {
			http.Error(w, "403 Forbidden", http.StatusForbidden)
			return
		}

		// the page script drives every session, stale copies break the protocol
		w.Header().Set("Cache-Control", "no-cache")
		fileServ.ServeHTTP(w, req)
	})
}

func pageAssets(fsys fs.FS) map[string]bool {
	assets := make(map[string]bool)

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return assets
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch name := entry.Name(); {
		case strings.HasSuffix(name, ".html"), strings.HasSuffix(name, ".js"), strings.HasSuffix(name, ".css"):
			assets[name] = true
		}
	}
	return assets
}
