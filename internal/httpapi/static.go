package httpapi

import (
	"net/http"
	"strings"
)

// StaticHandler serves the role front-ends. HTML documents are sent with
// no-store so host/team/display pages always reload current logic;
// everything else caches normally.
func StaticHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isMarkup(r.URL.Path) {
			w.Header().Set("Cache-Control", "no-store")
		}
		fs.ServeHTTP(w, r)
	})
}

func isMarkup(path string) bool {
	return strings.HasSuffix(path, ".html") || strings.HasSuffix(path, "/")
}
