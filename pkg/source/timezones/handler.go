package timezones

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// AreaVar is the route variable restricting results to one area.
const AreaVar = "area"

// Handler serves the zone search as JSON: {"data": [{"value", "text"}]}.
// GET and HEAD only.
func Handler(fns ...OptionFn) http.Handler {
	f := &Fetcher{opts: NewOptions(fns...)}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		query := r.URL.Query()
		limit, _ := strconv.Atoi(query.Get(f.opts.LimitParam))
		body, err := f.lookup(mux.Vars(r)[AreaVar], query.Get(f.opts.SearchParam), limit)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	})
}

// RegisterRoutes mounts the handler on router at path and at path/{area}.
// It returns the route for the unrestricted list.
func RegisterRoutes(router *mux.Router, path string, fns ...OptionFn) *mux.Route {
	base := strings.Trim(strings.TrimSpace(path), "/")
	handler := Handler(fns...)
	areaPath := "/{" + AreaVar + "}"
	if base != "" {
		areaPath = "/" + base + areaPath
	}
	router.Handle(areaPath, handler).Methods(http.MethodGet, http.MethodHead)
	return router.Handle("/"+base, handler).Methods(http.MethodGet, http.MethodHead)
}
