package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/repositories"
)

type route struct {
	status int
	body   string
}

// upstream serves canned responses keyed by "METHOD /path?query"; anything
// else is a 404.
type upstream struct {
	routes map[string]route
	hits   atomic.Int32
}

func newUpstream(t *testing.T, routes map[string]route) (*repositories.UpstreamClient, *upstream) {
	t.Helper()
	u := &upstream{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		key := r.Method + " " + r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}
		rt, ok := u.routes[key]
		if !ok {
			rt = route{status: http.StatusNotFound, body: `{"message":"not found"}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rt.status)
		_, _ = io.WriteString(w, rt.body)
	}))
	t.Cleanup(srv.Close)
	return repositories.NewUpstreamClient(srv.URL, 2*time.Second), u
}
