package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"surveyscope/internal/platform/config"
	phttp "surveyscope/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	cases := []struct {
		enabled bool
		path    string
		want    int
	}{
		{true, "/debug/pprof/", http.StatusOK},
		{true, "/debug/pprof/cmdline", http.StatusOK},
		{false, "/debug/pprof/", http.StatusNotFound},
	}
	for _, c := range cases {
		r := phttp.NewServer(config.New()).Router()
		phttp.MountProfiler(r, "/debug", c.enabled)

		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", c.path, nil))
		if rec.Code != c.want {
			t.Fatalf("enabled=%v %s => %d, want %d", c.enabled, c.path, rec.Code, c.want)
		}
	}
}
