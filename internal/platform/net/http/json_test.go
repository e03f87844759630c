package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "surveyscope/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type selection struct {
	Orgs []string `json:"orgs" validate:"max=3"`
}

func TestJSONHandlers(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Get("/choices", JSONHandlerNoBody(func(*http.Request) (any, error) {
		return map[string]int{"orgs": 4}, nil
	}))
	r.Post("/charts", JSONHandler(func(_ *http.Request, in selection) (any, error) {
		return map[string]int{"orgs": len(in.Orgs)}, nil
	}))
	r.Post("/reload", JSONHandlerNoBody(func(*http.Request) (any, error) {
		return nil, perr.Sourcef(errors.New("no such file"), "reload survey")
	}))
	r.Get("/ready", JSONHandlerNoBody(func(*http.Request) (any, error) {
		return Response{Status: http.StatusServiceUnavailable, Body: map[string]string{"status": "fail"}}, nil
	}))

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	cases := []struct {
		method, path, body string
		code               int
		contains           string
	}{
		{"GET", "/choices", "", 200, `"orgs":4`},
		{"POST", "/charts", `{"orgs":["DOT","Consulting"]}`, 200, `"orgs":2`},
		{"POST", "/charts", `{"orgs":["a","b","c","d"]}`, 400, `orgs must be at most 3`},
		{"POST", "/charts", `{"orgs":`, 400, `invalid JSON`},
		{"POST", "/charts", `{"years":[1,2]}`, 400, `unknown field`},
		{"POST", "/reload", "", 503, `reload survey`},
		{"GET", "/ready", "", 503, `"status":"fail"`},
	}
	for _, c := range cases {
		rr := do(c.method, c.path, c.body)
		if rr.Code != c.code || !strings.Contains(rr.Body.String(), c.contains) {
			t.Fatalf("%s %s %s => %d %q", c.method, c.path, c.body, rr.Code, rr.Body.String())
		}
	}
}
