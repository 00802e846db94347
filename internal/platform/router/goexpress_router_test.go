package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/gastos/internal/platform/router"
)

func TestGoexpressRouter_Group(t *testing.T) {
	t.Parallel()

	r := router.NewGoexpressRouter()

	var gateRan bool
	gate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			gateRan = true
			next.ServeHTTP(w, req)
		})
	}

	r.Group("/api/things", func(gr router.Router) {
		gr.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			if _, err := w.Write([]byte(req.PathValue("id"))); err != nil {
				t.Error(err)
			}
		})
	}, gate)

	req := httptest.NewRequest(http.MethodGet, "/api/things/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
	}
	if got := rec.Body.String(); got != "42" {
		t.Errorf("body = %q, want: %q", got, "42")
	}
	if !gateRan {
		t.Error("group middleware did not run")
	}
}

func TestGoexpressRouter_Get(t *testing.T) {
	t.Parallel()

	r := router.NewGoexpressRouter()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusNoContent)
	}
}
