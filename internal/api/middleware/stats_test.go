package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubRecorder struct {
	method string
	path   string
	calls  int
	err    error
}

func (r *stubRecorder) Record(_ context.Context, method, path string) error {
	r.method = method
	r.path = path
	r.calls++
	return r.err
}

func TestStats_RecordsServedRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/users")

	hits := &stubRecorder{}
	mw := Stats(hits, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if hits.calls != 1 {
		t.Fatalf("expected 1 recorded hit, got %d", hits.calls)
	}
	if hits.method != http.MethodGet || hits.path != "/api/users" {
		t.Errorf("unexpected hit: %s %s", hits.method, hits.path)
	}
}

func TestStats_RecorderFailureDoesNotAffectResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	hits := &stubRecorder{err: errors.New("redis down")}
	mw := Stats(hits, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestStats_PropagatesHandlerError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	want := errors.New("boom")
	mw := Stats(&stubRecorder{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return want
	})

	if err := handler(c); !errors.Is(err, want) {
		t.Fatalf("expected handler error to propagate, got %v", err)
	}
}
