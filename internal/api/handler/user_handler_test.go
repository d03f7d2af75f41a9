package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/exercise-tracker/internal/core/domain"
	"github.com/fittrack/exercise-tracker/internal/core/ports"
)

type stubUserService struct {
	listFn    func(ctx context.Context) ([]*domain.User, error)
	createFn  func(ctx context.Context, username string) (*ports.UserIdentity, error)
	resetFn   func(ctx context.Context) (int64, error)
	resolveFn func(ctx context.Context, id string) (*ports.UserIdentity, error)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, username string) (*ports.UserIdentity, error) {
	return s.createFn(ctx, username)
}

func (s *stubUserService) Reset(ctx context.Context) (int64, error) {
	return s.resetFn(ctx)
}

func (s *stubUserService) Resolve(ctx context.Context, id string) (*ports.UserIdentity, error) {
	return s.resolveFn(ctx, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestUserHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, username string) (*ports.UserIdentity, error) {
			if username != "alice" {
				t.Fatalf("unexpected username: %s", username)
			}
			return &ports.UserIdentity{ID: "65b0c8f2e4b0a1d2c3e4f5a6", Username: username}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "65b0c8f2e4b0a1d2c3e4f5a6" || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["exercises"]; ok {
		t.Error("create response must not include exercises")
	}
}

func TestUserHandler_Create_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, username string) (*ports.UserIdentity, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "username not available" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestUserHandler_Create_MissingUsername(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, username string) (*ports.UserIdentity, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_List_ReturnsUsersVerbatim(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "a1", Username: "alice", Exercises: []domain.Exercise{{Description: "run", Duration: 30, Date: "Mon Jan 01 2024"}}},
				{ID: "b2", Username: "bob", Exercises: []domain.Exercise{}},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	if resp[0]["username"] != "alice" || resp[1]["username"] != "bob" {
		t.Errorf("unexpected users: %+v", resp)
	}
	if _, ok := resp[0]["exercises"]; !ok {
		t.Error("list must return full records including exercises")
	}
}

func TestUserHandler_Reset(t *testing.T) {
	e := newTestEcho()
	called := false
	stub := &stubUserService{
		resetFn: func(ctx context.Context) (int64, error) {
			called = true
			return 3, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/reset", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Reset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("reset service not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["msg"] == "" {
		t.Error("expected a confirmation message")
	}
}
