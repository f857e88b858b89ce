package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

// stubSessionStore drives handlers without a real directory or repository.
type stubSessionStore struct {
	current *domain.User
	loginFn func(ctx context.Context, identifier, password string, role domain.Role) (bool, error)
	logouts int
}

func (s *stubSessionStore) Restore(_ context.Context) error { return nil }

func (s *stubSessionStore) Login(ctx context.Context, identifier, password string, role domain.Role) (bool, error) {
	return s.loginFn(ctx, identifier, password, role)
}

func (s *stubSessionStore) Logout(_ context.Context) error {
	s.logouts++
	s.current = nil
	return nil
}

func (s *stubSessionStore) CurrentUser() *domain.User {
	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

func (s *stubSessionStore) IsAuthenticated() bool { return s.current != nil }

type stubViewRouter struct{}

func (stubViewRouter) SelectView(user *domain.User) domain.ViewVariant {
	if user == nil {
		return domain.ViewLogin
	}
	switch user.Role {
	case domain.RoleMember:
		return domain.ViewMember
	case domain.RoleBearer:
		return domain.ViewBearer
	case domain.RoleAdmin:
		return domain.ViewAdmin
	default:
		return domain.ViewLogin
	}
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	vishnu := &domain.User{RID: "12434547", Role: domain.RoleMember, Name: "Vishnu A"}
	store := &stubSessionStore{
		loginFn: func(_ context.Context, identifier, password string, role domain.Role) (bool, error) {
			if identifier != "12434547" || password != "vishnu2024" || role != domain.RoleMember {
				t.Fatalf("unexpected args: %s %s %s", identifier, password, role)
			}
			return true, nil
		},
	}
	handler := NewAuthHandler(store, stubViewRouter{}, "secret", time.Hour)

	body := strings.NewReader(`{"identifier":"12434547","password":"vishnu2024","role":"member"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store.current = vishnu
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["view"] != "member" {
		t.Fatalf("expected member view, got %v", resp["view"])
	}

	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatalf("expected a token")
	}
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["identifier"] != "12434547" || claims["role"] != "member" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	store := &stubSessionStore{
		loginFn: func(_ context.Context, _, _ string, _ domain.Role) (bool, error) {
			return false, nil
		},
	}
	handler := NewAuthHandler(store, stubViewRouter{}, "secret", time.Hour)

	body := strings.NewReader(`{"identifier":"834573401","password":"member2024","role":"member"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err == nil {
		t.Fatalf("expected error for invalid credentials")
	}
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_RejectsUnknownRole(t *testing.T) {
	e := newTestEcho()
	store := &stubSessionStore{
		loginFn: func(_ context.Context, _, _ string, _ domain.Role) (bool, error) {
			t.Fatalf("should not be called")
			return false, nil
		},
	}
	handler := NewAuthHandler(store, stubViewRouter{}, "secret", time.Hour)

	body := strings.NewReader(`{"identifier":"x","password":"y","role":"superuser"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_RejectsMissingFields(t *testing.T) {
	e := newTestEcho()
	store := &stubSessionStore{
		loginFn: func(_ context.Context, _, _ string, _ domain.Role) (bool, error) {
			t.Fatalf("should not be called")
			return false, nil
		},
	}
	handler := NewAuthHandler(store, stubViewRouter{}, "secret", time.Hour)

	body := strings.NewReader(`{"identifier":"","password":"","role":"member"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	store := &stubSessionStore{current: &domain.User{Role: domain.RoleMember}}
	handler := NewAuthHandler(store, stubViewRouter{}, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if store.current != nil {
		t.Fatalf("expected session cleared")
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	store := &stubSessionStore{current: &domain.User{RID: "12434547", Role: domain.RoleMember, Name: "Vishnu A"}}
	handler := NewAuthHandler(store, stubViewRouter{}, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Vishnu A" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password must never serialize")
	}
}

func TestAuthHandler_Me_EmptySession(t *testing.T) {
	e := newTestEcho()
	store := &stubSessionStore{}
	handler := NewAuthHandler(store, stubViewRouter{}, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
