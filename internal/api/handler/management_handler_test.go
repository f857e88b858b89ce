package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

// stubManagement records which operations reached the service layer.
type stubManagement struct {
	calls []string
}

func (s *stubManagement) AddMember(_ context.Context, _ *domain.User, _ string) error {
	s.calls = append(s.calls, "add_member")
	return nil
}

func (s *stubManagement) UpdateMember(_ context.Context, _ *domain.User, _, _ string) error {
	s.calls = append(s.calls, "update_member")
	return nil
}

func (s *stubManagement) DeleteMember(_ context.Context, _ *domain.User, _ string) error {
	s.calls = append(s.calls, "delete_member")
	return nil
}

func (s *stubManagement) SaveProject(_ context.Context, _ *domain.User, _ string) error {
	s.calls = append(s.calls, "save_project")
	return nil
}

func (s *stubManagement) DeleteProject(_ context.Context, _ *domain.User, _ string) error {
	s.calls = append(s.calls, "delete_project")
	return nil
}

func (s *stubManagement) SaveAnnouncement(_ context.Context, _ *domain.User, _ string) error {
	s.calls = append(s.calls, "save_announcement")
	return nil
}

func (s *stubManagement) DeleteAnnouncement(_ context.Context, _ *domain.User, _ string) error {
	s.calls = append(s.calls, "delete_announcement")
	return nil
}

func (s *stubManagement) UpdateAttendance(_ context.Context, _ *domain.User, _ string, _ int) error {
	s.calls = append(s.calls, "update_attendance")
	return nil
}

func adminSession() *stubSessionStore {
	return &stubSessionStore{
		current: &domain.User{Username: "8823931", Role: domain.RoleAdmin, Name: "System Administrator"},
	}
}

func newAdminContext(e *echo.Echo, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "admin")
	c.Set("identifier", "8823931")
	return c, rec
}

func TestManagementHandler_UpdateMember_RequiresName(t *testing.T) {
	e := newTestEcho()
	management := &stubManagement{}
	handler := NewManagementHandler(management, adminSession())

	c, _ := newAdminContext(e, http.MethodPut, "/admin/members/12434547", `{"name":""}`)
	c.SetParamNames("rid")
	c.SetParamValues("12434547")

	err := handler.UpdateMember(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty name, got %v", err)
	}
	if len(management.calls) != 0 {
		t.Fatalf("invalid request must not reach the service: %v", management.calls)
	}
}

func TestManagementHandler_UpdateMember_OK(t *testing.T) {
	e := newTestEcho()
	management := &stubManagement{}
	handler := NewManagementHandler(management, adminSession())

	c, rec := newAdminContext(e, http.MethodPut, "/admin/members/12152803", `{"name":"Rtr. Pavish Raj"}`)
	c.SetParamNames("rid")
	c.SetParamValues("12152803")

	if err := handler.UpdateMember(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(management.calls) != 1 || management.calls[0] != "update_member" {
		t.Fatalf("unexpected service calls: %v", management.calls)
	}
}

func TestManagementHandler_RejectsTokenSessionMismatch(t *testing.T) {
	e := newTestEcho()
	management := &stubManagement{}
	handler := NewManagementHandler(management, adminSession())

	c, _ := newAdminContext(e, http.MethodDelete, "/admin/members/12434547", "")
	c.Set("identifier", "someone-else")
	c.SetParamNames("rid")
	c.SetParamValues("12434547")

	err := handler.DeleteMember(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for mismatched token, got %v", err)
	}
	if len(management.calls) != 0 {
		t.Fatalf("mismatched token must not reach the service: %v", management.calls)
	}
}
