package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

func TestDashboardHandler_BearerMenuIncludesAnalytics(t *testing.T) {
	e := newTestEcho()
	store := &stubSessionStore{current: &domain.User{RID: "12", Role: domain.RoleBearer, Name: "Kumar"}}
	handler := NewDashboardHandler(store, stubViewRouter{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		View        string   `json:"view"`
		Menu        []string `json:"menu"`
		DefaultPage string   `json:"default_page"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.View != "bearer" {
		t.Fatalf("expected bearer view, got %s", resp.View)
	}
	if resp.DefaultPage != string(domain.PageHome) {
		t.Fatalf("expected default page %s, got %s", domain.PageHome, resp.DefaultPage)
	}
	found := false
	for _, page := range resp.Menu {
		if page == string(domain.PageAnalytics) {
			found = true
		}
	}
	if !found {
		t.Fatalf("bearer menu missing analytics: %v", resp.Menu)
	}
}

func TestDashboardHandler_EmptySessionRoutesToLogin(t *testing.T) {
	e := newTestEcho()
	handler := NewDashboardHandler(&stubSessionStore{}, stubViewRouter{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		View string   `json:"view"`
		Menu []string `json:"menu"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.View != "login" {
		t.Fatalf("expected login view, got %s", resp.View)
	}
	if len(resp.Menu) != 0 {
		t.Fatalf("login view must carry no menu, got %v", resp.Menu)
	}
}
