package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

type DashboardHandler struct {
	sessions ports.SessionStore
	views    ports.ViewRouter
}

func NewDashboardHandler(sessions ports.SessionStore, views ports.ViewRouter) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, views: views}
}

type dashboardResponse struct {
	View        domain.ViewVariant `json:"view"`
	Menu        []domain.Page      `json:"menu,omitempty"`
	DefaultPage domain.Page        `json:"default_page,omitempty"`
}

// Dashboard returns the view variant and navigation menu for the current
// session. An empty session routes to the login view with no menu; page
// selection within a variant is client-side state, so only the fixed default
// is reported.
//
// @Summary      Dashboard routing
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	view := h.views.SelectView(h.sessions.CurrentUser())

	resp := dashboardResponse{View: view}
	if view != domain.ViewLogin {
		resp.Menu = view.Menu()
		resp.DefaultPage = domain.DefaultPage
	}
	return c.JSON(http.StatusOK, resp)
}
