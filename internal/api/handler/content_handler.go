package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

type ContentHandler struct {
	directory ports.Directory
	content   ports.ContentService
	sessions  ports.SessionStore
}

func NewContentHandler(directory ports.Directory, content ports.ContentService, sessions ports.SessionStore) *ContentHandler {
	return &ContentHandler{directory: directory, content: content, sessions: sessions}
}

// Members lists the full roster: members first, then bearers, then admins.
//
// @Summary      Club roster
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /members [get]
func (h *ContentHandler) Members(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.All())
}

// Projects lists all club projects.
//
// @Summary      Club projects
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /projects [get]
func (h *ContentHandler) Projects(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.Projects())
}

// Announcements lists all club announcements.
//
// @Summary      Club announcements
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Announcement
// @Router       /announcements [get]
func (h *ContentHandler) Announcements(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.Announcements())
}

// MyProjects returns the current user's project participation history.
//
// @Summary      My project participation
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Participation
// @Failure      401  {object}  map[string]string
// @Router       /me/projects [get]
func (h *ContentHandler) MyProjects(c echo.Context) error {
	user := h.sessions.CurrentUser()
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	participation := h.content.MyProjects(user)
	if participation == nil {
		participation = []domain.Participation{}
	}
	return c.JSON(http.StatusOK, participation)
}

// MemberGrowth returns the monthly membership growth series.
//
// @Summary      Membership growth analytics
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  domain.GrowthPoint
// @Router       /analytics/growth [get]
func (h *ContentHandler) MemberGrowth(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.MemberGrowth())
}

// ProjectDistribution returns the project category breakdown.
//
// @Summary      Project distribution analytics
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  domain.DistributionSlice
// @Router       /analytics/projects [get]
func (h *ContentHandler) ProjectDistribution(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.ProjectDistribution())
}
