package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/api/metrics"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

// ManagementHandler exposes the admin screens' operations. Routes are behind
// RBAC(admin); the service re-checks the actor anyway.
type ManagementHandler struct {
	management ports.ManagementService
	sessions   ports.SessionStore
}

func NewManagementHandler(management ports.ManagementService, sessions ports.SessionStore) *ManagementHandler {
	return &ManagementHandler{management: management, sessions: sessions}
}

type memberRequest struct {
	Name string `json:"name" validate:"required"`
}

type titleRequest struct {
	Title string `json:"title" validate:"required"`
}

type attendanceRequest struct {
	Attendance int `json:"attendance" validate:"min=0,max=100"`
}

type ackResponse struct {
	Message string `json:"message"`
}

func (h *ManagementHandler) actor(c echo.Context) (*domain.User, error) {
	role, identifier, err := ctxIdentity(c)
	if err != nil {
		return nil, err
	}
	user := h.sessions.CurrentUser()
	if user == nil || user.Role != role || user.Identifier() != identifier {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token does not match the active session")
	}
	return user, nil
}

// AddMember simulates adding a member to the roster.
//
// @Summary      Add member
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      memberRequest  true  "New member"
// @Success      200   {object}  ackResponse
// @Router       /admin/members [post]
func (h *ManagementHandler) AddMember(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	if err := h.management.AddMember(c.Request().Context(), actor, req.Name); err != nil {
		return err
	}
	metrics.ManagementActionsTotal.WithLabelValues("member", "add").Inc()
	return c.JSON(http.StatusOK, ackResponse{Message: "member added"})
}

// UpdateMember simulates updating a member identified by RID.
//
// @Summary      Update member
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        rid   path      string         true  "Member RID"
// @Param        body  body      memberRequest  true  "Updated fields"
// @Success      200   {object}  ackResponse
// @Failure      404   {object}  map[string]string
// @Router       /admin/members/{rid} [put]
func (h *ManagementHandler) UpdateMember(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	if err := h.management.UpdateMember(c.Request().Context(), actor, c.Param("rid"), req.Name); err != nil {
		return err
	}
	metrics.ManagementActionsTotal.WithLabelValues("member", "update").Inc()
	return c.JSON(http.StatusOK, ackResponse{Message: "member updated"})
}

// DeleteMember simulates removing a member identified by RID.
//
// @Summary      Delete member
// @Tags         admin
// @Produce      json
// @Param        rid  path      string  true  "Member RID"
// @Success      200  {object}  ackResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/members/{rid} [delete]
func (h *ManagementHandler) DeleteMember(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	if err := h.management.DeleteMember(c.Request().Context(), actor, c.Param("rid")); err != nil {
		return err
	}
	metrics.ManagementActionsTotal.WithLabelValues("member", "delete").Inc()
	return c.JSON(http.StatusOK, ackResponse{Message: "member deleted"})
}

// SaveProject simulates creating or updating a project.
//
// @Summary      Save project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      titleRequest  true  "Project"
// @Success      200   {object}  ackResponse
// @Router       /admin/projects [post]
func (h *ManagementHandler) SaveProject(c echo.Context) error {
	var req titleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	if err := h.management.SaveProject(c.Request().Context(), actor, req.Title); err != nil {
		return err
	}
	metrics.ManagementActionsTotal.WithLabelValues("project", "save").Inc()
	return c.JSON(http.StatusOK, ackResponse{Message: "project saved"})
}

// DeleteProject simulates deleting a project.
//
// @Summary      Delete project
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  ackResponse
// @Router       /admin/projects/{id} [delete]
func (h *ManagementHandler) DeleteProject(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	if err := h.management.DeleteProject(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	metrics.ManagementActionsTotal.WithLabelValues("project", "delete").Inc()
	return c.JSON(http.StatusOK, ackResponse{Message: "project deleted"})
}

// SaveAnnouncement simulates publishing an announcement.
//
// @Summary      Save announcement
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      titleRequest  true  "Announcement"
// @Success      200   {object}  ackResponse
// @Router       /admin/announcements [post]
func (h *ManagementHandler) SaveAnnouncement(c echo.Context) error {
	var req titleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	if err := h.management.SaveAnnouncement(c.Request().Context(), actor, req.Title); err != nil {
		return err
	}
	metrics.ManagementActionsTotal.WithLabelValues("announcement", "save").Inc()
	return c.JSON(http.StatusOK, ackResponse{Message: "announcement published"})
}

// DeleteAnnouncement simulates deleting an announcement.
//
// @Summary      Delete announcement
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Announcement id"
// @Success      200  {object}  ackResponse
// @Router       /admin/announcements/{id} [delete]
func (h *ManagementHandler) DeleteAnnouncement(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	if err := h.management.DeleteAnnouncement(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	metrics.ManagementActionsTotal.WithLabelValues("announcement", "delete").Inc()
	return c.JSON(http.StatusOK, ackResponse{Message: "announcement deleted"})
}

// UpdateAttendance simulates updating a member's attendance percentage.
//
// @Summary      Update attendance
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        rid   path      string             true  "Member RID"
// @Param        body  body      attendanceRequest  true  "Attendance percentage"
// @Success      200   {object}  ackResponse
// @Failure      404   {object}  map[string]string
// @Router       /admin/attendance/{rid} [put]
func (h *ManagementHandler) UpdateAttendance(c echo.Context) error {
	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	if err := h.management.UpdateAttendance(c.Request().Context(), actor, c.Param("rid"), req.Attendance); err != nil {
		return err
	}
	metrics.ManagementActionsTotal.WithLabelValues("attendance", "update").Inc()
	return c.JSON(http.StatusOK, ackResponse{Message: "attendance updated"})
}
