package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/api/metrics"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

type AuthHandler struct {
	sessions  ports.SessionStore
	views     ports.ViewRouter
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(sessions ports.SessionStore, views ports.ViewRouter, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{sessions: sessions, views: views, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
	Role       string `json:"role"       validate:"required,oneof=member bearer admin"`
}

type loginResponse struct {
	Token string             `json:"token"`
	User  *domain.User       `json:"user"`
	View  domain.ViewVariant `json:"view"`
}

// Login authenticates a credential triple and opens the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials: RID for members/bearers, username for admins"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := domain.Role(req.Role)
	ok, err := h.sessions.Login(c.Request().Context(), req.Identifier, req.Password, role)
	if err != nil {
		return err
	}
	if !ok {
		metrics.LoginAttemptsTotal.WithLabelValues(req.Role, "failure").Inc()
		return domain.ErrInvalidCredentials
	}
	metrics.LoginAttemptsTotal.WithLabelValues(req.Role, "success").Inc()

	user := h.sessions.CurrentUser()
	token, err := h.issueToken(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  user,
		View:  h.views.SelectView(user),
	})
}

// Logout closes the session and deletes the persisted record.
//
// @Summary      Logout
// @Tags         auth
// @Success      204  "session cleared"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current session identity.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.sessions.CurrentUser()
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"identifier": user.Identifier(),
		"role":       string(user.Role),
		"name":       user.Name,
		"exp":        time.Now().Add(h.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
