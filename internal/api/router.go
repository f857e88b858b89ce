package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/V-HUB-cpu/rotaract-dashboard/docs"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/api/handler"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/api/middleware"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

// Deps collects everything the router needs. Mongo is nil when the directory
// runs on the static seed.
type Deps struct {
	Directory  ports.Directory
	Sessions   ports.SessionStore
	Views      ports.ViewRouter
	Content    ports.ContentService
	Management ports.ManagementService
	Redis      *redis.Client
	Mongo      *mongo.Database
	JWTSecret  string
	TokenTTL   time.Duration
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("club"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions, deps.Views, deps.JWTSecret, deps.TokenTTL)
	dashboardHandler := handler.NewDashboardHandler(deps.Sessions, deps.Views)
	contentHandler := handler.NewContentHandler(deps.Directory, deps.Content, deps.Sessions)
	managementHandler := handler.NewManagementHandler(deps.Management, deps.Sessions)

	authMW := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Dashboard routing ---
	e.GET("/dashboard", dashboardHandler.Dashboard, authMW)

	// --- Club content (any authenticated role) ---
	anyRole := middleware.RBAC(domain.RoleMember, domain.RoleBearer, domain.RoleAdmin)
	e.GET("/members", contentHandler.Members, authMW, anyRole)
	e.GET("/projects", contentHandler.Projects, authMW, anyRole)
	e.GET("/announcements", contentHandler.Announcements, authMW, anyRole)
	e.GET("/me/projects", contentHandler.MyProjects, authMW, anyRole)

	// --- Analytics (bearer-exclusive page) ---
	bearerOnly := middleware.RBAC(domain.RoleBearer)
	e.GET("/analytics/growth", contentHandler.MemberGrowth, authMW, bearerOnly)
	e.GET("/analytics/projects", contentHandler.ProjectDistribution, authMW, bearerOnly)

	// --- Admin management ---
	admin := e.Group("/admin", authMW, middleware.RBAC(domain.RoleAdmin))
	admin.POST("/members", managementHandler.AddMember)
	admin.PUT("/members/:rid", managementHandler.UpdateMember)
	admin.DELETE("/members/:rid", managementHandler.DeleteMember)
	admin.POST("/projects", managementHandler.SaveProject)
	admin.DELETE("/projects/:id", managementHandler.DeleteProject)
	admin.POST("/announcements", managementHandler.SaveAnnouncement)
	admin.DELETE("/announcements/:id", managementHandler.DeleteAnnouncement)
	admin.PUT("/attendance/:rid", managementHandler.UpdateAttendance)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
