package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/monishsatpuri/blogcms/docs"
	"github.com/monishsatpuri/blogcms/internal/api/handler"
	"github.com/monishsatpuri/blogcms/internal/api/middleware"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Auth     ports.AuthService
	Content  ports.ContentService
	Reader   ports.ReaderService
	Contacts ports.ContactService

	Cookies  *middleware.SessionCookie
	Renderer echo.Renderer
	// Ready lists the dependencies checked by /health/ready.
	Ready map[string]ports.Pinger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = d.Renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlashWithConfig(echomiddleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool { return strings.HasPrefix(c.Request().URL.Path, "/swagger") },
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
		},
	}))
	e.Use(middleware.LoadSession(d.Cookies, d.Auth))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "same-origin",
	}))

	// --- Health checks, metrics and docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Ready)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Site ---
	blogHandler := handler.NewBlogHandler(d.Reader)
	e.GET("/", blogHandler.Home)
	e.GET("/post/:slug", blogHandler.Post)
	e.GET("/about", blogHandler.About)

	contactHandler := handler.NewContactHandler(d.Contacts)
	e.GET("/contact", contactHandler.Form)
	e.POST("/contact", contactHandler.Submit)

	// --- Admin ---
	adminHandler := handler.NewAdminHandler(d.Auth, d.Content, d.Cookies, d.Log)
	requireAdmin := middleware.RequireAdmin()

	e.GET(middleware.LoginPath, adminHandler.Dashboard)
	e.POST(middleware.LoginPath, adminHandler.Login)
	e.GET("/edit/:id", adminHandler.EditForm, requireAdmin)
	e.POST("/edit/:id", adminHandler.Edit, requireAdmin)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/delete/:id", adminHandler.Delete, requireAdmin)
	e.GET("/logout", adminHandler.Logout)

	return e
}
