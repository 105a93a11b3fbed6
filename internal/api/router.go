package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/api/handler"
	"github.com/inventoryhub/inventory-api/internal/api/middleware"
	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// RouterConfig carries the pre-wired services and the transport settings
// the routes need.
type RouterConfig struct {
	Auth          ports.AuthService
	Registrations ports.RegistrationService
	Dashboards    ports.DashboardService
	Sessions      ports.SessionStore

	CookieName    string
	CookieTTL     time.Duration
	SecureCookies bool

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	session := middleware.Session(cfg.Sessions, cfg.CookieName)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(handler.AuthHandlerConfig{
		Auth:          cfg.Auth,
		Registrations: cfg.Registrations,
		Sessions:      cfg.Sessions,
		CookieName:    cfg.CookieName,
		CookieTTL:     cfg.CookieTTL,
		SecureCookies: cfg.SecureCookies,
		Log:           cfg.Log,
	})
	adminHandler := handler.NewAdminHandler(cfg.Registrations, cfg.Log)
	dashboardHandler := handler.NewDashboardHandler(cfg.Dashboards, cfg.Log)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/logout", authHandler.Logout)
	e.POST("/auth/register", authHandler.Register)

	// Login page placeholder: rendering is owned by the frontend; the
	// route exists so guard redirects land somewhere meaningful.
	e.GET(domain.LoginPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Please log in to continue"})
	})

	// --- Role-scoped routes ---
	dashboards := e.Group("/dashboards", session)
	dashboards.GET("/admin_dashboard", dashboardHandler.Admin, middleware.RequireRole(domain.RoleAdmin))
	dashboards.GET("/customer_dashboard", dashboardHandler.Customer, middleware.RequireRole(domain.RoleCustomer))
	dashboards.GET("/supplier_dashboard", dashboardHandler.Supplier, middleware.RequireRole(domain.RoleSupplier))

	admin := e.Group("/admin", session, middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/suppliers", adminHandler.ProvisionSupplier)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
