package api

import (
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/wellpath/wellness/docs"
	"github.com/wellpath/wellness/internal/api/handler"
	"github.com/wellpath/wellness/internal/api/middleware"
	"github.com/wellpath/wellness/internal/core/domain"
)

// Deps carries everything the router needs to wire its handlers.
type Deps struct {
	Log      zerolog.Logger
	Sessions middleware.SessionResolver

	SessionSecret []byte
	SessionTTL    time.Duration
	SecureCookie  bool

	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handler.Checker

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
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
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "wellness",
		Subsystem:  "http",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/swagger")
		},
	}))

	// --- Ops routes (no session) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	session := middleware.Session(middleware.SessionConfig{
		Secret:   d.SessionSecret,
		TTL:      d.SessionTTL,
		Secure:   d.SecureCookie,
		Resolver: d.Sessions,
	})

	// --- Screens ---
	screens := handler.NewScreenHandler()
	e.GET(domain.PathHome, screens.Home, session)
	e.GET(domain.PathLogin, screens.Login, session)
	e.GET(domain.PathOnboarding, screens.Onboarding, session)

	api := e.Group("/api", session)

	// --- Auth ---
	authHandler := handler.NewAuthHandler()
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/state", authHandler.State)

	// --- Onboarding (authenticated, onboarding pending) ---
	onboardingHandler := handler.NewOnboardingHandler(d.Log)
	ob := api.Group("/onboarding", middleware.RequireScreen(domain.OnboardingScreen))
	ob.GET("", onboardingHandler.Get)
	ob.POST("/goals", onboardingHandler.Goals)
	ob.POST("/challenges", onboardingHandler.Challenges)
	ob.POST("/activity", onboardingHandler.Activity)
	ob.POST("/measurements", onboardingHandler.Measurements)
	ob.POST("/back", onboardingHandler.Back)

	// --- Home (authenticated, onboarding complete) ---
	dashboardHandler := handler.NewDashboardHandler()
	requireHome := middleware.RequireScreen(domain.HomeScreen)
	api.GET("/dashboard", dashboardHandler.Dashboard, requireHome)
	api.POST("/dashboard/tasks/:id/toggle", dashboardHandler.ToggleTask, requireHome)
	api.GET("/progress", dashboardHandler.Progress, requireHome)
	api.GET("/recommendations", dashboardHandler.Recommendations, requireHome)

	return e
}
