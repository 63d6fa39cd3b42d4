package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-studio/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-studio/internal/platform/config"
	"github.com/jsamuelsen/quote-studio/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests. Rendering a story-sized webp
// with a cold provider takes a few seconds at most.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
// Nil handlers leave their routes unregistered.
type RouterConfig struct {
	Logger     *slog.Logger
	AuthConfig *config.AuthConfig
	AppConfig  *config.AppConfig
	Timeout    time.Duration

	HealthHandler    *handlers.HealthHandler
	QuoteHandler     *handlers.QuoteHandler
	ContextHandler   *handlers.ContextHandler
	HistoryHandler   *handlers.HistoryHandler
	FavoritesHandler *handlers.FavoritesHandler
	StatsHandler     *handlers.StatsHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Global middleware, in order:
//  1. Recovery, which also seeds the request logger
//  2. Request ID and correlation ID
//  3. OpenTelemetry tracing and HTTP metrics
//  4. Logging (skips /-/)
//
// /-/ holds the probes. /api/v1 adds a deadline and a pipeline session.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "quote-studio"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(serviceName)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Timeout(timeout), middleware.Session())

	setupAPIRoutes(apiV1, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.ContextHandler != nil {
		cfg.ContextHandler.RegisterContextRoutes(rg)
	}

	if cfg.HistoryHandler != nil {
		cfg.HistoryHandler.RegisterHistoryRoutes(rg)

		adminRole := "admin"
		if cfg.AuthConfig != nil && cfg.AuthConfig.AdminRole != "" {
			adminRole = cfg.AuthConfig.AdminRole
		}

		rg.DELETE("/history", middleware.RequireRole(cfg.AuthConfig, adminRole), cfg.HistoryHandler.Clear)
	}

	if cfg.FavoritesHandler != nil {
		cfg.FavoritesHandler.RegisterFavoritesRoutes(rg)
	}

	if cfg.StatsHandler != nil {
		rg.GET("/stats", cfg.StatsHandler.Overview)
	}
}
