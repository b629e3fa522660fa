package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook-service/internal/platform/config"
	"github.com/jsamuelsen/quotebook-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler serves the /-/ probe endpoints.
	HealthHandler *handlers.HealthHandler

	// RootHandler serves / and /health.
	RootHandler *handlers.RootHandler

	// MathHandler serves /math.
	MathHandler *handlers.MathHandler

	// QuoteHandler serves /quotebook.
	QuoteHandler *handlers.QuoteHandler

	// Timeout is the deadline for /math and /quotebook requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - base logger for the request
//  3. Request ID and Correlation ID - enrich the request logger
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips probe endpoints)
//  6. Timeout - request deadline on the API groups
//
// Route groups:
//   - / and /health: service greeting and plain-text liveness
//   - /-/ (internal): probes, build info and metrics, no timeout
//   - /math and /quotebook: the public API
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging(cfg.Logger, "/health"))

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(noRoute)
	engine.NoMethod(noRoute)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.RootHandler != nil {
		cfg.RootHandler.RegisterRootRoutes(engine)
	}

	api := engine.Group("")
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.MathHandler != nil {
		cfg.MathHandler.RegisterMathRoutes(api)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		RootHandler:   handlers.NewRootHandler(appCfg.Name, appCfg.Greeting),
		MathHandler:   handlers.NewMathHandler(),
		Timeout:       DefaultRequestTimeout,
	}
}

func noRoute(c *gin.Context) {
	dto.RespondWithCode(c, dto.ErrorCodeNoRoute, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}
