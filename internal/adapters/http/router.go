package http

import (
	"html/template"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-admin/internal/adapters/http/handlers"
	"github.com/jsamuelsen/content-admin/internal/adapters/http/middleware"
	"github.com/jsamuelsen/content-admin/internal/platform/config"
	"github.com/jsamuelsen/content-admin/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for admin and API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger placed in every request context.
	Logger *slog.Logger

	// Auth contains gateway header authentication settings. Nil disables auth.
	Auth *config.AuthConfig

	// App contains application configuration.
	App *config.AppConfig

	// Timeout is the request deadline. Zero disables it.
	Timeout time.Duration

	// Templates are the parsed admin templates.
	Templates *template.Template

	Health       *handlers.HealthHandler
	Questions    *handlers.QuestionHandler
	QuestionsAPI *handlers.QuestionAPIHandler
	ContentsAPI  *handlers.ContentAPIHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Context logger - base logger for everything below
//  2. Recovery - catch panics
//  3. Request ID and correlation ID
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips /-/ endpoints)
//  6. Timeout - request deadline (skips /-/ endpoints)
//
// Route groups:
//   - /-/ (internal): health, build info and metrics, no auth
//   - /contents/... (admin UI): HTML pages, admin role when auth is enabled
//   - /api/v1/ (JSON API): same resources, same auth
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.ContextLogger(cfg.Logger),
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.App.Name),
		telemetry.Middleware(),
		middleware.Logging(),
		middleware.Timeout(cfg.Timeout),
	)

	if cfg.Templates != nil {
		engine.SetHTMLTemplate(cfg.Templates)
	}

	if cfg.Health != nil {
		cfg.Health.Register(engine)
	}

	admin := engine.Group("")
	admin.Use(authChain(cfg.Auth)...)

	if cfg.Questions != nil {
		cfg.Questions.Register(admin)
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(authChain(cfg.Auth)...)

	if cfg.QuestionsAPI != nil {
		cfg.QuestionsAPI.Register(apiV1)
	}

	if cfg.ContentsAPI != nil {
		cfg.ContentsAPI.Register(apiV1)
	}
}

func authChain(cfg *config.AuthConfig) []gin.HandlerFunc {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	return []gin.HandlerFunc{
		middleware.RequireAuth(cfg),
		middleware.RequireRole(cfg, cfg.AdminRole),
	}
}
