package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"

	"resume-builder/internal/builder"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Rate limit groups.
const (
	GroupDefault = "DEFAULT"
	GroupExport  = "EXPORT"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config   config.Config
	Builder  *builder.Handler
	Health   *health.Service
	Registry *prom.Registry
	Limiter  *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" || deps.Config.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Session(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:        rateLimitRules(deps.Config),
			DefaultGroup: GroupDefault,
			GroupFor:     rateLimitGroup,
			Limiter:      deps.Limiter,
			SessionValid: sessionValid(deps.Builder),
		}),
	)

	r.GET("/metrics", metrics.Handler(deps.Registry))

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		st := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, st)
	})
	if deps.Builder != nil {
		deps.Builder.RegisterRoutes(api)
		deps.Builder.RegisterPages(&r.RouterGroup)
	}

	return r
}

// sessionValid lets the limiter key on a session id only once it names a live
// session.
func sessionValid(h *builder.Handler) func(context.Context, string) bool {
	if h == nil || h.Sessions == nil {
		return nil
	}
	return h.Sessions.Exists
}

// rateLimitRules limits exports more tightly than edits: rasterizing drives a
// headless browser.
func rateLimitRules(cfg config.Config) map[string]middleware.RateLimitRule {
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil
	}
	exportBurst := cfg.RateLimitBurst / 4
	if exportBurst < 1 {
		exportBurst = 1
	}
	return map[string]middleware.RateLimitRule{
		GroupDefault: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
		GroupExport:  {Rate: cfg.RateLimitRPS / 5, Burst: exportBurst},
	}
}

func rateLimitGroup(c *gin.Context) string {
	path := c.Request.URL.Path
	switch {
	case path == "/metrics", path == "/api/v1/health":
		return "NONE"
	case strings.HasSuffix(path, "/export.png"), strings.HasSuffix(path, "/export/image"):
		return GroupExport
	default:
		return GroupDefault
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
