package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/builder"
	"resume-builder/internal/services/health"
	"resume-builder/internal/session"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/render"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	SessionRepo    session.Repo
	Sessions       *session.Service
	Sweeper        *session.Sweeper
	Limiter        *middleware.RateLimiter
	Exporter       *render.Exporter
	Metrics        *metrics.PrometheusRecorder
	Health         *health.Service
	BuilderHandler *builder.Handler
}

// Options override collaborators, mainly for tests.
type Options struct {
	Rasterizer render.Rasterizer
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config, opts Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Metrics: metrics.NewPrometheusRecorder(nil),
		Health:  health.NewService(nil),
	}
	if sqlDB != nil {
		app.SessionRepo = &session.PGRepo{DB: sqlDB}
		app.Health = health.NewService(sqlDB)
	} else {
		app.SessionRepo = session.NewMemoryRepo()
	}

	app.Sessions = session.NewService(app.SessionRepo, cfg.SessionTTL, app.Metrics)

	raster := opts.Rasterizer
	if raster == nil {
		raster = render.NewChromeRasterizer(cfg.ChromePath)
	}
	app.Exporter = render.NewExporter(raster)
	if cfg.RenderTimeout > 0 {
		app.Exporter.Options.Timeout = cfg.RenderTimeout
	}

	app.BuilderHandler = builder.NewHandler(app.Sessions, app.Exporter, app.Metrics, cfg.CookieSecure)

	sweeper, err := session.NewSweeper(app.Sessions, cfg.SessionSweepInterval)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Sweeper = sweeper

	app.Limiter = middleware.NewRateLimiter(nil)
	if err := sweeper.AddJob("rate-limit-evict", app.evictRateLimits); err != nil {
		app.Close()
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   cfg,
		Builder:  app.BuilderHandler,
		Health:   app.Health,
		Registry: app.Metrics.Registry(),
		Limiter:  app.Limiter,
	})

	return app, nil
}

func (a *App) evictRateLimits() {
	if removed := a.Limiter.Evict(); removed > 0 {
		telemetry.Info("ratelimit.evicted", map[string]any{"removed": removed})
	}
}

// Close releases the database pool and stops the sweeper.
func (a *App) Close() error {
	var errs []error
	if a.Sweeper != nil {
		errs = append(errs, a.Sweeper.Stop())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_sessions", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_sessions", map[string]any{"reason": "database unavailable", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
