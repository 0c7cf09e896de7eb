package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/session"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server/middleware"
)

func devConfig() config.Config {
	return config.Config{
		Port:                 "8080",
		Env:                  "dev",
		SessionTTL:           time.Hour,
		SessionSweepInterval: time.Minute,
		RenderTimeout:        5 * time.Second,
	}
}

func TestBuildUsesMemoryRepoWithoutDatabase(t *testing.T) {
	app, err := Build(devConfig(), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Nil(t, app.DB)
	assert.IsType(t, &session.MemoryRepo{}, app.SessionRepo)
	assert.Equal(t, 5*time.Second, app.Exporter.Options.Timeout)
	require.NotNil(t, app.Router)
	require.NotNil(t, app.Limiter)

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEvictRateLimitsDropsIdleBuckets(t *testing.T) {
	app, err := Build(devConfig(), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	app.Limiter.Allow("idle", middleware.RateLimitRule{Rate: 1e9, Burst: 1})
	require.Eventually(t, func() bool {
		app.evictRateLimits()
		return app.Limiter.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := devConfig()
	cfg.Env = "production"
	_, err := Build(cfg, Options{})
	assert.ErrorContains(t, err, "DATABASE_URL is required")
}

func TestBuildFallsBackToMemoryInDev(t *testing.T) {
	cfg := devConfig()
	cfg.DatabaseURL = "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"
	app, err := Build(cfg, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	assert.Nil(t, app.DB)
}
