package initializer

import (
	"context"
	"testing"

	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *config.App {
	return &config.App{
		Env: "test",
		Log: &config.Log{Format: "text"},
		DB: &config.DB{
			Url:         "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1",
			Driver:      "sqlite",
			AutoMigrate: true,
		},
		EventBus: &config.EventBus{Driver: "memory"},
		Metrics:  &config.Metrics{Enabled: true, Path: "/metrics"},
	}
}

func TestInitializeDependencies_SQLite(t *testing.T) {
	deps, err := InitializeDependencies(sqliteConfig())
	require.NoError(t, err)
	require.NotNil(t, deps)

	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.EventBus)
	assert.NotNil(t, deps.Metrics)
	assert.Nil(t, deps.RateLimitStorage)
	require.NotNil(t, deps.HealthCheck)
	assert.NoError(t, deps.HealthCheck(context.Background()))

	w, err := deps.WrapperFactory()
	require.NoError(t, err)
	owners, err := w.Owner().GetAllOwners(context.Background())
	require.NoError(t, err)
	assert.Empty(t, owners)

	for i := len(deps.Closers) - 1; i >= 0; i-- {
		assert.NoError(t, deps.Closers[i].Close())
	}
	assert.Error(t, deps.HealthCheck(context.Background()))
}

func TestInitializeDependencies_MetricsDisabled(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Metrics.Enabled = false
	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	assert.Nil(t, deps.Metrics)
	closeAll(deps.Closers)
}

func TestInitializeDependencies_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.App)
	}{
		{"missing database url", func(c *config.App) { c.DB.Url = "" }},
		{"unknown database driver", func(c *config.App) { c.DB.Driver = "oracle" }},
		{"unknown event bus driver", func(c *config.App) { c.EventBus.Driver = "carrier-pigeon" }},
		{"redis bus without url", func(c *config.App) { c.EventBus.Driver = "redis" }},
		{"unreachable redis storage", func(c *config.App) { c.Redis = &config.Redis{URL: "not a url"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := sqliteConfig()
			tc.mutate(cfg)
			deps, err := InitializeDependencies(cfg)
			assert.Error(t, err)
			assert.Nil(t, deps)
		})
	}
}
