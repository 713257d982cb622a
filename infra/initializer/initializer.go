package initializer

import (
	"fmt"
	"io"

	"github.com/amirasaad/accountowner/infra"
	"github.com/amirasaad/accountowner/infra/cache"
	infra_eventbus "github.com/amirasaad/accountowner/infra/eventbus"
	infra_repository "github.com/amirasaad/accountowner/infra/repository"
	"github.com/amirasaad/accountowner/pkg/app"
	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/amirasaad/accountowner/pkg/metrics"
)

// InitializeDependencies initializes all the application dependencies.
// On error every resource opened so far is released.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	logCfg := cfg.Log
	if logCfg == nil {
		logCfg = &config.Log{}
	}
	logger := setupLogger(logCfg)
	deps = &app.Deps{Logger: logger}

	defer func() {
		if err != nil {
			closeAll(deps.Closers)
			deps = nil
		}
	}()

	// Database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return deps, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return deps, fmt.Errorf("failed to get database handle: %w", err)
	}
	deps.Closers = append(deps.Closers, sqlDB)
	deps.HealthCheck = sqlDB.PingContext
	logger.Info("Database connected", "driver", cfg.DB.Driver)

	if cfg.DB.AutoMigrate {
		if err = infra.Migrate(db); err != nil {
			return deps, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	deps.WrapperFactory = infra_repository.NewWrapperFactory(db)

	// Event bus
	bus, busCloser, err := infra_eventbus.New(cfg.EventBus, logger)
	if err != nil {
		return deps, fmt.Errorf("failed to initialize event bus: %w", err)
	}
	deps.EventBus = bus
	deps.Closers = append(deps.Closers, busCloser)
	if cfg.EventBus != nil {
		logger.Info("Event bus initialized", "driver", cfg.EventBus.Driver)
	}

	// Shared rate limit counters
	if cfg.Redis != nil && cfg.Redis.URL != "" {
		storage, serr := cache.NewRedisStorage(cfg.Redis.URL, cfg.Redis.KeyPrefix, logger)
		if serr != nil {
			err = fmt.Errorf("failed to initialize rate limit storage: %w", serr)
			return deps, err
		}
		deps.RateLimitStorage = storage
		deps.Closers = append(deps.Closers, storage)
		logger.Info("Rate limiter uses Redis storage")
	} else {
		logger.Info("Rate limiter uses in-memory storage")
	}

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
	}

	return deps, nil
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		_ = closers[i].Close()
	}
}
