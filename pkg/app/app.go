// Package app assembles the services from their infrastructure dependencies.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/amirasaad/accountowner/pkg/eventbus"
	"github.com/amirasaad/accountowner/pkg/handler/audit"
	"github.com/amirasaad/accountowner/pkg/metrics"
	"github.com/amirasaad/accountowner/pkg/repository"
	"github.com/amirasaad/accountowner/pkg/service/account"
	"github.com/amirasaad/accountowner/pkg/service/owner"
	"github.com/gofiber/fiber/v2"
)

// Deps contains the infrastructure the services and the HTTP layer need.
type Deps struct {
	WrapperFactory repository.WrapperFactory
	EventBus       eventbus.Bus
	Metrics        *metrics.Metrics
	// RateLimitStorage is optional; nil keeps limiter counters in memory.
	RateLimitStorage fiber.Storage
	// HealthCheck reports whether the database is reachable.
	HealthCheck func(ctx context.Context) error
	Logger      *slog.Logger
	// Closers are released in reverse order on shutdown.
	Closers []io.Closer
}

type App struct {
	Deps           *Deps
	Config         *config.App
	OwnerService   *owner.Service
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	app.OwnerService = owner.New(deps.WrapperFactory, deps.EventBus, deps.Logger)
	app.AccountService = account.New(deps.WrapperFactory, deps.EventBus, deps.Logger)
	return app
}

func (a *App) setupEventBus() {
	if a.Deps.EventBus == nil {
		return
	}
	var recorder audit.Recorder
	if a.Deps.Metrics != nil {
		recorder = a.Deps.Metrics
	}
	audit.Register(a.Deps.EventBus, a.Deps.Logger, recorder)
}

// Close releases every closer in reverse order and returns the first error.
func (a *App) Close() error {
	var first error
	for i := len(a.Deps.Closers) - 1; i >= 0; i-- {
		if err := a.Deps.Closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
