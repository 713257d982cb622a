package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/accountowner/infra/initializer"
	"github.com/amirasaad/accountowner/pkg/app"
	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/amirasaad/accountowner/webapi"
	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// @title Account Owner API
// @version 1.0.0
// @description CRUD API over owners and their accounts
// @contact.name API Support
// @license.name MIT
// @host localhost:5000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	fiberApp, a, err := newServer(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			slog.Error("Failed to release resources", "error", cerr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return serve(ctx, fiberApp, addr, cfg.Server.ShutdownTimeout)
}

// newServer wires the dependencies and routes without listening.
func newServer(cfg *config.App) (*fiber.App, *app.App, error) {
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a := app.New(deps, cfg)
	return webapi.SetupApp(a), a, nil
}

// serve listens on addr until ctx is cancelled, then drains in-flight
// requests for at most timeout.
func serve(ctx context.Context, fiberApp *fiber.App, addr string, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", timeout)
	if err := fiberApp.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
