package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	infra_eventbus "github.com/amirasaad/accountowner/infra/eventbus"
	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/google/uuid"
)

// RunSmokeTest emits one owner.created event on the configured bus
// (EVENT_BUS_DRIVER) and waits until a registered handler receives it.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	bus, closer, err := infra_eventbus.New(cfg.EventBus, logger)
	if err != nil {
		logger.Error("event bus init failed", "driver", cfg.EventBus.Driver, "error", err)
		return err
	}
	defer func() { _ = closer.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sent := events.NewOwnerEvent(events.ActionCreated, uuid.New(), "smoke-test")
	received := make(chan struct{})
	bus.Register(events.OwnerCreated, func(_ context.Context, evt events.Event) error {
		var got events.OwnerEvent
		switch e := evt.(type) {
		case *events.OwnerEvent:
			got = *e
		case events.OwnerEvent:
			got = e
		}
		if got.ID == sent.ID {
			logger.Info("consumed", "type", evt.Type(), "id", got.ID)
			close(received)
		}
		return nil
	})

	if err := bus.Emit(ctx, sent); err != nil {
		logger.Error("emit failed", "error", err)
		return err
	}
	logger.Info("produced", "type", sent.Type(), "id", sent.ID)

	select {
	case <-received:
		logger.Info("event bus smoke test passed", "driver", cfg.EventBus.Driver)
		return nil
	case <-ctx.Done():
		err := errors.New("event was not delivered before the deadline")
		logger.Error("consume failed", "error", err)
		return err
	}
}

// main runs the smoke test and exits non-zero on failure.
func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}
