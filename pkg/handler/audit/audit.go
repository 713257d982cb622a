// Package audit subscribes to every lifecycle event, logging it and counting
// it in the metrics.
package audit

import (
	"context"
	"log/slog"

	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/amirasaad/accountowner/pkg/eventbus"
)

// Recorder counts observed events.
type Recorder interface {
	RecordEvent(eventType string)
}

// Handler returns the event handler. recorder may be nil.
func Handler(logger *slog.Logger, recorder Recorder) eventbus.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("handler", "audit")
	return func(_ context.Context, e events.Event) error {
		attrs := []any{"type", e.Type()}
		switch evt := e.(type) {
		case events.OwnerEvent:
			attrs = append(attrs, ownerAttrs(&evt)...)
		case *events.OwnerEvent:
			attrs = append(attrs, ownerAttrs(evt)...)
		case events.AccountEvent:
			attrs = append(attrs, accountAttrs(&evt)...)
		case *events.AccountEvent:
			attrs = append(attrs, accountAttrs(evt)...)
		}
		logger.Info("Lifecycle event", attrs...)

		if recorder != nil {
			recorder.RecordEvent(e.Type())
		}
		return nil
	}
}

// Register subscribes the audit handler to every event type.
func Register(bus eventbus.Bus, logger *slog.Logger, recorder Recorder) {
	h := Handler(logger, recorder)
	for _, t := range events.All() {
		bus.Register(t, h)
	}
}

func ownerAttrs(e *events.OwnerEvent) []any {
	return []any{"event_id", e.ID, "owner_id", e.OwnerID, "occurred_at", e.OccurredAt}
}

func accountAttrs(e *events.AccountEvent) []any {
	return []any{
		"event_id", e.ID,
		"account_id", e.AccountID,
		"owner_id", e.OwnerID,
		"account_type", e.AccountType,
		"occurred_at", e.OccurredAt,
	}
}
