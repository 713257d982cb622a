// Package eventbus defines how lifecycle events are published and consumed.
package eventbus

import (
	"context"

	"github.com/amirasaad/accountowner/pkg/domain/events"
)

// HandlerFunc consumes one event. A returned error is logged by the bus and,
// for the durable transports, parks the message on a dead-letter queue.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus publishes events and dispatches them to registered handlers.
type Bus interface {
	Emit(ctx context.Context, event events.Event) error
	Register(eventType string, handler HandlerFunc)
}
