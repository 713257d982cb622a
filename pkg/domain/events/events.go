// Package events defines the lifecycle events emitted after owners and
// accounts are persisted.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is anything that can travel on the event bus.
type Event interface {
	Type() string
}

// Action is the lifecycle step an event reports.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event types
const (
	OwnerCreated   = "owner.created"
	OwnerUpdated   = "owner.updated"
	OwnerDeleted   = "owner.deleted"
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"
)

// OwnerEvent is emitted once an owner change has been committed.
type OwnerEvent struct {
	ID         uuid.UUID `json:"id"`
	Action     Action    `json:"action"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e OwnerEvent) Type() string { return "owner." + string(e.Action) }

// AccountEvent is emitted once an account change has been committed.
type AccountEvent struct {
	ID          uuid.UUID `json:"id"`
	Action      Action    `json:"action"`
	AccountID   uuid.UUID `json:"account_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	AccountType string    `json:"account_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e AccountEvent) Type() string { return "account." + string(e.Action) }

// NewOwnerEvent stamps an owner event with a fresh id and the current time.
func NewOwnerEvent(action Action, ownerID uuid.UUID, name string) OwnerEvent {
	return OwnerEvent{
		ID:         uuid.New(),
		Action:     action,
		OwnerID:    ownerID,
		Name:       name,
		OccurredAt: time.Now().UTC(),
	}
}

// NewAccountEvent stamps an account event with a fresh id and the current time.
func NewAccountEvent(action Action, accountID, ownerID uuid.UUID, accountType string) AccountEvent {
	return AccountEvent{
		ID:          uuid.New(),
		Action:      action,
		AccountID:   accountID,
		OwnerID:     ownerID,
		AccountType: accountType,
		OccurredAt:  time.Now().UTC(),
	}
}

// All lists every event type, in a stable order.
func All() []string {
	return []string{
		OwnerCreated, OwnerUpdated, OwnerDeleted,
		AccountCreated, AccountUpdated, AccountDeleted,
	}
}

// Factories maps an event type to a constructor of an empty value, used by
// the transports that decode events from the wire.
func Factories() map[string]func() Event {
	ownerEvent := func() Event { return &OwnerEvent{} }
	accountEvent := func() Event { return &AccountEvent{} }
	return map[string]func() Event{
		OwnerCreated:   ownerEvent,
		OwnerUpdated:   ownerEvent,
		OwnerDeleted:   ownerEvent,
		AccountCreated: accountEvent,
		AccountUpdated: accountEvent,
		AccountDeleted: accountEvent,
	}
}
