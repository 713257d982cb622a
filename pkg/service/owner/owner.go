// Package owner provides the business rules for managing owners.
//
// Every operation works on a fresh repository wrapper, so staged changes never
// leak between calls. Lifecycle events are emitted once a change is
// committed; a failing bus never fails the operation.
package owner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/amirasaad/accountowner/pkg/domain/owner"
	"github.com/amirasaad/accountowner/pkg/eventbus"
	"github.com/amirasaad/accountowner/pkg/repository"
	"github.com/google/uuid"
)

// Service provides owner queries and commands.
type Service struct {
	newWrapper repository.WrapperFactory
	bus        eventbus.Bus
	logger     *slog.Logger
}

// New creates a Service. bus may be nil, in which case no events are sent.
func New(
	newWrapper repository.WrapperFactory,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		newWrapper: newWrapper,
		bus:        bus,
		logger:     logger.With("service", "owner"),
	}
}

// GetAllOwners lists every owner ordered by name.
func (s *Service) GetAllOwners(ctx context.Context) ([]*owner.Owner, error) {
	w, err := s.newWrapper()
	if err != nil {
		return nil, err
	}
	return w.Owner().GetAllOwners(ctx)
}

// GetOwnerByID returns domain.ErrNotFound when the owner does not exist.
func (s *Service) GetOwnerByID(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	w, err := s.newWrapper()
	if err != nil {
		return nil, err
	}
	return w.Owner().GetOwnerByID(ctx, id)
}

// GetOwnerWithDetails returns the owner with its accounts loaded.
func (s *Service) GetOwnerWithDetails(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	w, err := s.newWrapper()
	if err != nil {
		return nil, err
	}
	return w.Owner().GetOwnerWithDetails(ctx, id)
}

// CreateOwner validates and persists a new owner.
func (s *Service) CreateOwner(
	ctx context.Context,
	name string,
	dateOfBirth time.Time,
	address string,
) (o *owner.Owner, err error) {
	o, err = owner.New(name, dateOfBirth, address)
	if err != nil {
		return nil, err
	}

	w, err := s.newWrapper()
	if err != nil {
		return nil, err
	}
	w.Owner().CreateOwner(o)
	if err = w.Save(ctx); err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}

	s.logger.Info("Owner created", "owner_id", o.ID)
	s.emit(ctx, events.NewOwnerEvent(events.ActionCreated, o.ID, o.Name))
	return o, nil
}

// UpdateOwner replaces the writable fields of an existing owner.
func (s *Service) UpdateOwner(
	ctx context.Context,
	id uuid.UUID,
	name string,
	dateOfBirth time.Time,
	address string,
) error {
	w, err := s.newWrapper()
	if err != nil {
		return err
	}
	o, err := w.Owner().GetOwnerByID(ctx, id)
	if err != nil {
		return err
	}
	if err := o.Apply(name, dateOfBirth, address); err != nil {
		return err
	}

	w.Owner().UpdateOwner(o)
	if err := w.Save(ctx); err != nil {
		return fmt.Errorf("update owner %s: %w", id, err)
	}

	s.logger.Info("Owner updated", "owner_id", id)
	s.emit(ctx, events.NewOwnerEvent(events.ActionUpdated, o.ID, o.Name))
	return nil
}

// DeleteOwner removes an owner that has no accounts. It returns
// domain.ErrOwnerHasAccounts while accounts still reference the owner.
func (s *Service) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	w, err := s.newWrapper()
	if err != nil {
		return err
	}
	o, err := w.Owner().GetOwnerByID(ctx, id)
	if err != nil {
		return err
	}

	accounts, err := w.Account().AccountsByOwner(ctx, id)
	if err != nil {
		return err
	}
	if len(accounts) > 0 {
		return domain.ErrOwnerHasAccounts
	}

	w.Owner().DeleteOwner(o)
	if err := w.Save(ctx); err != nil {
		// an account created since the check trips the RESTRICT constraint
		if errors.Is(err, domain.ErrInvalidReference) {
			return domain.ErrOwnerHasAccounts
		}
		return fmt.Errorf("delete owner %s: %w", id, err)
	}

	s.logger.Info("Owner deleted", "owner_id", id)
	s.emit(ctx, events.NewOwnerEvent(events.ActionDeleted, o.ID, o.Name))
	return nil
}

func (s *Service) emit(ctx context.Context, evt events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Error("failed to emit event", "type", evt.Type(), "error", err)
	}
}
