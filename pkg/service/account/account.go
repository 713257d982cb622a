// Package account provides the business rules for managing accounts. An
// account can only be attached to an existing owner.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/amirasaad/accountowner/pkg/eventbus"
	"github.com/amirasaad/accountowner/pkg/repository"
	"github.com/google/uuid"
)

// Service provides account queries and commands.
type Service struct {
	newWrapper repository.WrapperFactory
	bus        eventbus.Bus
	logger     *slog.Logger
}

// New creates a Service. bus may be nil.
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
		logger:     logger.With("service", "account"),
	}
}

// GetAllAccounts lists every account ordered by creation date.
func (s *Service) GetAllAccounts(ctx context.Context) ([]*account.Account, error) {
	w, err := s.newWrapper()
	if err != nil {
		return nil, err
	}
	return w.Account().GetAllAccounts(ctx)
}

// AccountsByOwner lists the accounts of ownerID; unknown owners have none.
func (s *Service) AccountsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	w, err := s.newWrapper()
	if err != nil {
		return nil, err
	}
	return w.Account().AccountsByOwner(ctx, ownerID)
}

// GetAccountByID returns domain.ErrNotFound when the account does not exist.
func (s *Service) GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	w, err := s.newWrapper()
	if err != nil {
		return nil, err
	}
	return w.Account().GetAccountByID(ctx, id)
}

// CreateAccount opens an account for an existing owner. A zero dateCreated
// means today.
func (s *Service) CreateAccount(
	ctx context.Context,
	ownerID uuid.UUID,
	accountType account.Type,
	dateCreated time.Time,
) (*account.Account, error) {
	a, err := account.New(ownerID, accountType, dateCreated)
	if err != nil {
		return nil, err
	}

	w, err := s.newWrapper()
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(ctx, w, ownerID); err != nil {
		return nil, err
	}

	w.Account().CreateAccount(a)
	if err := w.Save(ctx); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("Account created", "account_id", a.ID, "owner_id", ownerID)
	s.emit(ctx, events.NewAccountEvent(events.ActionCreated, a.ID, a.OwnerID, string(a.AccountType)))
	return a, nil
}

// UpdateAccount replaces the writable fields of an existing account. The new
// owner must exist.
func (s *Service) UpdateAccount(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
	accountType account.Type,
	dateCreated time.Time,
) error {
	w, err := s.newWrapper()
	if err != nil {
		return err
	}
	a, err := w.Account().GetAccountByID(ctx, id)
	if err != nil {
		return err
	}
	if err := a.Apply(ownerID, accountType, dateCreated); err != nil {
		return err
	}
	if err := ensureOwner(ctx, w, ownerID); err != nil {
		return err
	}

	w.Account().UpdateAccount(a)
	if err := w.Save(ctx); err != nil {
		return fmt.Errorf("update account %s: %w", id, err)
	}

	s.logger.Info("Account updated", "account_id", id)
	s.emit(ctx, events.NewAccountEvent(events.ActionUpdated, a.ID, a.OwnerID, string(a.AccountType)))
	return nil
}

// DeleteAccount removes an account.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	w, err := s.newWrapper()
	if err != nil {
		return err
	}
	a, err := w.Account().GetAccountByID(ctx, id)
	if err != nil {
		return err
	}

	w.Account().DeleteAccount(a)
	if err := w.Save(ctx); err != nil {
		return fmt.Errorf("delete account %s: %w", id, err)
	}

	s.logger.Info("Account deleted", "account_id", id)
	s.emit(ctx, events.NewAccountEvent(events.ActionDeleted, a.ID, a.OwnerID, string(a.AccountType)))
	return nil
}

func ensureOwner(ctx context.Context, w repository.Wrapper, ownerID uuid.UUID) error {
	_, err := w.Owner().GetOwnerByID(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("owner %s does not exist: %w", ownerID, domain.ErrInvalidReference)
	}
	return err
}

func (s *Service) emit(ctx context.Context, evt events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Error("failed to emit event", "type", evt.Type(), "error", err)
	}
}
