// Package repository defines the persistence contracts used by the services.
//
// Writes are staged: Create, Update and Delete only record the change, and
// Save commits everything staged so far in a single transaction. A Wrapper
// scopes one change set, so callers create one per request through a
// WrapperFactory.
package repository

import (
	"context"

	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/domain/owner"
	"github.com/google/uuid"
)

// Repository provides the basic persistence operations for any entity type.
type Repository[T any] interface {
	// FindAll returns every entity; order is irrelevant.
	FindAll(ctx context.Context) ([]*T, error)
	// FindByCondition returns the entities matching a parameterized predicate,
	// e.g. FindByCondition(ctx, "owner_id = ?", id).
	FindByCondition(ctx context.Context, query any, args ...any) ([]*T, error)

	// Create stages an insertion.
	Create(entity *T)
	// Update stages a modification of every writable column.
	Update(entity *T)
	// Delete stages a removal.
	Delete(entity *T)

	// Save commits the staged changes in one transaction.
	Save(ctx context.Context) error
}

// OwnerRepository adds owner specific queries to Repository.
// Single-entity lookups return domain.ErrNotFound when the owner is absent.
type OwnerRepository interface {
	Repository[owner.Owner]

	GetAllOwners(ctx context.Context) ([]*owner.Owner, error)
	GetOwnerByID(ctx context.Context, id uuid.UUID) (*owner.Owner, error)
	GetOwnerWithDetails(ctx context.Context, id uuid.UUID) (*owner.Owner, error)
	CreateOwner(o *owner.Owner)
	UpdateOwner(o *owner.Owner)
	DeleteOwner(o *owner.Owner)
}

// AccountRepository adds account specific queries to Repository.
// Single-entity lookups return domain.ErrNotFound when the account is absent.
type AccountRepository interface {
	Repository[account.Account]

	AccountsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error)
	GetAllAccounts(ctx context.Context) ([]*account.Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	CreateAccount(a *account.Account)
	UpdateAccount(a *account.Account)
	DeleteAccount(a *account.Account)
}

// Wrapper exposes the entity repositories over one shared change set.
type Wrapper interface {
	Owner() OwnerRepository
	Account() AccountRepository
	// Save commits every change staged through Owner() and Account().
	Save(ctx context.Context) error
}

// WrapperFactory builds a fresh Wrapper, one per unit of work.
type WrapperFactory func() (Wrapper, error)
