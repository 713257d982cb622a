package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/domain/owner"
	"github.com/amirasaad/accountowner/pkg/repository"
	"gorm.io/gorm"
)

// RepositoryWrapper groups the owner and account repositories over one
// change set, so a single Save commits both.
type RepositoryWrapper struct {
	db      *gorm.DB
	changes *changeSet
	owner   *ownerRepository
	account *accountRepository
}

// NewRepositoryWrapper creates a wrapper with an empty change set.
func NewRepositoryWrapper(db *gorm.DB) *RepositoryWrapper {
	changes := &changeSet{}
	return &RepositoryWrapper{
		db:      db,
		changes: changes,
		owner:   &ownerRepository{newGenericRepository[owner.Owner](db, changes)},
		account: &accountRepository{newGenericRepository[account.Account](db, changes)},
	}
}

// NewWrapperFactory returns a factory producing one wrapper per call.
func NewWrapperFactory(db *gorm.DB) repository.WrapperFactory {
	return func() (repository.Wrapper, error) {
		if db == nil {
			return nil, errors.New("repository wrapper: database connection is not initialized")
		}
		return NewRepositoryWrapper(db), nil
	}
}

func (w *RepositoryWrapper) Owner() repository.OwnerRepository { return w.owner }

func (w *RepositoryWrapper) Account() repository.AccountRepository { return w.account }

// Save commits every staged change in one transaction.
func (w *RepositoryWrapper) Save(ctx context.Context) error {
	return w.changes.commit(ctx, w.db)
}

// Pending reports how many staged changes are waiting for Save.
func (w *RepositoryWrapper) Pending() int {
	return w.changes.pending()
}

var _ repository.Wrapper = (*RepositoryWrapper)(nil)
