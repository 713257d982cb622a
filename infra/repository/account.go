package repository

import (
	"context"

	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	*GenericRepository[account.Account]
}

// NewAccountRepository creates an account repository with its own change set.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{NewGenericRepository[account.Account](db)}
}

// AccountsByOwner returns every account whose owner_id equals ownerID.
func (r *accountRepository) AccountsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	return r.FindByCondition(ctx, "owner_id = ?", ownerID)
}

func (r *accountRepository) GetAllAccounts(ctx context.Context) ([]*account.Account, error) {
	var accounts []*account.Account
	err := r.query(ctx).
		Order("date_created ASC").
		Order("created_at ASC").
		Find(&accounts).Error
	return accounts, MapGormErrorToDomain(err)
}

func (r *accountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var a account.Account
	err := r.query(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return &a, nil
}

func (r *accountRepository) CreateAccount(a *account.Account) { r.Create(a) }

func (r *accountRepository) UpdateAccount(a *account.Account) { r.Update(a) }

func (r *accountRepository) DeleteAccount(a *account.Account) { r.Delete(a) }
