// Package mocks provides testify mocks of the repository and event bus
// contracts.
package mocks

import (
	"context"

	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/domain/events"
	"github.com/amirasaad/accountowner/pkg/domain/owner"
	"github.com/amirasaad/accountowner/pkg/eventbus"
	"github.com/amirasaad/accountowner/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockWrapper mocks repository.Wrapper.
type MockWrapper struct {
	mock.Mock
	OwnerRepo   *MockOwnerRepository
	AccountRepo *MockAccountRepository
}

// NewMockWrapper returns a wrapper whose Owner and Account methods return the
// embedded repository mocks. Expectations are asserted on cleanup.
func NewMockWrapper(t testingT) *MockWrapper {
	w := &MockWrapper{
		OwnerRepo:   &MockOwnerRepository{},
		AccountRepo: &MockAccountRepository{},
	}
	w.Test(t)
	w.OwnerRepo.Test(t)
	w.AccountRepo.Test(t)
	t.Cleanup(func() {
		w.AssertExpectations(t)
		w.OwnerRepo.AssertExpectations(t)
		w.AccountRepo.AssertExpectations(t)
	})
	return w
}

// Factory returns a WrapperFactory handing out w.
func (w *MockWrapper) Factory() repository.WrapperFactory {
	return func() (repository.Wrapper, error) { return w, nil }
}

func (w *MockWrapper) Owner() repository.OwnerRepository { return w.OwnerRepo }

func (w *MockWrapper) Account() repository.AccountRepository { return w.AccountRepo }

func (w *MockWrapper) Save(ctx context.Context) error {
	return w.Called(ctx).Error(0)
}

// MockOwnerRepository mocks repository.OwnerRepository.
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) FindAll(ctx context.Context) ([]*owner.Owner, error) {
	args := m.Called(ctx)
	return ownersArg(args, 0), args.Error(1)
}

func (m *MockOwnerRepository) FindByCondition(ctx context.Context, query any, params ...any) ([]*owner.Owner, error) {
	args := m.Called(ctx, query, params)
	return ownersArg(args, 0), args.Error(1)
}

func (m *MockOwnerRepository) Create(o *owner.Owner) { m.Called(o) }

func (m *MockOwnerRepository) Update(o *owner.Owner) { m.Called(o) }

func (m *MockOwnerRepository) Delete(o *owner.Owner) { m.Called(o) }

func (m *MockOwnerRepository) Save(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOwnerRepository) GetAllOwners(ctx context.Context) ([]*owner.Owner, error) {
	args := m.Called(ctx)
	return ownersArg(args, 0), args.Error(1)
}

func (m *MockOwnerRepository) GetOwnerByID(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*owner.Owner)
	return o, args.Error(1)
}

func (m *MockOwnerRepository) GetOwnerWithDetails(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*owner.Owner)
	return o, args.Error(1)
}

func (m *MockOwnerRepository) CreateOwner(o *owner.Owner) { m.Called(o) }

func (m *MockOwnerRepository) UpdateOwner(o *owner.Owner) { m.Called(o) }

func (m *MockOwnerRepository) DeleteOwner(o *owner.Owner) { m.Called(o) }

func ownersArg(args mock.Arguments, i int) []*owner.Owner {
	owners, _ := args.Get(i).([]*owner.Owner)
	return owners
}

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAll(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	return accountsArg(args, 0), args.Error(1)
}

func (m *MockAccountRepository) FindByCondition(ctx context.Context, query any, params ...any) ([]*account.Account, error) {
	args := m.Called(ctx, query, params)
	return accountsArg(args, 0), args.Error(1)
}

func (m *MockAccountRepository) Create(a *account.Account) { m.Called(a) }

func (m *MockAccountRepository) Update(a *account.Account) { m.Called(a) }

func (m *MockAccountRepository) Delete(a *account.Account) { m.Called(a) }

func (m *MockAccountRepository) Save(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAccountRepository) AccountsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	args := m.Called(ctx, ownerID)
	return accountsArg(args, 0), args.Error(1)
}

func (m *MockAccountRepository) GetAllAccounts(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	return accountsArg(args, 0), args.Error(1)
}

func (m *MockAccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(a *account.Account) { m.Called(a) }

func (m *MockAccountRepository) UpdateAccount(a *account.Account) { m.Called(a) }

func (m *MockAccountRepository) DeleteAccount(a *account.Account) { m.Called(a) }

func accountsArg(args mock.Arguments, i int) []*account.Account {
	accounts, _ := args.Get(i).([]*account.Account)
	return accounts
}

// MockBus mocks eventbus.Bus.
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Emit(ctx context.Context, event events.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockBus) Register(eventType string, handler eventbus.HandlerFunc) {
	m.Called(eventType, handler)
}

var (
	_ repository.Wrapper           = (*MockWrapper)(nil)
	_ repository.OwnerRepository   = (*MockOwnerRepository)(nil)
	_ repository.AccountRepository = (*MockAccountRepository)(nil)
	_ eventbus.Bus                 = (*MockBus)(nil)
)
