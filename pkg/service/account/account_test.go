package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/accountowner/infra/eventbus"
	infrarepo "github.com/amirasaad/accountowner/infra/repository"
	"github.com/amirasaad/accountowner/internal/fixtures/mocks"
	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/domain/events"
	accountsvc "github.com/amirasaad/accountowner/pkg/service/account"
	"github.com/amirasaad/accountowner/pkg/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*accountsvc.Service, *gorm.DB, *eventbus.MemoryEventBus) {
	t.Helper()
	db := testutils.NewSQLiteDB(t)
	bus := eventbus.NewWithMemory(nil, eventbus.WithRecording())
	return accountsvc.New(infrarepo.NewWrapperFactory(db), bus, nil), db, bus
}

func TestCreateAccount(t *testing.T) {
	svc, db, bus := newService(t)
	ctx := context.Background()
	o := testutils.SeedOwner(t, db, "Alice")

	a, err := svc.CreateAccount(ctx, o.ID, account.TypeSavings, testutils.Date(2024, time.January, 10))
	require.NoError(t, err)

	got, err := svc.GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.OwnerID)
	assert.Equal(t, account.TypeSavings, got.AccountType)
	assert.True(t, got.DateCreated.Equal(testutils.Date(2024, time.January, 10)))

	require.Len(t, bus.Published(), 1)
	assert.Equal(t, events.AccountCreated, bus.Published()[0].Type())
}

func TestCreateAccount_UnknownOwner(t *testing.T) {
	svc, _, bus := newService(t)

	a, err := svc.CreateAccount(context.Background(), uuid.New(), account.TypeDomestic, time.Time{})
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.Nil(t, a)
	assert.Empty(t, bus.Published())
}

func TestCreateAccount_InvalidType(t *testing.T) {
	svc, db, _ := newService(t)
	o := testutils.SeedOwner(t, db, "Alice")

	_, err := svc.CreateAccount(context.Background(), o.ID, account.Type("Checking"), time.Time{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestListAccounts(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	alice := testutils.SeedOwner(t, db, "Alice")
	bob := testutils.SeedOwner(t, db, "Bob")
	testutils.SeedAccount(t, db, alice.ID, account.TypeDomestic, testutils.Date(2023, time.March, 1))
	testutils.SeedAccount(t, db, bob.ID, account.TypeForeign, testutils.Date(2022, time.March, 1))

	all, err := svc.GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, bob.ID, all[0].OwnerID, "oldest account first")

	mine, err := svc.AccountsByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.ID, mine[0].OwnerID)

	none, err := svc.AccountsByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateAccount(t *testing.T) {
	svc, db, _ := newService(t)
	ctx := context.Background()
	alice := testutils.SeedOwner(t, db, "Alice")
	bob := testutils.SeedOwner(t, db, "Bob")
	a := testutils.SeedAccount(t, db, alice.ID, account.TypeDomestic, time.Time{})

	require.NoError(t, svc.UpdateAccount(ctx, a.ID, bob.ID, account.TypeForeign, testutils.Date(2020, time.April, 2)))
	got, err := svc.GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, got.OwnerID)
	assert.Equal(t, account.TypeForeign, got.AccountType)

	require.ErrorIs(t, svc.UpdateAccount(ctx, a.ID, uuid.New(), account.TypeForeign, time.Now()), domain.ErrInvalidReference)
	require.ErrorIs(t, svc.UpdateAccount(ctx, uuid.New(), bob.ID, account.TypeForeign, time.Now()), domain.ErrNotFound)
	require.ErrorIs(t, svc.UpdateAccount(ctx, a.ID, bob.ID, account.Type(""), time.Now()), domain.ErrValidation)
}

func TestDeleteAccount(t *testing.T) {
	svc, db, bus := newService(t)
	ctx := context.Background()
	alice := testutils.SeedOwner(t, db, "Alice")
	a := testutils.SeedAccount(t, db, alice.ID, account.TypeDomestic, time.Time{})

	require.NoError(t, svc.DeleteAccount(ctx, a.ID))
	_, err := svc.GetAccountByID(ctx, a.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, events.AccountDeleted, bus.Published()[0].Type())

	require.ErrorIs(t, svc.DeleteAccount(ctx, a.ID), domain.ErrNotFound)
}

func TestCreateAccount_OwnerLookupFailure(t *testing.T) {
	w := mocks.NewMockWrapper(t)
	ownerID := uuid.New()
	w.OwnerRepo.On("GetOwnerByID", mock.Anything, ownerID).Return(nil, assert.AnError)

	svc := accountsvc.New(w.Factory(), nil, nil)
	_, err := svc.CreateAccount(context.Background(), ownerID, account.TypeSavings, time.Time{})
	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, domain.ErrInvalidReference)
}
