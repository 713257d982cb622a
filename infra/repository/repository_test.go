package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/domain/owner"
	"github.com/amirasaad/accountowner/pkg/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOwner(t *testing.T, name string) *owner.Owner {
	t.Helper()
	o, err := owner.New(name, testutils.Date(1985, time.March, 4), "Elm Street 5")
	require.NoError(t, err)
	return o
}

func TestOwnerRepository_CreateIsStagedUntilSave(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()
	w := NewRepositoryWrapper(db)

	alice := newOwner(t, "Alice")
	w.Owner().CreateOwner(alice)
	assert.Equal(t, 1, w.Pending())

	_, err := w.Owner().GetOwnerByID(ctx, alice.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, w.Save(ctx))
	assert.Equal(t, 0, w.Pending())

	got, err := w.Owner().GetOwnerByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "Elm Street 5", got.Address)
	assert.True(t, got.DateOfBirth.Equal(testutils.Date(1985, time.March, 4)))
}

func TestOwnerRepository_GetOwnerByID_NotFound(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := NewOwnerRepository(db)

	got, err := repo.GetOwnerByID(context.Background(), uuid.New())
	assert.Nil(t, got)
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err = repo.GetOwnerWithDetails(context.Background(), uuid.New())
	assert.Nil(t, got)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOwnerRepository_GetAllOwners_OrderedByNameWithStableTies(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewOwnerRepository(db)

	names := []string{"Zed", "Bob", "Alice", "Bob"}
	var ids []uuid.UUID
	for _, name := range names {
		o := newOwner(t, name)
		repo.CreateOwner(o)
		require.NoError(t, repo.Save(ctx))
		ids = append(ids, o.ID)
		time.Sleep(2 * time.Millisecond)
	}

	owners, err := repo.GetAllOwners(ctx)
	require.NoError(t, err)
	require.Len(t, owners, 4)

	var got []string
	for _, o := range owners {
		got = append(got, o.Name)
	}
	assert.Equal(t, []string{"Alice", "Bob", "Bob", "Zed"}, got)
	assert.Equal(t, ids[1], owners[1].ID, "first inserted Bob comes first")
	assert.Equal(t, ids[3], owners[2].ID)
}

func TestOwnerRepository_GetAllOwners_Empty(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	owners, err := NewOwnerRepository(db).GetAllOwners(context.Background())
	require.NoError(t, err)
	assert.Empty(t, owners)
}

func TestOwnerRepository_GetOwnerWithDetails(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()

	alice := testutils.SeedOwner(t, db, "Alice")
	bob := testutils.SeedOwner(t, db, "Bob")
	later := testutils.SeedAccount(t, db, alice.ID, account.TypeSavings, testutils.Date(2021, time.May, 1))
	earlier := testutils.SeedAccount(t, db, alice.ID, account.TypeDomestic, testutils.Date(2020, time.May, 1))
	testutils.SeedAccount(t, db, bob.ID, account.TypeForeign, testutils.Date(2019, time.May, 1))

	repo := NewOwnerRepository(db)
	got, err := repo.GetOwnerWithDetails(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got.Accounts, 2)
	assert.Equal(t, earlier.ID, got.Accounts[0].ID)
	assert.Equal(t, later.ID, got.Accounts[1].ID)

	plain, err := repo.GetOwnerByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, plain.Accounts)
}

func TestOwnerRepository_UpdateReplacesFields(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()
	seeded := testutils.SeedOwner(t, db, "Alice")

	w := NewRepositoryWrapper(db)
	stored, err := w.Owner().GetOwnerByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.NoError(t, stored.Apply("Alice B", testutils.Date(1991, time.July, 7), "Oak Road 2"))
	w.Owner().UpdateOwner(stored)
	require.NoError(t, w.Save(ctx))

	got, err := w.Owner().GetOwnerByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
	assert.Equal(t, "Oak Road 2", got.Address)
	assert.True(t, got.DateOfBirth.Equal(testutils.Date(1991, time.July, 7)))
	assert.WithinDuration(t, seeded.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestOwnerRepository_UpdateMissingRowIsNotFound(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	w := NewRepositoryWrapper(db)

	w.Owner().UpdateOwner(newOwner(t, "Ghost"))
	err := w.Save(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, w.Pending())
}

func TestOwnerRepository_Delete(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()
	alice := testutils.SeedOwner(t, db, "Alice")

	w := NewRepositoryWrapper(db)
	w.Owner().DeleteOwner(alice)
	require.NoError(t, w.Save(ctx))

	_, err := w.Owner().GetOwnerByID(ctx, alice.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepository_AccountsByOwner(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()
	alice := testutils.SeedOwner(t, db, "Alice")
	bob := testutils.SeedOwner(t, db, "Bob")
	testutils.SeedAccount(t, db, alice.ID, account.TypeDomestic, time.Time{})
	testutils.SeedAccount(t, db, alice.ID, account.TypeSavings, time.Time{})
	testutils.SeedAccount(t, db, bob.ID, account.TypeForeign, time.Time{})

	repo := NewAccountRepository(db)
	accounts, err := repo.AccountsByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	for _, a := range accounts {
		assert.Equal(t, alice.ID, a.OwnerID)
	}

	none, err := repo.AccountsByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAccountRepository_CRUD(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()
	alice := testutils.SeedOwner(t, db, "Alice")

	w := NewRepositoryWrapper(db)
	acc, err := account.New(alice.ID, account.TypeForeign, testutils.Date(2022, time.February, 3))
	require.NoError(t, err)
	w.Account().CreateAccount(acc)
	require.NoError(t, w.Save(ctx))

	got, err := w.Account().GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, account.TypeForeign, got.AccountType)

	require.NoError(t, got.Apply(alice.ID, account.TypeSavings, testutils.Date(2022, time.February, 4)))
	w.Account().UpdateAccount(got)
	require.NoError(t, w.Save(ctx))

	all, err := w.Account().GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, account.TypeSavings, all[0].AccountType)

	w.Account().DeleteAccount(got)
	require.NoError(t, w.Save(ctx))
	_, err = w.Account().GetAccountByID(ctx, acc.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepository_UnknownOwnerIsInvalidReference(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	w := NewRepositoryWrapper(db)

	acc, err := account.New(uuid.New(), account.TypeDomestic, time.Time{})
	require.NoError(t, err)
	w.Account().CreateAccount(acc)

	err = w.Save(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestRepositoryWrapper_SaveIsAtomic(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()
	w := NewRepositoryWrapper(db)

	alice := newOwner(t, "Alice")
	w.Owner().CreateOwner(alice)
	w.Owner().CreateOwner(alice) // duplicate primary key
	require.ErrorIs(t, w.Save(ctx), domain.ErrAlreadyExists)
	assert.Equal(t, 0, w.Pending(), "a failed save clears the stage")

	owners, err := w.Owner().GetAllOwners(ctx)
	require.NoError(t, err)
	assert.Empty(t, owners, "nothing from the failed transaction is visible")

	// later staged work is unaffected by the earlier failure
	acc, err := account.New(alice.ID, account.TypeSavings, time.Time{})
	require.NoError(t, err)
	w.Owner().CreateOwner(alice)
	w.Account().CreateAccount(acc)
	require.NoError(t, w.Save(ctx))

	details, err := w.Owner().GetOwnerWithDetails(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, details.Accounts, 1)
}

func TestRepositoryWrapper_SaveWithoutChanges(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	require.NoError(t, NewRepositoryWrapper(db).Save(context.Background()))
}

func TestRepositoryWrapper_CanceledContext(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	w := NewRepositoryWrapper(db)
	w.Owner().CreateOwner(newOwner(t, "Alice"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, w.Save(ctx))
	assert.Equal(t, 0, w.Pending())
}

func TestNewWrapperFactory(t *testing.T) {
	_, err := NewWrapperFactory(nil)()
	require.Error(t, err)

	db := testutils.NewSQLiteDB(t)
	factory := NewWrapperFactory(db)
	first, err := factory()
	require.NoError(t, err)
	second, err := factory()
	require.NoError(t, err)

	first.Owner().CreateOwner(newOwner(t, "Alice"))
	assert.Equal(t, 1, first.(*RepositoryWrapper).Pending())
	assert.Equal(t, 0, second.(*RepositoryWrapper).Pending(), "wrappers do not share staged changes")
}

func TestGenericRepository_FindByCondition(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	ctx := context.Background()
	testutils.SeedOwner(t, db, "Alice")
	testutils.SeedOwner(t, db, "Bob")

	repo := NewGenericRepository[owner.Owner](db)
	found, err := repo.FindByCondition(ctx, "name = ?", "Bob")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Bob", found[0].Name)

	found, err = repo.FindByCondition(ctx, map[string]any{"name": "Carol"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

