package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/testutils"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	color.NoColor = true
}

func TestRun_Usage(t *testing.T) {
	opened := false
	open := func() (*gorm.DB, error) { opened = true; return nil, nil }

	for _, args := range [][]string{nil, {"explode"}, {"accounts"}} {
		err := run(args, &bytes.Buffer{}, open)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
	assert.False(t, opened)
}

func TestRun_Owners(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	testutils.SeedOwner(t, db, "Zoe")
	testutils.SeedOwner(t, db, "Adam")

	var out bytes.Buffer
	require.NoError(t, run([]string{"owners"}, &out, func() (*gorm.DB, error) { return db, nil }))

	text := out.String()
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Adam")), bytes.Index(out.Bytes(), []byte("Zoe")))
	assert.Contains(t, text, "2 owner(s)")
}

func TestRun_Accounts(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	o := testutils.SeedOwner(t, db, "Ann")
	a := testutils.SeedAccount(t, db, o.ID, account.TypeForeign, testutils.Date(2020, time.March, 4))

	var out bytes.Buffer
	open := func() (*gorm.DB, error) { return db, nil }
	require.NoError(t, run([]string{"accounts", o.ID.String()}, &out, open))
	assert.Contains(t, out.String(), "Accounts of Ann")
	assert.Contains(t, out.String(), a.ID.String())
	assert.Contains(t, out.String(), "2020-03-04")
	assert.Contains(t, out.String(), "1 account(s)")

	err := run([]string{"accounts", uuid.NewString()}, &out, func() (*gorm.DB, error) { return testutils.NewSQLiteDB(t), nil })
	assert.ErrorContains(t, err, "not found")

	err = run([]string{"accounts", "nope"}, &out, func() (*gorm.DB, error) { return testutils.NewSQLiteDB(t), nil })
	assert.ErrorContains(t, err, "invalid owner id")
}

func TestRun_Migrate(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	var out bytes.Buffer
	require.NoError(t, run([]string{"migrate"}, &out, func() (*gorm.DB, error) { return db, nil }))
	assert.Contains(t, out.String(), "Migrations applied")
}
