// Package testutils holds helpers shared by the package tests: throwaway
// databases, a sqlmock-backed GORM connection and fixture builders.
package testutils

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/domain/owner"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory SQLite database with the schema
// migrated and foreign keys enforced. It is closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&owner.Owner{}, &account.Account{}))
	return db
}

// NewMockDB returns a GORM connection speaking the postgres dialect to a
// sqlmock. Unmet expectations fail the test on cleanup.
func NewMockDB(t testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = mockDb.Close()
	})
	return db, mock
}

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedOwner inserts an owner directly, bypassing the staged repositories.
func SeedOwner(t testing.TB, db *gorm.DB, name string) *owner.Owner {
	t.Helper()
	o, err := owner.New(name, Date(1990, time.January, 2), "Main Street 1")
	require.NoError(t, err)
	require.NoError(t, db.Omit("Accounts").Create(o).Error)
	return o
}

// SeedAccount inserts an account for ownerID directly.
func SeedAccount(t testing.TB, db *gorm.DB, ownerID uuid.UUID, accountType account.Type, created time.Time) *account.Account {
	t.Helper()
	a, err := account.New(ownerID, accountType, created)
	require.NoError(t, err)
	require.NoError(t, db.Create(a).Error)
	return a
}

// NewRequest builds a request with a JSON body when body is not empty.
func NewRequest(method, path, body string) *http.Request {
	var reqBody io.Reader
	if body != "" {
		reqBody = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

// MakeRequest runs a request against app without a network listener.
func MakeRequest(app *fiber.App, method, path, body string) *http.Response {
	resp, err := app.Test(NewRequest(method, path, body), -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// ReadBody drains and closes resp.Body.
func ReadBody(t testing.TB, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return b
}
