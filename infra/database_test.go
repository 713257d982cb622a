package infra

import (
	"path/filepath"
	"testing"

	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteDSN(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc string
		dsn  string
		want string
	}{
		{desc: "plain path", dsn: "app.db", want: "app.db?_foreign_keys=1"},
		{desc: "existing query", dsn: "file:app.db?cache=shared", want: "file:app.db?cache=shared&_foreign_keys=1"},
		{desc: "already enabled", dsn: "app.db?_foreign_keys=1", want: "app.db?_foreign_keys=1"},
		{desc: "explicitly disabled", dsn: "app.db?_fk=0", want: "app.db?_fk=0"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, sqliteDSN(tc.dsn))
		})
	}
}

func TestNewDBConnection_SQLiteEnforcesForeignKeys(t *testing.T) {
	t.Parallel()
	db, err := NewDBConnection(&config.DB{
		Url:    filepath.Join(t.TempDir(), "accountowner.db"),
		Driver: "sqlite",
	}, "test")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	require.NoError(t, db.Exec("CREATE TABLE parents (id TEXT PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("CREATE TABLE children (id TEXT PRIMARY KEY, parent_id TEXT NOT NULL REFERENCES parents(id) ON DELETE RESTRICT)").Error)
	require.NoError(t, db.Exec("INSERT INTO parents (id) VALUES ('p')").Error)
	require.NoError(t, db.Exec("INSERT INTO children (id, parent_id) VALUES ('c', 'p')").Error)

	assert.Error(t, db.Exec("DELETE FROM parents WHERE id = 'p'").Error)
	assert.Error(t, db.Exec("INSERT INTO children (id, parent_id) VALUES ('orphan', 'missing')").Error)
}

func TestNewDBConnection_Errors(t *testing.T) {
	t.Parallel()
	_, err := NewDBConnection(nil, "test")
	assert.Error(t, err)
	_, err = NewDBConnection(&config.DB{Url: "x", Driver: "oracle"}, "test")
	assert.Error(t, err)
}
