package sqlite_test

import (
	"testing"

	"github.com/learnsearch/librarian/sqlite"
	"github.com/stretchr/testify/require"
)

// MustOpenDB opens an in-memory database for testing, closed on cleanup.
func MustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestDB_OpenClose(t *testing.T) {
	t.Parallel()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	require.NoError(t, db.Close())
}
