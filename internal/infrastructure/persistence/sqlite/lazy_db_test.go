package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/zoomlevels/internal/infrastructure/persistence/sqlite"
)

func newLazy(t *testing.T) *sqlite.LazyDB {
	t.Helper()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "nested", "zoomlevels.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	return lazy
}

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	lazy := newLazy(t)
	assert.False(t, lazy.IsInitialized())
	assert.NoFileExists(t, lazy.Path())

	db, err := lazy.DB(testCtx())
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())
	assert.FileExists(t, lazy.Path())

	again, err := lazy.DB(testCtx())
	require.NoError(t, err)
	assert.Same(t, db, again)
}

func TestLazyDB_MigratesSchema(t *testing.T) {
	ctx := testCtx()
	db, err := newLazy(t).DB(ctx)
	require.NoError(t, err)

	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'zoom_profiles'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "zoom_profiles", name)
}

func TestLazyDB_ConcurrentFirstAccess(t *testing.T) {
	lazy := newLazy(t)
	ctx := testCtx()

	const callers = 8
	dbs := make([]*sql.DB, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseWithoutOpen(t *testing.T) {
	assert.NoError(t, sqlite.NewLazyDB("/nonexistent/zoomlevels.db").Close())
}

func TestLazyDB_RemembersFailure(t *testing.T) {
	// A regular file where the parent directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "zoomlevels.db"))

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database initialization failed")

	_, again := lazy.DB(testCtx())
	assert.Equal(t, err.Error(), again.Error())
	assert.False(t, lazy.IsInitialized())
}
