package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/domain/repository"
	"github.com/bnema/zoomlevels/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/zoomlevels/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestRepo(t *testing.T) (context.Context, repository.ZoomProfileRepository) {
	t.Helper()
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "zoomlevels.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return ctx, sqlite.NewZoomProfileRepository(db)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}

func TestNewConnection_MigratesSchema(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "nested", "zoomlevels.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var version int64
	require.NoError(t, db.QueryRowContext(ctx, "SELECT MAX(version_id) FROM goose_db_version").Scan(&version))
	assert.Equal(t, int64(1), version)

	// Running again is a no-op.
	require.NoError(t, sqlite.RunMigrations(ctx, db))
}

func TestZoomProfileRepository_SaveAndGet(t *testing.T) {
	ctx, repo := newTestRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &entity.ZoomProfile{
		Name:      "slides",
		Levels:    []float64{0.25, 0.5, 1},
		CreatedAt: created,
		UpdatedAt: created,
	}))

	got, err := repo.Get(ctx, "slides")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "slides", got.Name)
	assert.Equal(t, []float64{0.25, 0.5, 1}, got.Levels)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.True(t, created.Equal(got.UpdatedAt))
}

func TestZoomProfileRepository_GetMissing(t *testing.T) {
	ctx, repo := newTestRepo(t)

	got, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestZoomProfileRepository_SaveReplacesLevelsKeepsCreatedAt(t *testing.T) {
	ctx, repo := newTestRepo(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	require.NoError(t, repo.Save(ctx, &entity.ZoomProfile{Name: "maps", Levels: []float64{1}, CreatedAt: created, UpdatedAt: created}))
	require.NoError(t, repo.Save(ctx, &entity.ZoomProfile{Name: "maps", Levels: []float64{1, 2}, CreatedAt: updated, UpdatedAt: updated}))

	got, err := repo.Get(ctx, "maps")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []float64{1, 2}, got.Levels)
	assert.True(t, created.Equal(got.CreatedAt), "created_at survives an upsert")
	assert.True(t, updated.Equal(got.UpdatedAt))
}

func TestZoomProfileRepository_EmptyLevels(t *testing.T) {
	ctx, repo := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, &entity.ZoomProfile{Name: "off"}))

	got, err := repo.Get(ctx, "off")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Levels)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestZoomProfileRepository_ListAndDelete(t *testing.T) {
	ctx, repo := newTestRepo(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, repo.Save(ctx, &entity.ZoomProfile{Name: name, Levels: []float64{1}}))
	}

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "alpha", profiles[0].Name)
	assert.Equal(t, "mid", profiles[1].Name)
	assert.Equal(t, "zeta", profiles[2].Name)

	require.NoError(t, repo.Delete(ctx, "mid"))
	require.NoError(t, repo.Delete(ctx, "mid"), "deleting a missing profile is not an error")

	profiles, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestZoomProfileRepository_ListEmpty(t *testing.T) {
	ctx, repo := newTestRepo(t)

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestLazyZoomProfileRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "zoomlevels.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewLazyZoomProfileRepository(lazy)

	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Save(ctx, &entity.ZoomProfile{Name: "slides", Levels: []float64{1, 2}}))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.Get(ctx, "slides")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []float64{1, 2}, got.Levels)
}
