package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/zoomlevels/internal/domain/entity"
	repomocks "github.com/bnema/zoomlevels/internal/domain/repository/mocks"
)

func TestManageZoomProfiles_Save_NormalizesLevels(t *testing.T) {
	repo := repomocks.NewMockZoomProfileRepository(t)
	ctx := context.Background()

	repo.EXPECT().Get(mock.Anything, "slides").Return(nil, nil).Once()
	repo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.ZoomProfile")).
		RunAndReturn(func(_ context.Context, p *entity.ZoomProfile) error {
			assert.Equal(t, []float64{0.5, 1, 2}, p.Levels)
			return nil
		}).Once()

	uc := NewManageZoomProfilesUseCase(repo)
	profile, err := uc.Save(ctx, "slides", []float64{2, 0.5, 1, 2})

	require.NoError(t, err)
	assert.Equal(t, "slides", profile.Name)
}

func TestManageZoomProfiles_Save_KeepsCreatedAt(t *testing.T) {
	repo := repomocks.NewMockZoomProfileRepository(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	repo.EXPECT().Get(mock.Anything, "slides").
		Return(&entity.ZoomProfile{Name: "slides", Levels: []float64{1}, CreatedAt: created}, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.ZoomProfile")).Return(nil).Once()

	uc := NewManageZoomProfilesUseCase(repo)
	profile, err := uc.Save(context.Background(), "slides", []float64{1, 4})

	require.NoError(t, err)
	assert.True(t, profile.CreatedAt.Equal(created))
}

func TestManageZoomProfiles_Save_RejectsInvalidInput(t *testing.T) {
	repo := repomocks.NewMockZoomProfileRepository(t)
	uc := NewManageZoomProfilesUseCase(repo)

	_, err := uc.Save(context.Background(), "Bad Name", []float64{1})
	assert.ErrorIs(t, err, entity.ErrInvalidProfileName)

	_, err = uc.Save(context.Background(), "ok", []float64{0})
	assert.ErrorIs(t, err, entity.ErrInvalidZoomLevel)
}

func TestManageZoomProfiles_Save_WrapsRepositoryError(t *testing.T) {
	repo := repomocks.NewMockZoomProfileRepository(t)
	dbErr := errors.New("disk full")

	repo.EXPECT().Get(mock.Anything, "slides").Return(nil, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(dbErr).Once()

	uc := NewManageZoomProfilesUseCase(repo)
	_, err := uc.Save(context.Background(), "slides", []float64{1})

	require.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to save zoom profile")
}

func TestManageZoomProfiles_Resolve(t *testing.T) {
	repo := repomocks.NewMockZoomProfileRepository(t)

	repo.EXPECT().Get(mock.Anything, "maps").
		Return(&entity.ZoomProfile{Name: "maps", Levels: []float64{1, 2, 4}}, nil).Once()
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, nil).Once()

	uc := NewManageZoomProfilesUseCase(repo)

	levels, err := uc.Resolve(context.Background(), "maps")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, levels.Values())

	_, err = uc.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestManageZoomProfiles_Resolve_CorruptStoredLevels(t *testing.T) {
	repo := repomocks.NewMockZoomProfileRepository(t)
	repo.EXPECT().Get(mock.Anything, "broken").
		Return(&entity.ZoomProfile{Name: "broken", Levels: []float64{-1}}, nil).Once()

	uc := NewManageZoomProfilesUseCase(repo)
	_, err := uc.Resolve(context.Background(), "broken")

	assert.ErrorIs(t, err, entity.ErrInvalidZoomLevel)
}

func TestManageZoomProfiles_Delete(t *testing.T) {
	repo := repomocks.NewMockZoomProfileRepository(t)

	repo.EXPECT().Get(mock.Anything, "maps").
		Return(&entity.ZoomProfile{Name: "maps", Levels: []float64{1}}, nil).Once()
	repo.EXPECT().Delete(mock.Anything, "maps").Return(nil).Once()
	repo.EXPECT().Get(mock.Anything, "gone").Return(nil, nil).Once()

	uc := NewManageZoomProfilesUseCase(repo)

	require.NoError(t, uc.Delete(context.Background(), "maps"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "gone"), ErrProfileNotFound)
}

func TestManageZoomProfiles_List(t *testing.T) {
	repo := repomocks.NewMockZoomProfileRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]*entity.ZoomProfile{
		{Name: "a", Levels: []float64{1}},
		{Name: "b", Levels: []float64{2}},
	}, nil).Once()

	uc := NewManageZoomProfilesUseCase(repo)
	profiles, err := uc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}
