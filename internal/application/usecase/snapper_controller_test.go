package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/domain/entity"
	repomocks "github.com/bnema/zoomlevels/internal/domain/repository/mocks"
)

func TestSnapperController_ApplyAttaches(t *testing.T) {
	vp := newStubViewport()
	ctx := context.Background()
	c := NewSnapperController(vp, nil)

	require.NoError(t, c.Apply(ctx, LevelSelection{Levels: []float64{4, 1, 2}}))

	require.NotNil(t, c.Snapper())
	assert.True(t, c.Snapper().Attached())
	assert.Equal(t, []float64{1, 2, 4}, c.Snapper().Levels())
	assert.Equal(t, 1, vp.handlers)
}

func TestSnapperController_ApplySwapsSnapper(t *testing.T) {
	vp := newStubViewport()
	ctx := context.Background()
	c := NewSnapperController(vp, nil)

	require.NoError(t, c.Apply(ctx, LevelSelection{Levels: []float64{1, 2}}))
	first := c.Snapper()
	require.NoError(t, c.Apply(ctx, LevelSelection{Levels: []float64{1, 2, 4, 8}}))

	assert.False(t, first.Attached())
	assert.True(t, c.Snapper().Attached())
	assert.Equal(t, []float64{1, 2, 4, 8}, c.Snapper().Levels())
	assert.Equal(t, 1, vp.handlers)
}

func TestSnapperController_FailedApplyKeepsCurrent(t *testing.T) {
	vp := newStubViewport()
	ctx := context.Background()
	c := NewSnapperController(vp, nil)

	require.NoError(t, c.Apply(ctx, LevelSelection{Levels: []float64{1, 2}}))
	current := c.Snapper()

	err := c.Apply(ctx, LevelSelection{Levels: []float64{-1}})
	require.ErrorIs(t, err, entity.ErrInvalidZoomLevel)
	assert.Same(t, current, c.Snapper())
	assert.True(t, current.Attached())
}

func TestSnapperController_ProfileSelection(t *testing.T) {
	vp := newStubViewport()
	ctx := context.Background()
	repo := repomocks.NewMockZoomProfileRepository(t)
	repo.EXPECT().Get(mock.Anything, "slides").
		Return(&entity.ZoomProfile{Name: "slides", Levels: []float64{0.5, 1}}, nil).Once()

	c := NewSnapperController(vp, NewManageZoomProfilesUseCase(repo))
	require.NoError(t, c.Apply(ctx, LevelSelection{Levels: []float64{8}, Profile: "slides"}))

	assert.Equal(t, []float64{0.5, 1}, c.Snapper().Levels())
}

func TestSnapperController_MissingProfile(t *testing.T) {
	vp := newStubViewport()
	ctx := context.Background()
	repo := repomocks.NewMockZoomProfileRepository(t)
	repo.EXPECT().Get(mock.Anything, "gone").Return(nil, nil).Once()

	c := NewSnapperController(vp, NewManageZoomProfilesUseCase(repo))
	err := c.Apply(ctx, LevelSelection{Profile: "gone"})

	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, c.Snapper())
}

func TestSnapperController_ProfileWithoutStore(t *testing.T) {
	c := NewSnapperController(newStubViewport(), nil)

	_, err := c.ResolveLevels(context.Background(), LevelSelection{Profile: "slides"})
	assert.ErrorIs(t, err, ErrProfilesUnavailable)
}

func TestSnapperController_IncompatibleHost(t *testing.T) {
	vp := newStubViewport()
	vp.version = port.HostVersion{Major: 1}
	c := NewSnapperController(vp, nil)

	err := c.Apply(context.Background(), LevelSelection{Levels: []float64{1}})
	assert.ErrorIs(t, err, ErrIncompatibleHost)
}

func TestSnapperController_Close(t *testing.T) {
	vp := newStubViewport()
	ctx := context.Background()
	c := NewSnapperController(vp, nil)
	require.NoError(t, c.Apply(ctx, LevelSelection{Levels: []float64{1}}))

	c.Close(ctx)
	c.Close(ctx)

	assert.Nil(t, c.Snapper())
	assert.Equal(t, 0, vp.handlers)
}
