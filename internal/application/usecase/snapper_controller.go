package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/logging"
)

// ErrProfilesUnavailable is returned when a profile is selected but no profile store is configured.
var ErrProfilesUnavailable = errors.New("zoom profiles are not available")

// LevelSelection names where the permitted levels come from.
// A non-empty Profile takes precedence over Levels.
type LevelSelection struct {
	Levels  []float64
	Profile string
}

// SnapperController owns the snapper attached to one viewport and swaps it
// when the level selection changes.
type SnapperController struct {
	viewport port.Viewport
	profiles *ManageZoomProfilesUseCase

	mu      sync.Mutex
	snapper *ZoomSnapper
}

// NewSnapperController creates a controller. profiles may be nil when no store is configured.
func NewSnapperController(viewport port.Viewport, profiles *ManageZoomProfilesUseCase) *SnapperController {
	return &SnapperController{viewport: viewport, profiles: profiles}
}

// ResolveLevels returns the image-space levels a selection stands for.
func (c *SnapperController) ResolveLevels(ctx context.Context, sel LevelSelection) ([]float64, error) {
	if sel.Profile == "" {
		return sel.Levels, nil
	}
	if c.profiles == nil {
		return nil, fmt.Errorf("%w: cannot load %q", ErrProfilesUnavailable, sel.Profile)
	}
	levels, err := c.profiles.Resolve(logging.WithProfile(ctx, sel.Profile), sel.Profile)
	if err != nil {
		return nil, err
	}
	return levels.Values(), nil
}

// Apply builds a snapper for sel and attaches it in place of the current one.
// On error the current snapper stays attached.
func (c *SnapperController) Apply(ctx context.Context, sel LevelSelection) error {
	log := logging.FromContext(ctx)

	levels, err := c.ResolveLevels(ctx, sel)
	if err != nil {
		return err
	}
	next, err := NewZoomSnapper(ctx, ZoomSnapperConfig{Viewport: c.viewport, Levels: levels})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapper != nil {
		c.snapper.Detach(ctx)
	}
	if err := next.Attach(ctx); err != nil {
		return err
	}
	c.snapper = next

	log.Info().
		Str("profile", sel.Profile).
		Floats64("levels", next.Levels()).
		Msg("zoom levels applied")
	return nil
}

// Snapper returns the attached snapper, or nil before the first Apply.
func (c *SnapperController) Snapper() *ZoomSnapper {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapper
}

// Close detaches the current snapper.
func (c *SnapperController) Close(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapper != nil {
		c.snapper.Detach(ctx)
		c.snapper = nil
	}
}
