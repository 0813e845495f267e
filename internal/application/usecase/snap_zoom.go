// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/logging"
)

// MinHostMajorVersion is the oldest host viewer major version exposing the
// capability surface the snapper relies on.
const MinHostMajorVersion = 2

var (
	// ErrViewportRequired is returned when no viewport is supplied.
	ErrViewportRequired = errors.New("viewport is required")
	// ErrIncompatibleHost is returned when the host viewer is too old.
	ErrIncompatibleHost = errors.New("incompatible host viewer")
	// ErrAlreadyAttached is returned when Attach is called twice.
	ErrAlreadyAttached = errors.New("zoom snapper already attached")
)

// ZoomSnapperConfig configures a ZoomSnapper.
type ZoomSnapperConfig struct {
	Viewport port.Viewport
	// Levels are image-space zoom factors. Empty disables snapping.
	Levels []float64
}

// ZoomSnapper restricts a viewport's zoom to a discrete set of permitted levels.
// It corrects each zoom change to the nearest permitted level in the direction of travel.
type ZoomSnapper struct {
	viewport port.Viewport
	levels   entity.PermittedLevels

	mu           sync.Mutex
	lastZoom     float64
	hasLastZoom  bool
	registration port.Registration
}

// NewZoomSnapper validates the host and the levels and returns a detached snapper.
// Call Attach to start listening for zoom changes.
func NewZoomSnapper(ctx context.Context, cfg ZoomSnapperConfig) (*ZoomSnapper, error) {
	log := logging.FromContext(ctx)

	if cfg.Viewport == nil {
		return nil, ErrViewportRequired
	}

	version := cfg.Viewport.HostVersion()
	if version.Major < MinHostMajorVersion {
		return nil, fmt.Errorf("%w: requires version %d.0.0+, got %s", ErrIncompatibleHost, MinHostMajorVersion, version)
	}

	levels, err := entity.NewPermittedLevels(cfg.Levels)
	if err != nil {
		return nil, fmt.Errorf("failed to build zoom levels: %w", err)
	}

	log.Debug().
		Floats64("levels", levels.Values()).
		Str("host_version", version.String()).
		Msg("zoom snapper created")

	return &ZoomSnapper{
		viewport: cfg.Viewport,
		levels:   levels,
	}, nil
}

// Levels returns a copy of the normalized image-space levels.
func (s *ZoomSnapper) Levels() []float64 {
	return s.levels.Values()
}

// Enabled reports whether any permitted level is configured.
func (s *ZoomSnapper) Enabled() bool {
	return !s.levels.IsEmpty()
}

// IsPermitted reports whether a viewport zoom sits exactly on a permitted level.
func (s *ZoomSnapper) IsPermitted(zoom float64) bool {
	return s.levels.Contains(s.viewport.ViewportToImageZoom(zoom))
}

// ResolveUpperLevel snaps a zoom-in candidate to the lowest permitted level above it,
// or to the largest level when none is above. The result never exceeds the max zoom.
func (s *ZoomSnapper) ResolveUpperLevel(candidate float64) float64 {
	if s.levels.IsEmpty() {
		return candidate
	}

	imageZoom := s.viewport.ViewportToImageZoom(candidate)
	level, _ := s.levels.Above(imageZoom)
	return math.Min(s.viewport.ImageToViewportZoom(level), s.viewport.MaxZoom())
}

// ResolveLowerLevel snaps a zoom-out candidate to the highest permitted level below it,
// or to the smallest level when none is below. The result is never under the min zoom.
func (s *ZoomSnapper) ResolveLowerLevel(candidate float64) float64 {
	if s.levels.IsEmpty() {
		return candidate
	}

	imageZoom := s.viewport.ViewportToImageZoom(candidate)
	level, _ := s.levels.Below(imageZoom)
	return math.Max(s.viewport.ImageToViewportZoom(level), s.viewport.MinZoom())
}

// HandleZoom decides whether a pending zoom change must be redirected.
// It does not command the viewport; Attach wires the override back into it.
func (s *ZoomSnapper) HandleZoom(ctx context.Context, event entity.ZoomEvent) entity.ZoomOverride {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isDuplicate(event.Zoom) {
		return entity.ZoomOverride{}
	}
	s.lastZoom = event.Zoom
	s.hasLastZoom = true

	corrected := event.Zoom
	direction := entity.ZoomDirectionNone
	if event.Zoom != s.viewport.HomeZoom() {
		current := s.viewport.CurrentZoom()
		switch {
		case event.Zoom < current:
			direction = entity.ZoomDirectionOut
			corrected = s.ResolveLowerLevel(event.Zoom)
		case event.Zoom > current:
			direction = entity.ZoomDirectionIn
			corrected = s.ResolveUpperLevel(event.Zoom)
		}
	}

	if corrected == event.Zoom {
		return entity.ZoomOverride{}
	}
	// The correction replaces the raw value as the last observed zoom.
	s.lastZoom = corrected

	logging.FromContext(ctx).Debug().
		Float64("from", event.Zoom).
		Float64("to", corrected).
		Str("direction", string(direction)).
		Bool("immediately", event.Immediately).
		Msg("zoom snapped")

	return entity.ZoomOverride{
		Zoom:        corrected,
		Immediately: event.Immediately,
		Applied:     true,
	}
}

func (s *ZoomSnapper) isDuplicate(zoom float64) bool {
	return s.hasLastZoom && zoom == s.lastZoom
}

// Attach registers the snapper on the viewport's zoom-change channel.
// Corrections are applied by commanding the viewport to zoom to the snapped value.
func (s *ZoomSnapper) Attach(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registration != nil {
		return ErrAlreadyAttached
	}

	s.registration = s.viewport.Subscribe(func(ctx context.Context, event entity.ZoomEvent) entity.ZoomOverride {
		override := s.HandleZoom(ctx, event)
		if override.Applied {
			// The nested zoom event carries the corrected value and hits the duplicate guard.
			s.viewport.ZoomTo(ctx, override.Zoom, event.RefPoint, override.Immediately)
		}
		return override
	})

	logging.FromContext(ctx).Debug().Int("levels", s.levels.Len()).Msg("zoom snapper attached")
	return nil
}

// Detach removes the snapper from the viewport. Detaching twice is a no-op.
func (s *ZoomSnapper) Detach(ctx context.Context) {
	s.mu.Lock()
	registration := s.registration
	s.registration = nil
	s.mu.Unlock()

	if registration == nil {
		return
	}
	registration.Unsubscribe()
	logging.FromContext(ctx).Debug().Msg("zoom snapper detached")
}

// Attached reports whether the snapper is currently registered on its viewport.
func (s *ZoomSnapper) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registration != nil
}
