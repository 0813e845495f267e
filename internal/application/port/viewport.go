// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the hosting viewer, allowing the snapping logic to remain
// independent of any specific rendering or animation implementation.
package port

import (
	"context"
	"fmt"

	"github.com/bnema/zoomlevels/internal/domain/entity"
)

// HostVersion identifies the capability level of a hosting viewer.
type HostVersion struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as major.minor.patch.
func (v HostVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ZoomHandler is invoked synchronously whenever a viewport's zoom is about to change.
// The returned override tells the dispatcher whether the pending value was redirected.
type ZoomHandler func(ctx context.Context, event entity.ZoomEvent) entity.ZoomOverride

// Registration is returned by Viewport.Subscribe and removes the handler.
type Registration interface {
	// Unsubscribe detaches the handler. Calling it more than once is a no-op.
	Unsubscribe()
}

// Viewport defines the port interface for a zoomable viewer viewport.
// All zoom values are in viewport space unless stated otherwise.
type Viewport interface {
	// --- Events ---

	// Subscribe registers a handler on the zoom-change notification channel.
	Subscribe(handler ZoomHandler) Registration

	// --- Navigation ---

	// ZoomTo animates (or jumps, if immediately) to value, anchored at refPoint.
	// A nil refPoint anchors at the viewport center.
	ZoomTo(ctx context.Context, value float64, refPoint *entity.Point, immediately bool)

	// --- Bounds ---

	// HomeZoom returns the default fit-to-window zoom.
	HomeZoom() float64

	// MinZoom returns the current lower zoom bound.
	MinZoom() float64

	// MaxZoom returns the current upper zoom bound.
	MaxZoom() float64

	// CurrentZoom returns the in-flight, possibly mid-animation, zoom value.
	CurrentZoom() float64

	// --- Coordinate spaces ---

	// ViewportToImageZoom converts a viewport-space zoom to image space.
	ViewportToImageZoom(zoom float64) float64

	// ImageToViewportZoom converts an image-space zoom to viewport space.
	ImageToViewportZoom(zoom float64) float64

	// --- Host ---

	// HostVersion reports the capability level of the hosting viewer.
	HostVersion() HostVersion
}
