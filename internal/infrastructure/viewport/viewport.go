// Package viewport provides an in-process zoomable viewport that implements port.Viewport.
// It models a single image inside a container, with a spring-animated zoom and
// synchronous zoom-change notifications.
package viewport

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/logging"
)

// Defaults mirror the usual deep-zoom viewer settings.
const (
	DefaultAnimationTime     = 1200 * time.Millisecond
	DefaultSpringStiffness   = 6.5
	DefaultMinZoomImageRatio = 0.9
	DefaultMaxZoomPixelRatio = 1.1
)

// Options configures a Viewport.
type Options struct {
	ID string

	ContainerWidth  float64
	ContainerHeight float64
	ImageWidth      float64
	ImageHeight     float64

	AnimationTime   time.Duration
	SpringStiffness float64

	MinZoomImageRatio float64
	MaxZoomPixelRatio float64
	// MinZoomLevel and MaxZoomLevel override the derived bounds when > 0.
	MinZoomLevel float64
	MaxZoomLevel float64
	// DefaultZoomLevel overrides the fit-to-window home zoom when > 0.
	DefaultZoomLevel float64

	Version port.HostVersion
	Clock   Clock
}

// DefaultOptions returns options for a 1024x768 container showing a 4096x3072 image.
func DefaultOptions() Options {
	return Options{
		ID:                "default",
		ContainerWidth:    1024,
		ContainerHeight:   768,
		ImageWidth:        4096,
		ImageHeight:       3072,
		AnimationTime:     DefaultAnimationTime,
		SpringStiffness:   DefaultSpringStiffness,
		MinZoomImageRatio: DefaultMinZoomImageRatio,
		MaxZoomPixelRatio: DefaultMaxZoomPixelRatio,
		Version:           port.HostVersion{Major: 4, Minor: 1},
	}
}

// Validate checks that the options describe a usable viewport.
func (o Options) Validate() error {
	for name, v := range map[string]float64{
		"container_width":  o.ContainerWidth,
		"container_height": o.ContainerHeight,
		"image_width":      o.ImageWidth,
		"image_height":     o.ImageHeight,
	} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("viewport %s must be a positive number (got %v)", name, v)
		}
	}
	if o.AnimationTime < 0 {
		return fmt.Errorf("viewport animation time must be non-negative (got %s)", o.AnimationTime)
	}
	if o.MinZoomLevel > 0 && o.MaxZoomLevel > 0 && o.MinZoomLevel > o.MaxZoomLevel {
		return fmt.Errorf("viewport min_zoom_level %v exceeds max_zoom_level %v", o.MinZoomLevel, o.MaxZoomLevel)
	}
	return nil
}

type subscription struct {
	id      uint64
	handler port.ZoomHandler
}

// dispatchKey marks a context as already inside this viewport's dispatch.
type dispatchKey struct {
	vp *Viewport
}

// Viewport is a simulated zoomable viewport.
// Zoom changes are serialized per instance; handlers may call ZoomTo re-entrantly
// with the context they were given.
type Viewport struct {
	opts Options

	dispatchMu sync.Mutex

	mu       sync.RWMutex
	zoom     *Spring
	refPoint *entity.Point
	handlers []subscription
	nextID   uint64
	// commands counts zoom commands so an immediate jump can tell whether a
	// handler issued a newer one while it was being dispatched.
	commands uint64
}

var _ port.Viewport = (*Viewport)(nil)

// New creates a viewport resting at its home zoom.
func New(opts Options) (*Viewport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	v := &Viewport{opts: opts}
	v.zoom = NewSpring(v.HomeZoom(), opts.AnimationTime, opts.SpringStiffness, true, opts.Clock)
	return v, nil
}

// ID returns the viewport identifier.
func (v *Viewport) ID() string {
	return v.opts.ID
}

// Subscribe registers a zoom handler. Handlers run in registration order.
func (v *Viewport) Subscribe(handler port.ZoomHandler) port.Registration {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.nextID++
	id := v.nextID
	v.handlers = append(v.handlers, subscription{id: id, handler: handler})
	return &registration{vp: v, id: id}
}

// HandlerCount returns the number of registered zoom handlers.
func (v *Viewport) HandlerCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.handlers)
}

func (v *Viewport) unsubscribe(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, s := range v.handlers {
		if s.id == id {
			v.handlers = append(v.handlers[:i], v.handlers[i+1:]...)
			return
		}
	}
}

// ZoomTo sets the zoom target and notifies handlers before returning.
func (v *Viewport) ZoomTo(ctx context.Context, value float64, refPoint *entity.Point, immediately bool) {
	v.zoomTo(ctx, value, refPoint, immediately)
}

func (v *Viewport) zoomTo(ctx context.Context, value float64, refPoint *entity.Point, immediately bool) entity.ZoomOverride {
	ctx, release := v.enterDispatch(ctx)
	defer release()

	event := entity.ZoomEvent{Zoom: value, RefPoint: refPoint, Immediately: immediately}

	v.mu.Lock()
	v.commands++
	seq := v.commands
	v.refPoint = refPoint
	if !immediately {
		v.zoom.SpringTo(value)
		v.mu.Unlock()
		return v.raise(ctx, event)
	}
	v.mu.Unlock()

	// Handlers must still see the in-flight zoom, so the jump lands after dispatch.
	override := v.raise(ctx, event)

	v.mu.Lock()
	if v.commands == seq {
		v.zoom.ResetTo(value)
	}
	v.mu.Unlock()
	return override
}

// Emit delivers a recorded zoom notification to handlers without moving the spring first.
// Handlers see the viewport exactly as it is, which is how recorded sessions are replayed.
func (v *Viewport) Emit(ctx context.Context, event entity.ZoomEvent) entity.ZoomOverride {
	ctx, release := v.enterDispatch(ctx)
	defer release()
	return v.raise(ctx, event)
}

// enterDispatch serializes zoom changes per viewport. Nested calls made by handlers
// with the dispatch context pass straight through.
func (v *Viewport) enterDispatch(ctx context.Context) (context.Context, func()) {
	if ctx.Value(dispatchKey{vp: v}) != nil {
		return ctx, func() {}
	}
	v.dispatchMu.Lock()
	return context.WithValue(ctx, dispatchKey{vp: v}, struct{}{}), v.dispatchMu.Unlock
}

func (v *Viewport) raise(ctx context.Context, event entity.ZoomEvent) entity.ZoomOverride {
	v.mu.RLock()
	handlers := make([]subscription, len(v.handlers))
	copy(handlers, v.handlers)
	v.mu.RUnlock()

	var override entity.ZoomOverride
	for _, s := range handlers {
		if o := s.handler(ctx, event); o.Applied {
			override = o
		}
	}

	logging.FromContext(ctx).Trace().
		Str("viewport_id", v.opts.ID).
		Float64("zoom", event.Zoom).
		Bool("immediately", event.Immediately).
		Bool("overridden", override.Applied).
		Msg("zoom event dispatched")
	return override
}

// ZoomBy multiplies the current target zoom by factor.
// It returns the override applied by handlers, so callers can report snapping.
func (v *Viewport) ZoomBy(ctx context.Context, factor float64, refPoint *entity.Point, immediately bool) entity.ZoomOverride {
	return v.zoomTo(ctx, v.TargetZoom()*factor, refPoint, immediately)
}

// Request zooms to an absolute value and reports handler overrides.
func (v *Viewport) Request(ctx context.Context, value float64, refPoint *entity.Point, immediately bool) entity.ZoomOverride {
	return v.zoomTo(ctx, value, refPoint, immediately)
}

// GoHome zooms back to the home zoom.
func (v *Viewport) GoHome(ctx context.Context, immediately bool) {
	v.zoomTo(ctx, v.HomeZoom(), nil, immediately)
}

// ApplyConstraints pulls the target zoom back inside [MinZoom, MaxZoom].
// It reports whether the target had to move.
func (v *Viewport) ApplyConstraints(ctx context.Context, immediately bool) bool {
	target := v.TargetZoom()
	constrained := math.Max(v.MinZoom(), math.Min(target, v.MaxZoom()))
	if constrained == target {
		return false
	}
	v.zoomTo(ctx, constrained, v.RefPoint(), immediately)
	return true
}

// Settled reports whether the zoom has reached its target.
func (v *Viewport) Settled() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.zoom.IsAtTarget()
}

// Update advances the zoom animation. It reports whether the zoom is still moving.
func (v *Viewport) Update() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom.Update()
}

// PrimeCurrentZoom jumps the in-flight value without notifying handlers.
// Used to reproduce recorded states where the animation was mid-flight.
func (v *Viewport) PrimeCurrentZoom(value float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.zoom.ResetTo(value)
}

// CurrentZoom returns the in-flight animated zoom.
func (v *Viewport) CurrentZoom() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.zoom.Current()
}

// TargetZoom returns the zoom the viewport is animating towards.
func (v *Viewport) TargetZoom() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.zoom.Target()
}

// AnimationProgress returns the progress of the current zoom animation in [0, 1].
func (v *Viewport) AnimationProgress() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.zoom.Progress()
}

// RefPoint returns the anchor of the last zoom command.
func (v *Viewport) RefPoint() *entity.Point {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.refPoint
}

// HomeZoom returns the zoom at which the whole image fits the container.
func (v *Viewport) HomeZoom() float64 {
	if v.opts.DefaultZoomLevel > 0 {
		return v.opts.DefaultZoomLevel
	}
	imageAspect := v.opts.ImageWidth / v.opts.ImageHeight
	containerAspect := v.opts.ContainerWidth / v.opts.ContainerHeight
	return math.Min(1, imageAspect/containerAspect)
}

// MinZoom returns the lower zoom bound.
func (v *Viewport) MinZoom() float64 {
	if v.opts.MinZoomLevel > 0 {
		return v.opts.MinZoomLevel
	}
	return v.opts.MinZoomImageRatio * v.HomeZoom()
}

// MaxZoom returns the upper zoom bound. It is never below the home zoom.
func (v *Viewport) MaxZoom() float64 {
	zoom := v.opts.MaxZoomLevel
	if zoom <= 0 {
		zoom = v.opts.ImageWidth * v.opts.MaxZoomPixelRatio / v.opts.ContainerWidth
	}
	return math.Max(zoom, v.HomeZoom())
}

// ViewportToImageZoom converts a viewport zoom to the image's native zoom.
func (v *Viewport) ViewportToImageZoom(zoom float64) float64 {
	return zoom * v.opts.ContainerWidth / v.opts.ImageWidth
}

// ImageToViewportZoom converts an image-native zoom to viewport space.
func (v *Viewport) ImageToViewportZoom(zoom float64) float64 {
	return zoom * v.opts.ImageWidth / v.opts.ContainerWidth
}

// HostVersion reports the configured host version.
func (v *Viewport) HostVersion() port.HostVersion {
	return v.opts.Version
}

type registration struct {
	vp   *Viewport
	id   uint64
	once sync.Once
}

func (r *registration) Unsubscribe() {
	r.once.Do(func() { r.vp.unsubscribe(r.id) })
}
