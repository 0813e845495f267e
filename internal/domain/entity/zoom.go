// Package entity defines the zoom snapping domain types.
package entity

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidZoomLevel is returned when a permitted zoom level is not a finite positive number.
var ErrInvalidZoomLevel = errors.New("invalid zoom level")

// PermittedLevels is the set of image-space zoom factors a viewer may rest at.
// Levels are sorted strictly ascending once, at construction, and never mutated afterwards.
type PermittedLevels struct {
	levels []float64
}

// NewPermittedLevels validates, sorts and deduplicates the given image-space levels.
// A nil or empty input yields an empty set, which disables snapping.
func NewPermittedLevels(levels []float64) (PermittedLevels, error) {
	if len(levels) == 0 {
		return PermittedLevels{}, nil
	}

	sorted := make([]float64, len(levels))
	for i, level := range levels {
		if math.IsNaN(level) || math.IsInf(level, 0) || level <= 0 {
			return PermittedLevels{}, fmt.Errorf("%w: levels[%d] = %v (must be finite and > 0)", ErrInvalidZoomLevel, i, level)
		}
		sorted[i] = level
	}

	slices.Sort(sorted)
	return PermittedLevels{levels: slices.Compact(sorted)}, nil
}

// Len returns the number of distinct levels.
func (p PermittedLevels) Len() int {
	return len(p.levels)
}

// IsEmpty reports whether snapping is disabled.
func (p PermittedLevels) IsEmpty() bool {
	return len(p.levels) == 0
}

// Values returns a copy of the sorted levels.
func (p PermittedLevels) Values() []float64 {
	return slices.Clone(p.levels)
}

// First returns the smallest level. ok is false when the set is empty.
func (p PermittedLevels) First() (level float64, ok bool) {
	if len(p.levels) == 0 {
		return 0, false
	}
	return p.levels[0], true
}

// Last returns the largest level. ok is false when the set is empty.
func (p PermittedLevels) Last() (level float64, ok bool) {
	if len(p.levels) == 0 {
		return 0, false
	}
	return p.levels[len(p.levels)-1], true
}

// Above returns the lowest level strictly greater than imageZoom,
// falling back to the largest level when none qualifies.
func (p PermittedLevels) Above(imageZoom float64) (level float64, ok bool) {
	level, ok = p.Last()
	for _, l := range p.levels {
		if l > imageZoom {
			return l, true
		}
	}
	return level, ok
}

// Below returns the highest level strictly less than imageZoom,
// falling back to the smallest level when none qualifies.
func (p PermittedLevels) Below(imageZoom float64) (level float64, ok bool) {
	level, ok = p.First()
	for i := len(p.levels) - 1; i >= 0; i-- {
		if p.levels[i] < imageZoom {
			return p.levels[i], true
		}
	}
	return level, ok
}

// Contains reports whether imageZoom is exactly one of the permitted levels.
func (p PermittedLevels) Contains(imageZoom float64) bool {
	_, found := slices.BinarySearch(p.levels, imageZoom)
	return found
}

// Point is a reference point in viewport coordinates used to anchor a zoom.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ZoomEvent is emitted by a viewport when its zoom is about to change.
type ZoomEvent struct {
	// Zoom is the viewport-space value the viewport is about to settle on.
	Zoom float64
	// RefPoint anchors the zoom. Nil means the viewport center.
	RefPoint *Point
	// Immediately requests a jump instead of an animated transition.
	Immediately bool
}

// ZoomOverride is the result of handling a ZoomEvent.
// Applied is false when the event should pass through untouched.
type ZoomOverride struct {
	Zoom        float64
	Immediately bool
	Applied     bool
}

// ZoomDirection describes the direction of travel of a zoom change.
type ZoomDirection string

const (
	ZoomDirectionNone ZoomDirection = "none"
	ZoomDirectionIn   ZoomDirection = "in"
	ZoomDirectionOut  ZoomDirection = "out"
)
