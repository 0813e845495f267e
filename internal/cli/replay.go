package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/application/usecase"
	"github.com/bnema/zoomlevels/internal/cli/styles"
	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/infrastructure/viewport"
	"github.com/bnema/zoomlevels/internal/logging"
)

// RecordedEvent is one line of a replay file.
// Current is the in-flight zoom at the time of the event; when omitted the
// previous correction is treated as settled.
type RecordedEvent struct {
	// Line is the 1-based position in the source, set by ParseEvents.
	Line int `json:"-"`

	Zoom        float64       `json:"zoom"`
	Current     *float64      `json:"current,omitempty"`
	Immediately bool          `json:"immediately"`
	RefPoint    *entity.Point `json:"ref_point,omitempty"`
}

// ReplaySource is a named stream of JSON-lines events.
type ReplaySource struct {
	Name   string
	Reader io.Reader
}

// ReplayResult holds the per-event outcomes of one source, in input order.
type ReplayResult struct {
	Source string
	Lines  []styles.ReplayLine
}

// Snapped counts the events that were redirected.
func (r ReplayResult) Snapped() int {
	n := 0
	for _, line := range r.Lines {
		if line.Override.Applied {
			n++
		}
	}
	return n
}

// Replayer feeds recorded zoom events through a fresh viewport and snapper per source.
type Replayer struct {
	NewViewport func(id string) (*viewport.Viewport, error)
	NewSnapper  func(ctx context.Context, vp port.Viewport) (*usecase.SnapperController, error)
	// Parallelism bounds concurrently replayed sources. Zero uses GOMAXPROCS.
	Parallelism int
}

// NewReplayer creates a replayer backed by the app's configuration.
func (a *App) NewReplayer(parallelism int) *Replayer {
	return &Replayer{
		NewViewport: a.NewViewport,
		NewSnapper:  a.NewSnapper,
		Parallelism: parallelism,
	}
}

// Run replays every source and returns results in source order.
// The first failing source cancels the others.
func (r *Replayer) Run(ctx context.Context, sources []ReplaySource) ([]ReplayResult, error) {
	limit := r.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]ReplayResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, source := range sources {
		g.Go(func() error {
			result, err := r.replaySource(gctx, source)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Replayer) replaySource(ctx context.Context, source ReplaySource) (ReplayResult, error) {
	ctx = logging.WithViewportID(ctx, source.Name)
	log := logging.FromContext(ctx)

	events, err := ParseEvents(source.Name, source.Reader)
	if err != nil {
		return ReplayResult{}, err
	}

	vp, err := r.NewViewport(source.Name)
	if err != nil {
		return ReplayResult{}, err
	}
	controller, err := r.NewSnapper(ctx, vp)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("%s: %w", source.Name, err)
	}
	defer controller.Close(ctx)

	result := ReplayResult{Source: source.Name, Lines: make([]styles.ReplayLine, 0, len(events))}
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return ReplayResult{}, err
		}

		if event.Current != nil {
			vp.PrimeCurrentZoom(*event.Current)
		} else {
			vp.PrimeCurrentZoom(vp.TargetZoom())
		}
		current := vp.CurrentZoom()

		override := vp.Emit(ctx, entity.ZoomEvent{
			Zoom:        event.Zoom,
			RefPoint:    event.RefPoint,
			Immediately: event.Immediately,
		})
		if override.Applied {
			override.Zoom = Round(override.Zoom)
		} else {
			// A passed event settles where it asked to.
			vp.PrimeCurrentZoom(event.Zoom)
		}

		result.Lines = append(result.Lines, styles.ReplayLine{
			Source:   source.Name,
			Line:     event.Line,
			Event:    entity.ZoomEvent{Zoom: event.Zoom, RefPoint: event.RefPoint, Immediately: event.Immediately},
			Current:  current,
			Override: override,
		})
	}

	log.Debug().
		Int("events", len(result.Lines)).
		Int("snapped", result.Snapped()).
		Msg("replay finished")
	return result, nil
}

// ParseEvents reads JSON-lines events. Blank lines and lines starting with # are skipped.
func ParseEvents(name string, r io.Reader) ([]RecordedEvent, error) {
	var events []RecordedEvent

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		var event RecordedEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("%s:%d: invalid zoom event: %w", name, lineNo, err)
		}
		if !(event.Zoom > 0) || math.IsInf(event.Zoom, 0) {
			return nil, fmt.Errorf("%s:%d: zoom must be a positive number (got %v)", name, lineNo, event.Zoom)
		}
		if event.Current != nil && !(*event.Current > 0) {
			return nil, fmt.Errorf("%s:%d: current must be a positive number (got %v)", name, lineNo, *event.Current)
		}
		event.Line = lineNo
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return events, nil
}
