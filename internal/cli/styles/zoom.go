package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/zoomlevels/internal/domain/entity"
)

// LevelRow is one permitted level expressed in both zoom spaces.
type LevelRow struct {
	Image    float64
	Viewport float64
	// Reachable is false when the viewport bounds clamp the level away.
	Reachable bool
}

// ReplayLine is the outcome of one replayed zoom event.
type ReplayLine struct {
	Source   string
	Line     int
	Event    entity.ZoomEvent
	Current  float64
	Override entity.ZoomOverride
}

// ZoomRenderer renders level listings and snapping results.
type ZoomRenderer struct {
	theme *Theme
}

// NewZoomRenderer creates a new zoom renderer with the given theme.
func NewZoomRenderer(theme *Theme) *ZoomRenderer {
	return &ZoomRenderer{theme: theme}
}

// FormatZoom prints a zoom factor with the fewest digits that round-trip.
func FormatZoom(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// RenderLevels renders the permitted levels with their viewport equivalents.
func (r *ZoomRenderer) RenderLevels(rows []LevelRow, source string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	title := fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconZoomIn),
		r.theme.Title.Render("Zoom levels"),
		r.theme.Subtle.Render("("+source+")"),
	)

	if len(rows) == 0 {
		return title + "\n\n  " + r.theme.Subtle.Render("No levels configured, snapping is disabled.")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(r.theme.Subtitle.Render(fmt.Sprintf("  %-12s %-12s", "image", "viewport")))
	b.WriteString("\n")
	for _, row := range rows {
		line := fmt.Sprintf("  %-12s %-12s", FormatZoom(row.Image), FormatZoom(row.Viewport))
		if row.Reachable {
			b.WriteString(r.theme.Normal.Render(line))
		} else {
			b.WriteString(r.theme.Subtle.Render(line))
			b.WriteString(" ")
			b.WriteString(r.theme.WarningStyle.Render("outside viewport bounds"))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderResolution renders a single snapping decision.
func (r *ZoomRenderer) RenderResolution(candidate, snapped float64, direction entity.ZoomDirection) string {
	icon := IconZoomIn
	if direction == entity.ZoomDirectionOut {
		icon = IconZoomOut
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf("%s %s %s %s",
		iconStyle.Render(icon),
		r.theme.Normal.Render(FormatZoom(candidate)),
		r.theme.Subtle.Render(IconArrow),
		r.theme.Highlight.Render(FormatZoom(snapped)),
	)
}

// RenderReplayLine renders the outcome of one replayed event.
func (r *ZoomRenderer) RenderReplayLine(line ReplayLine) string {
	where := r.theme.Subtle.Render(fmt.Sprintf("%s:%d", line.Source, line.Line))
	zoom := r.theme.Normal.Render(FormatZoom(line.Event.Zoom))
	current := r.theme.Subtle.Render("from " + FormatZoom(line.Current))

	if !line.Override.Applied {
		return fmt.Sprintf("%s %s %s %s", where, zoom, current, r.theme.BadgeMuted.Render("pass"))
	}
	return fmt.Sprintf("%s %s %s %s %s",
		where,
		zoom,
		current,
		r.theme.Subtle.Render(IconArrow),
		r.theme.Highlight.Render(FormatZoom(line.Override.Zoom)),
	)
}

// RenderReplaySummary renders totals after a replay.
func (r *ZoomRenderer) RenderReplaySummary(events, snapped, files int) string {
	return fmt.Sprintf("\n%s %s %s",
		r.theme.Badge.Render(fmt.Sprintf("%d events", events)),
		r.theme.Badge.Render(fmt.Sprintf("%d snapped", snapped)),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d files", files)),
	)
}
