package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/zoomlevels/internal/domain/entity"
)

// ProfilesRenderer renders non-interactive output for the profile subcommands.
type ProfilesRenderer struct {
	theme *Theme
}

func NewProfilesRenderer(theme *Theme) *ProfilesRenderer {
	return &ProfilesRenderer{theme: theme}
}

func (r *ProfilesRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No zoom profiles saved.")
}

func (r *ProfilesRenderer) RenderList(profiles []*entity.ZoomProfile) string {
	if len(profiles) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDatabase), r.theme.Title.Render("Zoom profiles"))
	b.WriteString(title)
	b.WriteString("\n\n")

	for _, p := range profiles {
		b.WriteString(r.renderOne(p))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (r *ProfilesRenderer) renderOne(p *entity.ZoomProfile) string {
	return fmt.Sprintf("  %s  %s  %s",
		r.theme.Highlight.Render(p.Name),
		r.theme.Normal.Render(formatLevels(p.Levels)),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d levels", len(p.Levels))),
	)
}

// RenderProfile renders a single profile with its timestamps.
func (r *ProfilesRenderer) RenderProfile(p *entity.ZoomProfile) string {
	keyStyle := r.theme.Subtle
	lines := []string{
		r.theme.Title.Render(p.Name),
		fmt.Sprintf("  %s %s", keyStyle.Render("levels "), r.theme.Normal.Render(formatLevels(p.Levels))),
		fmt.Sprintf("  %s %s", keyStyle.Render("created"), r.theme.Normal.Render(p.CreatedAt.Format(time.RFC3339))),
		fmt.Sprintf("  %s %s", keyStyle.Render("updated"), r.theme.Normal.Render(p.UpdatedAt.Format(time.RFC3339))),
	}
	return strings.Join(lines, "\n")
}

func (r *ProfilesRenderer) RenderSaved(p *entity.ZoomProfile) string {
	return fmt.Sprintf("%s Saved profile %s %s",
		lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck),
		r.theme.Highlight.Render(p.Name),
		r.theme.Subtle.Render(formatLevels(p.Levels)),
	)
}

func (r *ProfilesRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Deleted profile %s",
		lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck),
		r.theme.Highlight.Render(name),
	)
}

func formatLevels(levels []float64) string {
	parts := make([]string, len(levels))
	for i, level := range levels {
		parts[i] = FormatZoom(level)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
