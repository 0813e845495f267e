package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/zoomlevels/internal/domain/entity"
)

// ConfigSchemaRenderer renders the list of configuration keys.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render groups keys into one box per section. Sections keep the order in
// which they first appear, which is the declaration order of the config.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	var order []string
	bySection := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		if _, seen := bySection[key.Section]; !seen {
			order = append(order, key.Section)
		}
		bySection[key.Section] = append(bySection[key.Section], key)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", iconStyle.Render(IconConfig), r.theme.Title.Render("Configuration Keys"))
	for _, section := range order {
		b.WriteString(r.renderSection(section, bySection[section]))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderJSON renders the keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	width := 0
	for _, key := range keys {
		width = max(width, len(key.Key))
	}

	lines := []string{r.theme.Highlight.Render(name)}
	for _, key := range keys {
		lines = append(lines, r.renderKey(key, width))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo, width int) string {
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := fmt.Sprintf("%s  %s  %s",
		r.theme.Normal.Bold(true).Render(fmt.Sprintf("%-*s", width, key.Key)),
		r.theme.Subtle.Render(key.Type),
		defaultStyle.Render(key.Default),
	)

	var extra []string
	if key.Description != "" {
		extra = append(extra, r.theme.Subtle.Render(key.Description))
	}
	switch {
	case len(key.Values) > 0:
		extra = append(extra, r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", ")))
	case key.Range != "":
		extra = append(extra, r.theme.Normal.Render("Range: "+key.Range))
	}
	for _, e := range extra {
		line += "\n  " + e
	}
	return line
}
