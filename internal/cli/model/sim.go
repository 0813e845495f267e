// Package model holds the bubbletea models of the zoomlevels CLI.
package model

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/zoomlevels/internal/application/usecase"
	"github.com/bnema/zoomlevels/internal/cli/styles"
	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/infrastructure/viewport"
)

const (
	frameInterval = time.Second / 60
	progressWidth = 30
	defaultStep   = 1.5
)

// SimModel drives a simulated viewport from the keyboard and shows the snapper's decisions.
type SimModel struct {
	ctx        context.Context
	viewport   *viewport.Viewport
	controller *usecase.SnapperController
	theme      *styles.Theme
	keys       styles.SimKeyMap
	help       help.Model

	step        float64
	immediately bool

	lastRequest float64
	lastResult  entity.ZoomOverride
	notice      string
	width       int
}

type frameMsg time.Time

// LevelsReloadedMsg tells the simulator the snapper was rebuilt from a new config.
type LevelsReloadedMsg struct{}

// NewSimModel creates a simulator. step is the zoom factor applied per key press.
func NewSimModel(
	ctx context.Context,
	theme *styles.Theme,
	vp *viewport.Viewport,
	controller *usecase.SnapperController,
	step float64,
) SimModel {
	if step <= 1 {
		step = defaultStep
	}
	return SimModel{
		ctx:        ctx,
		viewport:   vp,
		controller: controller,
		theme:      theme,
		keys:       styles.DefaultSimKeyMap(),
		help:       styles.NewStyledHelp(theme),
		step:       step,
		width:      80,
	}
}

// Init implements tea.Model.
func (m SimModel) Init() tea.Cmd {
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update implements tea.Model.
func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case frameMsg:
		m.viewport.Update()
		return m, nextFrame()

	case LevelsReloadedMsg:
		m.notice = "levels reloaded from config"

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ZoomIn):
			m.zoomBy(m.step)
		case key.Matches(msg, m.keys.ZoomOut):
			m.zoomBy(1 / m.step)
		case key.Matches(msg, m.keys.Home):
			m.lastRequest = m.viewport.HomeZoom()
			m.viewport.GoHome(m.ctx, m.immediately)
			m.lastResult = entity.ZoomOverride{}
			m.notice = "home"
		case key.Matches(msg, m.keys.Immediately):
			m.immediately = !m.immediately
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *SimModel) zoomBy(factor float64) {
	m.lastRequest = m.viewport.TargetZoom() * factor
	m.lastResult = m.viewport.ZoomBy(m.ctx, factor, nil, m.immediately)
	switch {
	case m.lastResult.Applied:
		m.notice = fmt.Sprintf("snapped %s to %s",
			styles.FormatZoom(round(m.lastRequest)), styles.FormatZoom(round(m.lastResult.Zoom)))
	case m.viewport.ApplyConstraints(m.ctx, m.immediately):
		m.notice = "clamped to " + styles.FormatZoom(round(m.viewport.TargetZoom()))
	default:
		m.notice = "passed through"
	}
}

// View implements tea.Model.
func (m SimModel) View() string {
	t := m.theme
	vp := m.viewport

	target := vp.TargetZoom()
	header := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title.Render("Zoom simulator"),
		"",
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			t.Badge.Render("target "+styles.FormatZoom(round(target))),
			" ",
			t.BadgeMuted.Render("current "+styles.FormatZoom(round(vp.CurrentZoom()))),
			" ",
			t.BadgeMuted.Render("image "+styles.FormatZoom(round(vp.ViewportToImageZoom(target)))),
		),
	)

	bounds := t.Subtle.Render(fmt.Sprintf("home %s  min %s  max %s",
		styles.FormatZoom(round(vp.HomeZoom())),
		styles.FormatZoom(round(vp.MinZoom())),
		styles.FormatZoom(round(vp.MaxZoom())),
	))

	mode := "animated"
	if m.immediately {
		mode = "immediate"
	}
	mode += ", " + m.restState(target)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.renderLevels(target),
		bounds,
		"",
		m.renderProgress(vp.AnimationProgress()),
		"",
		t.Normal.Render(m.notice)+"  "+t.Subtle.Render(mode),
		"",
		m.help.View(m.keys),
	)
	return t.Box.Render(content)
}

// renderLevels lists the permitted viewport zooms, marking the one at the target.
func (m SimModel) renderLevels(target float64) string {
	t := m.theme

	snapper := m.controller.Snapper()
	if snapper == nil || !snapper.Enabled() {
		return t.WarningStyle.Render("snapping disabled")
	}

	var parts []string
	for _, level := range snapper.Levels() {
		zoom := round(m.viewport.ImageToViewportZoom(level))
		label := styles.FormatZoom(zoom)
		if zoom == round(target) {
			parts = append(parts, t.LevelAtTarget.Render("["+label+"]"))
		} else {
			parts = append(parts, t.Level.Render(label))
		}
	}
	return t.Subtitle.Render("levels ") + strings.Join(parts, " ")
}

// restState describes where the zoom is heading relative to the levels.
func (m SimModel) restState(target float64) string {
	if !m.viewport.Settled() {
		return "moving"
	}
	snapper := m.controller.Snapper()
	if snapper == nil || !snapper.Enabled() || snapper.IsPermitted(target) {
		return "at rest"
	}
	return "off level"
}

func (m SimModel) renderProgress(progress float64) string {
	filled := int(progress * progressWidth)
	filled = max(0, min(filled, progressWidth))

	bar := m.theme.ProgressFilled.Render(strings.Repeat("█", filled)) +
		m.theme.ProgressEmpty.Render(strings.Repeat("░", progressWidth-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, progress*100)
}

func round(v float64) float64 {
	const scale = 1e6
	return math.Round(v*scale) / scale
}
