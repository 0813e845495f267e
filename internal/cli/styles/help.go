package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// SimKeyMap defines keybindings for the zoom simulator.
type SimKeyMap struct {
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	Home        key.Binding
	Immediately key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k SimKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Home, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k SimKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.Home},
		{k.Immediately, k.Help, k.Quit},
	}
}

// DefaultSimKeyMap returns the default simulator keybindings.
func DefaultSimKeyMap() SimKeyMap {
	return SimKeyMap{
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_", "down"),
			key.WithHelp("-", "zoom out"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "0"),
			key.WithHelp("h", "home"),
		),
		Immediately: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle animation"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
