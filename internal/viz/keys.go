package viz

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/rain/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	Color key.Binding
	Speed key.Binding
	Bold  key.Binding

	Down  key.Binding
	Up    key.Binding
	Left  key.Binding
	Right key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color"),
		),
		Speed: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "speed"),
		),
		Bold: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bold"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "fall down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "fall up"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "fall left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "fall right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// direction maps a key press to a fall direction.
func (k KeyMap) direction(msg tea.KeyMsg) (config.Direction, bool) {
	switch {
	case key.Matches(msg, k.Down):
		return config.Down, true
	case key.Matches(msg, k.Up):
		return config.Up, true
	case key.Matches(msg, k.Left):
		return config.Left, true
	case key.Matches(msg, k.Right):
		return config.Right, true
	}
	return config.Down, false
}

// ShortHelp lists the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Speed, k.Bold, k.Down, k.Up, k.Left, k.Right, k.Quit}
}
