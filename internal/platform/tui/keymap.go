package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vector-snake/internal/snake"
)

// KeyMap defines the key bindings for a game session. It satisfies the
// bubbles help.KeyMap interface so the footer help bar can render it.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameKey translates a Bubble Tea key message into a game key. Bound keys
// map directly; other single-rune keys fall back to their key-code mapping,
// and everything else collapses to KeyUnknown (a no-op for the game).
func (k KeyMap) GameKey(msg tea.KeyMsg) snake.Key {
	switch {
	case key.Matches(msg, k.Up):
		return snake.KeyUp
	case key.Matches(msg, k.Down):
		return snake.KeyDown
	case key.Matches(msg, k.Left):
		return snake.KeyLeft
	case key.Matches(msg, k.Right):
		return snake.KeyRight
	case key.Matches(msg, k.Pause):
		return snake.KeySpace
	}
	if r := msg.Runes; len(r) == 1 {
		return snake.KeyFromCode(int(r[0]))
	}
	return snake.KeyUnknown
}
