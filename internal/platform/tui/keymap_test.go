package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vector-snake/internal/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapping(t *testing.T) {
	keys := DefaultKeyMap()

	cases := []struct {
		name string
		msg  tea.KeyMsg
		want snake.Key
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, snake.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, snake.KeyDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, snake.KeyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, snake.KeyRight},
		{"w", runeKey('w'), snake.KeyUp},
		{"s", runeKey('s'), snake.KeyDown},
		{"a", runeKey('a'), snake.KeyLeft},
		{"d", runeKey('d'), snake.KeyRight},
		{"space", runeKey(' '), snake.KeySpace},
		{"p", runeKey('p'), snake.KeySpace},
		{"unbound rune", runeKey('x'), snake.KeyUnknown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, snake.KeyUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.GameKey(tc.msg); got != tc.want {
				t.Errorf("GameKey(%s) = %v, want %v", tc.msg, got, tc.want)
			}
		})
	}
}
