package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vector-snake/internal/config"
	"github.com/vovakirdan/vector-snake/internal/core"
)

// styleTable maps cell color roles to lipgloss styles built from the theme.
func styleTable(theme config.ThemeConfig) map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:    lipgloss.NewStyle(),
		core.ColorBackground: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Background)),
		core.ColorSnake:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Snake)),
		core.ColorSnakeHead:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Head)),
		core.ColorFruit:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Fruit)),
		core.ColorChrome:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Chrome)),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
