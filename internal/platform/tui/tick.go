// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal loop, key mapping, frame rendering, and the SSH
// server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one gameplay update.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that delivers the next tick after the
// given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
