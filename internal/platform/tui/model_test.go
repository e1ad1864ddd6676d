package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vector-snake/internal/config"
	"github.com/vovakirdan/vector-snake/internal/core"
	"github.com/vovakirdan/vector-snake/internal/snake"
)

func testModel() Model {
	cfg := core.RuntimeConfig{ViewportW: 80, ViewportH: 60, Seed: 42}
	return NewModel(cfg, config.DefaultSettings())
}

func TestModelTickSchedulesNext(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("Tick must schedule a follow-up command")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := testModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Quit key must produce a command")
	}
	if !next.(Model).quitting {
		t.Error("Quit key should mark the model as quitting")
	}
	if next.(Model).View() != "" {
		t.Error("Quitting model should render nothing")
	}
}

func TestModelWindowResize(t *testing.T) {
	m := testModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	nm := next.(Model)

	if nm.screen.Width() != 100 || nm.screen.Height() != 39 {
		t.Errorf("Screen = %dx%d, want 100x39 (one row kept for help)",
			nm.screen.Width(), nm.screen.Height())
	}
}

func TestModelFruitRollApplied(t *testing.T) {
	m := testModel()

	next, _ := m.Update(FruitRollMsg(snake.FruitSpawn{
		Candidate: core.Block{X: 5, Y: 5},
		Roll:      0,
	}))
	nm := next.(Model)

	snap := nm.game.Snapshot()
	if snap.Fruit == nil || !core.SamePosition(*snap.Fruit, core.Block{X: 5, Y: 5}) {
		t.Errorf("Fruit = %v, want (5,5)", snap.Fruit)
	}
}

func TestModelViewShowsPlayfield(t *testing.T) {
	m := testModel()

	out := m.View()
	if !strings.Contains(out, "Vector Snake") {
		t.Error("View missing HUD title")
	}
	if !strings.Contains(out, "█") {
		t.Error("View missing snake segments")
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	out := next.(Model).View()
	if !strings.Contains(out, "Window too small") {
		t.Error("Cramped viewport should show the too-small overlay")
	}
}

func TestModelKeySteersGame(t *testing.T) {
	m := testModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(Model).Update(TickMsg(time.Now()))

	snap := next.(Model).game.Snapshot()
	if snap.Head().Y != 26 {
		t.Errorf("Head after down+tick = %v, want y=26", snap.Head())
	}
}
