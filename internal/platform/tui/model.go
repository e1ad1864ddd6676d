package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vector-snake/internal/config"
	"github.com/vovakirdan/vector-snake/internal/core"
	"github.com/vovakirdan/vector-snake/internal/snake"
)

// hudHeight is the number of rows above the playfield (title line + separator).
const hudHeight = 2

// FruitRollMsg delivers the result of one fruit-spawn draw. The draw runs as
// a command so randomness reaches the game as a message, never inline.
type FruitRollMsg snake.FruitSpawn

// Model is the Bubble Tea model for one snake session.
type Model struct {
	game     *snake.Game
	spawner  *snake.Spawner
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	styles   map[core.Color]lipgloss.Style
	interval time.Duration
	quitting bool
}

// NewModel creates a session model for the given runtime config and settings.
func NewModel(cfg core.RuntimeConfig, settings config.Settings) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	interval := time.Duration(settings.Timing.TickMillis) * time.Millisecond
	if cfg.TickRate > 0 {
		interval = time.Second / time.Duration(cfg.TickRate)
	}

	// The bottom row is reserved for the help bar.
	screenH := max(cfg.ViewportH-1, 1)

	return Model{
		game:     snake.New(cfg.ViewportW, cfg.ViewportH),
		spawner:  snake.NewSpawner(cfg.Seed),
		screen:   core.NewScreen(cfg.ViewportW, screenH),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   styleTable(settings.Theme),
		interval: interval,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and advances the game state machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if k := m.keys.GameKey(msg); k != snake.KeyUnknown {
			m.game.Apply(snake.KeyPressed{Key: k})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.game.Apply(snake.Resized{Width: msg.Width, Height: msg.Height})
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Apply(snake.Tick{At: time.Time(msg)})
		cmds := []tea.Cmd{tickCmd(m.interval)}
		if m.game.NeedsFruit() {
			cmds = append(cmds, m.rollFruit())
		}
		return m, tea.Batch(cmds...)

	case FruitRollMsg:
		m.game.Apply(snake.FruitSpawn(msg))
		return m, nil
	}

	return m, nil
}

// rollFruit performs one spawn draw off the update path and delivers it back
// as a message.
func (m Model) rollFruit() tea.Cmd {
	sp := m.spawner
	return func() tea.Msg {
		return FruitRollMsg(sp.Draw())
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw(m.game.Snapshot())
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// draw projects the snapshot into the screen buffer.
func (m Model) draw(snap snake.Snapshot) {
	s := m.screen
	s.Clear()
	m.drawHUD(snap)

	boxW := core.GridSize + 2
	boxH := core.GridSize + 2
	if s.Width() < boxW || s.Height() < boxH+hudHeight {
		m.drawOverlay("Window too small",
			fmt.Sprintf("Need %d×%d, have %d×%d", boxW, boxH+hudHeight, s.Width(), s.Height()))
		return
	}

	offX := (s.Width() - boxW) / 2
	offY := hudHeight
	s.DrawBox(core.NewRect(offX, offY, boxW, boxH), core.ColorChrome)
	s.DrawRect(core.NewRect(offX+1, offY+1, core.GridSize, core.GridSize), '·', core.ColorBackground)

	if snap.Fruit != nil {
		s.SetCell(offX+1+snap.Fruit.X, offY+1+snap.Fruit.Y, '●', core.ColorFruit)
	}

	// Head drawn last so it wins any overlap on the death frame.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		seg := snap.Body[i]
		c := core.ColorSnake
		if i == 0 {
			c = core.ColorSnakeHead
		}
		s.SetCell(offX+1+seg.X, offY+1+seg.Y, '█', c)
	}

	// Dead takes precedence over paused.
	switch {
	case snap.Dead:
		m.drawOverlay("Game over", "Q to quit")
	case snap.Paused:
		m.drawOverlay("Paused", "Space to resume")
	}
}

// drawHUD draws the top status line and separator.
func (m Model) drawHUD(snap snake.Snapshot) {
	s := m.screen

	state := ""
	switch {
	case snap.Dead:
		state = "  [dead]"
	case snap.Paused:
		state = "  [paused]"
	}
	hud := fmt.Sprintf(" Vector Snake | length %d%s", len(snap.Body), state)
	s.DrawText(0, 0, hud, core.ColorChrome)

	for x := range s.Width() {
		s.SetCell(x, 1, '─', core.ColorChrome)
	}
}

// drawOverlay draws a centered two-line message box.
func (m Model) drawOverlay(line1, line2 string) {
	s := m.screen

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorChrome)
	s.DrawTextCentered(box.Y+1, line1, core.ColorChrome)
	s.DrawTextCentered(box.Y+3, line2, core.ColorChrome)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg core.RuntimeConfig, settings config.Settings) error {
	p := tea.NewProgram(
		NewModel(cfg, settings),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
