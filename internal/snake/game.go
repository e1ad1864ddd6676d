// Package snake implements the snake game as a deterministic state machine.
// A single Game value consumes discrete events (ticks, key presses, resizes,
// fruit draws) and steps to its next state; all randomness arrives through
// events, so identical event sequences always produce identical states.
package snake

import (
	"github.com/vovakirdan/vector-snake/internal/core"
)

// Direction is the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direct reverse of a direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Starting position: three cells on row 25, head at x=25, moving right.
const (
	startRow   = 25
	startHeadX = 25
	startLen   = 3
)

// Game holds the complete state of one snake session. A single Game value is
// owned by the dispatch loop and mutated only through Apply, one event at a
// time; renderers receive copies via Snapshot.
type Game struct {
	direction Direction
	width     int
	height    int
	snake     []core.Block // head first
	isDead    bool
	fruit     *core.Block
	ateFruit  bool // transient, recomputed each live tick
	paused    bool
}

// New creates a running game with the fixed starting snake and the given
// viewport dimensions.
func New(width, height int) *Game {
	body := make([]core.Block, startLen)
	for i := range body {
		body[i] = core.Block{X: startHeadX - i, Y: startRow}
	}
	return &Game{
		direction: DirRight,
		width:     width,
		height:    height,
		snake:     body,
	}
}

// Apply dispatches a single event and advances the game to its next state.
func (g *Game) Apply(ev Event) {
	switch ev := ev.(type) {
	case KeyPressed:
		g.handleKey(ev.Key)
	case Resized:
		g.width, g.height = ev.Width, ev.Height
	case Tick:
		g.step()
	case FruitSpawn:
		g.applySpawn(ev)
	}
}

// handleKey processes one key press. Space toggles pause in any state,
// including dead; arrows steer subject to the reversal guard; everything
// else is ignored.
func (g *Game) handleKey(k Key) {
	if k == KeySpace {
		g.paused = !g.paused
		return
	}
	d, ok := directionFor(k)
	if !ok {
		return
	}
	// An instant reversal would be an immediate self-collision.
	if d == g.direction.Opposite() {
		return
	}
	g.direction = d
}

func directionFor(k Key) (Direction, bool) {
	switch k {
	case KeyLeft:
		return DirLeft, true
	case KeyUp:
		return DirUp, true
	case KeyRight:
		return DirRight, true
	case KeyDown:
		return DirDown, true
	default:
		return 0, false
	}
}

// step runs one gameplay update. The pipeline order is load-bearing: the
// eaten check and the motion both read the head position from before this
// tick's move, so growth lands one tick after the head reaches the fruit.
func (g *Game) step() {
	if g.isDead || g.paused {
		return
	}
	g.checkWallHit()
	g.checkSelfHit()
	g.checkAteFruit()
	g.advance()
	g.settleFruit()
}

// checkWallHit kills the snake when the head already sits on the boundary
// cell in the direction of travel. The head never leaves the grid.
func (g *Game) checkWallHit() {
	head := g.head()
	edge := core.GridSize - 1
	switch g.direction {
	case DirLeft:
		if head.X == 0 {
			g.isDead = true
		}
	case DirRight:
		if head.X == edge {
			g.isDead = true
		}
	case DirUp:
		if head.Y == 0 {
			g.isDead = true
		}
	case DirDown:
		if head.Y == edge {
			g.isDead = true
		}
	}
}

// checkSelfHit kills the snake when the head shares a cell with any
// non-head segment.
func (g *Game) checkSelfHit() {
	head := g.head()
	for _, seg := range g.snake[1:] {
		if core.SamePosition(head, seg) {
			g.isDead = true
			return
		}
	}
}

func (g *Game) checkAteFruit() {
	g.ateFruit = g.fruit != nil && core.SamePosition(g.head(), *g.fruit)
}

// advance moves the snake one cell in the current direction, growing by one
// segment on an eating tick. Skipped when dead so the body freezes at its
// last live position. Coordinates are not clamped; leaving the grid is
// prevented by checkWallHit, not here.
func (g *Game) advance() {
	if g.isDead {
		return
	}
	head := g.head()
	var newHead core.Block
	switch g.direction {
	case DirUp:
		newHead = core.Block{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = core.Block{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = core.Block{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = core.Block{X: head.X + 1, Y: head.Y}
	}

	tail := g.snake
	if !g.ateFruit {
		tail = tail[:len(tail)-1]
	}
	g.snake = append([]core.Block{newHead}, tail...)
}

// settleFruit consumes the fruit on an eating tick; otherwise it persists.
func (g *Game) settleFruit() {
	if g.ateFruit {
		g.fruit = nil
	}
}

// applySpawn accepts a fruit draw. Draws are requested only on fruit-free
// live ticks; a rejected roll or a stale draw arriving after a fruit
// appeared is discarded.
func (g *Game) applySpawn(ev FruitSpawn) {
	if ev.Roll != 0 || g.fruit != nil {
		return
	}
	f := ev.Candidate
	g.fruit = &f
}

// head returns the first body segment. An empty body is unreachable from the
// initial state; treat it as a corrupted invariant rather than defaulting.
func (g *Game) head() core.Block {
	if len(g.snake) == 0 {
		panic("snake: empty body")
	}
	return g.snake[0]
}

// NeedsFruit reports whether the platform should request a spawn draw after
// the current tick: only live, unpaused, fruit-free states roll.
func (g *Game) NeedsFruit() bool {
	return !g.isDead && !g.paused && g.fruit == nil
}
