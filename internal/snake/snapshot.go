package snake

import (
	"github.com/vovakirdan/vector-snake/internal/core"
)

// Snapshot is a read-only copy of the game state handed to renderers and
// tests. Mutating a snapshot never affects the live game.
type Snapshot struct {
	Direction Direction
	Width     int
	Height    int
	Body      []core.Block // head first
	Fruit     *core.Block  // nil when absent
	Dead      bool
	Paused    bool
	AteFruit  bool
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	body := make([]core.Block, len(g.snake))
	copy(body, g.snake)

	var fruit *core.Block
	if g.fruit != nil {
		f := *g.fruit
		fruit = &f
	}

	return Snapshot{
		Direction: g.direction,
		Width:     g.width,
		Height:    g.height,
		Body:      body,
		Fruit:     fruit,
		Dead:      g.isDead,
		Paused:    g.paused,
		AteFruit:  g.ateFruit,
	}
}

// Head returns the snapshot's head segment.
func (s Snapshot) Head() core.Block {
	return s.Body[0]
}
