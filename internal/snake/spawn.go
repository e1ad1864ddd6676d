package snake

import (
	"math/rand"

	"github.com/vovakirdan/vector-snake/internal/core"
)

// RollSides is the number of faces on the spawn acceptance die. A fruit
// appears only when the roll lands on zero, so with one draw per fruit-free
// tick the spawn latency is geometric with p = 1/RollSides.
const RollSides = 10

// Spawner produces fruit-spawn draws from a seeded source. It lives outside
// the Game so the state machine stays free of randomness.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner with reproducible draws for the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Draw produces one candidate cell and one acceptance roll. A rejected draw
// is simply discarded by the game; there is no retry within a tick.
// The candidate is not checked against the snake body, so an accepted fruit
// can appear under a segment.
// TODO: decide whether a fruit landing under the snake should reroll.
func (s *Spawner) Draw() FruitSpawn {
	return FruitSpawn{
		Candidate: core.Block{
			X: s.rng.Intn(core.GridSize),
			Y: s.rng.Intn(core.GridSize),
		},
		Roll: s.rng.Intn(RollSides),
	}
}
