package snake

import (
	"time"

	"github.com/vovakirdan/vector-snake/internal/core"
)

// Key identifies a keyboard input the game reacts to. Codes outside the
// known set collapse to KeyUnknown, which every handler treats as a no-op.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
)

// Browser-style key codes accepted by KeyFromCode.
const (
	codeSpace = 32
	codeLeft  = 37
	codeUp    = 38
	codeRight = 39
	codeDown  = 40
)

// KeyFromCode maps a raw key-down code to a Key.
func KeyFromCode(code int) Key {
	switch code {
	case codeSpace:
		return KeySpace
	case codeLeft:
		return KeyLeft
	case codeUp:
		return KeyUp
	case codeRight:
		return KeyRight
	case codeDown:
		return KeyDown
	default:
		return KeyUnknown
	}
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	default:
		return "unknown"
	}
}

// Event is the closed set of messages the game reacts to. Exactly one event
// is applied at a time, and each application completes before the next one
// is dispatched.
type Event interface {
	isEvent()
}

// Tick is one fixed-interval timer event driving exactly one gameplay
// update. The timestamp is carried for the platform's benefit; the game
// itself ignores it.
type Tick struct {
	At time.Time
}

// KeyPressed reports a single key-down event.
type KeyPressed struct {
	Key Key
}

// Resized reports new viewport dimensions. It has no gameplay effect; the
// dimensions are stored for the render projection.
type Resized struct {
	Width, Height int
}

// FruitSpawn carries one random draw: a candidate cell and an acceptance
// roll in [0, RollSides). The draw takes effect only when the roll lands on
// zero and no fruit is on the board.
type FruitSpawn struct {
	Candidate core.Block
	Roll      int
}

func (Tick) isEvent()       {}
func (KeyPressed) isEvent() {}
func (Resized) isEvent()    {}
func (FruitSpawn) isEvent() {}
