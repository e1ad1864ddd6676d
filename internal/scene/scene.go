// Package scene projects game snapshots onto a resolution-independent set of
// axis-aligned rectangles. Projection is a pure function of state; drawing
// surfaces (terminal cells, SVG documents) consume the result.
package scene

import (
	"github.com/vovakirdan/vector-snake/internal/core"
	"github.com/vovakirdan/vector-snake/internal/snake"
)

// Kind classifies a scene rectangle.
type Kind int

const (
	KindBackground Kind = iota
	KindSegment
	KindFruit
)

// Rect is one axis-aligned rectangle in output pixels.
type Rect struct {
	X, Y, W, H float64
	Kind       Kind
}

// Scene is the full drawable projection of one game state: a background
// rectangle followed by one filled square per snake segment and one for the
// fruit when present.
type Scene struct {
	Width  float64
	Height float64
	Rects  []Rect
}

// Project maps a snapshot onto unit squares scaled uniformly so the logical
// grid fits the smaller viewport dimension. The output is always square.
func Project(snap snake.Snapshot) Scene {
	side := min(snap.Width, snap.Height)
	scale := float64(side) / core.GridSize
	size := scale * core.GridSize

	rects := make([]Rect, 0, len(snap.Body)+2)
	rects = append(rects, Rect{W: size, H: size, Kind: KindBackground})
	for _, seg := range snap.Body {
		rects = append(rects, cell(seg, scale, KindSegment))
	}
	if snap.Fruit != nil {
		rects = append(rects, cell(*snap.Fruit, scale, KindFruit))
	}

	return Scene{Width: size, Height: size, Rects: rects}
}

func cell(b core.Block, scale float64, k Kind) Rect {
	return Rect{
		X:    float64(b.X) * scale,
		Y:    float64(b.Y) * scale,
		W:    scale,
		H:    scale,
		Kind: k,
	}
}
