package snake

import (
	"testing"

	"github.com/vovakirdan/vector-snake/internal/core"
)

func TestDrawWithinBounds(t *testing.T) {
	sp := NewSpawner(42)

	for range 1000 {
		d := sp.Draw()
		if d.Candidate.X < 0 || d.Candidate.X >= core.GridSize {
			t.Fatalf("Candidate X = %d out of grid", d.Candidate.X)
		}
		if d.Candidate.Y < 0 || d.Candidate.Y >= core.GridSize {
			t.Fatalf("Candidate Y = %d out of grid", d.Candidate.Y)
		}
		if d.Roll < 0 || d.Roll >= RollSides {
			t.Fatalf("Roll = %d out of range [0,%d)", d.Roll, RollSides)
		}
	}
}

func TestDrawDeterminism(t *testing.T) {
	a := NewSpawner(1234)
	b := NewSpawner(1234)

	for i := range 100 {
		da, db := a.Draw(), b.Draw()
		if da != db {
			t.Fatalf("Draw %d diverged: %+v vs %+v", i, da, db)
		}
	}
}

func TestSpawnProbability(t *testing.T) {
	sp := NewSpawner(99)

	const n = 20000
	hits := 0
	for range n {
		if sp.Draw().Roll == 0 {
			hits++
		}
	}

	// One roll face in ten accepts, so the hit rate should sit near 0.1.
	rate := float64(hits) / n
	if rate < 0.08 || rate > 0.12 {
		t.Errorf("Acceptance rate = %.3f over %d draws, want ~0.1", rate, n)
	}
}
