package fsafile

import (
	"math"
	"testing"

	"github.com/ha1tch/fsa2re/pkg/fsa"
)

func layoutFSA(states ...string) *fsa.Automaton {
	a := fsa.New(fsa.TypeDeterministic)
	for _, s := range states {
		a.AddState(s)
	}
	return a
}

func TestCircularLayoutSingleState(t *testing.T) {
	positions := CircularLayout(layoutFSA("q0"), 800, 600, 80)
	p, ok := positions["q0"]
	if !ok {
		t.Fatal("Missing position for q0")
	}
	if p.X != 400 || p.Y != 300 {
		t.Errorf("Expected centre (400,300), got (%v,%v)", p.X, p.Y)
	}
}

func TestCircularLayoutBounds(t *testing.T) {
	a := layoutFSA("q0", "q1", "q2", "q3", "q4")
	positions := CircularLayout(a, 800, 600, 80)

	if len(positions) != 5 {
		t.Fatalf("Expected 5 positions, got %d", len(positions))
	}

	seen := make(map[Point]bool)
	for state, p := range positions {
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
			t.Errorf("State %s out of bounds: (%v,%v)", state, p.X, p.Y)
		}
		if seen[p] {
			t.Errorf("State %s shares a position with another state", state)
		}
		seen[p] = true
	}
}

func TestEdgeEndpoints(t *testing.T) {
	from := Point{X: 0, Y: 0}
	to := Point{X: 100, Y: 0}
	start, end := edgeEndpoints(from, to, 20)

	if math.Abs(start.X-20) > 1e-9 || math.Abs(start.Y) > 1e-9 {
		t.Errorf("Expected start (20,0), got (%v,%v)", start.X, start.Y)
	}
	if math.Abs(end.X-80) > 1e-9 || math.Abs(end.Y) > 1e-9 {
		t.Errorf("Expected end (80,0), got (%v,%v)", end.X, end.Y)
	}

	// Coincident points must not divide by zero.
	start, end = edgeEndpoints(from, from, 20)
	if start != from || end != from {
		t.Error("Coincident endpoints should pass through unchanged")
	}
}
