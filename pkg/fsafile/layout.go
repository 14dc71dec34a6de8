package fsafile

import (
	"math"

	"github.com/ha1tch/fsa2re/pkg/fsa"
)

// Point is a diagram coordinate in pixels.
type Point struct {
	X, Y float64
}

// CircularLayout places states evenly on a circle inside the canvas, in
// sorted state order starting at twelve o'clock and proceeding clockwise.
// A single state sits at the centre.
func CircularLayout(a *fsa.Automaton, width, height, padding int) map[string]Point {
	positions := make(map[string]Point, len(a.States))
	n := len(a.States)
	if n == 0 {
		return positions
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	if n == 1 {
		positions[a.States[0]] = Point{X: cx, Y: cy}
		return positions
	}

	radius := math.Min(cx, cy) - float64(padding)
	if radius < 1 {
		radius = 1
	}

	for i, state := range a.States {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		positions[state] = Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return positions
}

// edgeEndpoints trims the segment between two state centres so it starts and
// ends on the node circles rather than at their centres.
func edgeEndpoints(from, to Point, radius float64) (Point, Point) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return from, to
	}
	ux := dx / dist
	uy := dy / dist
	start := Point{X: from.X + ux*radius, Y: from.Y + uy*radius}
	end := Point{X: to.X - ux*radius, Y: to.Y - uy*radius}
	return start, end
}
