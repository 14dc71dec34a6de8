package fsafile

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/ha1tch/fsa2re/pkg/fsa"
)

// SVGOptions controls native SVG rendering.
type SVGOptions struct {
	Width       int    // canvas width in pixels
	Height      int    // canvas height in pixels
	Padding     int    // padding around the state circle ring
	StateRadius int    // radius of state circles
	FontSize    int    // font size for state labels
	LabelSize   int    // font size for transition labels (0 = FontSize - 2)
	Title       string // diagram title
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       800,
		Height:      600,
		Padding:     80,
		StateRadius: 28,
		FontSize:    14,
	}
}

// RenderSVG renders the automaton as a standalone SVG document with states
// on a circular layout, a doubled ring for accepting states and an entry
// arrow on the initial state.
func RenderSVG(a *fsa.Automaton, opts SVGOptions) string {
	if opts.LabelSize == 0 {
		opts.LabelSize = opts.FontSize - 2
	}

	positions := CircularLayout(a, opts.Width, opts.Height, opts.Padding)
	r := float64(opts.StateRadius)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		opts.Width, opts.Height, opts.Width, opts.Height))
	sb.WriteString("  <defs>\n")
	sb.WriteString("    <marker id=\"arrow\" markerWidth=\"10\" markerHeight=\"8\" refX=\"9\" refY=\"4\" orient=\"auto\">\n")
	sb.WriteString("      <path d=\"M0,0 L10,4 L0,8 z\" fill=\"black\"/>\n")
	sb.WriteString("    </marker>\n")
	sb.WriteString("  </defs>\n")
	sb.WriteString("  <rect width=\"100%\" height=\"100%\" fill=\"white\"/>\n")

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-size=\"%d\" font-family=\"Helvetica\">%s</text>\n",
			opts.Width/2, opts.FontSize+8, opts.FontSize+4, html.EscapeString(opts.Title)))
	}

	// Transitions grouped by (from, to) so parallel symbols share one edge.
	type edge struct{ from, to string }
	labels := make(map[edge][]string)
	var order []edge
	for _, t := range a.Transitions {
		key := edge{t.From, t.To}
		if _, seen := labels[key]; !seen {
			order = append(order, key)
		}
		labels[key] = append(labels[key], t.Symbol)
	}

	for _, key := range order {
		label := html.EscapeString(strings.Join(labels[key], ", "))
		from := positions[key.from]
		to := positions[key.to]

		if key.from == key.to {
			// Self-loop drawn as a small circle above the node.
			loopY := from.Y - r*1.9
			sb.WriteString(fmt.Sprintf(
				"  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"none\" stroke=\"black\"/>\n",
				from.X, loopY, r*0.7))
			sb.WriteString(fmt.Sprintf(
				"  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-size=\"%d\" font-family=\"Helvetica\">%s</text>\n",
				from.X, loopY-r*0.9, opts.LabelSize, label))
			continue
		}

		start, end := edgeEndpoints(from, to, r)
		sb.WriteString(fmt.Sprintf(
			"  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"black\" marker-end=\"url(#arrow)\"/>\n",
			start.X, start.Y, end.X, end.Y))

		// Label slightly off the midpoint, on the left-hand side of the
		// direction of travel so opposing edges do not collide.
		mx := (start.X + end.X) / 2
		my := (start.Y + end.Y) / 2
		dx := end.X - start.X
		dy := end.Y - start.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			mx += -dy / dist * 12
			my += dx / dist * 12
		}
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-size=\"%d\" font-family=\"Helvetica\">%s</text>\n",
			mx, my, opts.LabelSize, label))
	}

	// Entry arrow for the initial state.
	if start, ok := positions[a.Initial]; ok {
		sb.WriteString(fmt.Sprintf(
			"  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"black\" marker-end=\"url(#arrow)\"/>\n",
			start.X-r*2.5, start.Y, start.X-r, start.Y))
	}

	// State circles and labels on top of the edges.
	for _, state := range a.States {
		p := positions[state]
		sb.WriteString(fmt.Sprintf(
			"  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"white\" stroke=\"black\" stroke-width=\"1.5\"/>\n",
			p.X, p.Y, r))
		if a.IsAccepting(state) {
			sb.WriteString(fmt.Sprintf(
				"  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"none\" stroke=\"black\"/>\n",
				p.X, p.Y, r-4))
		}
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" dominant-baseline=\"central\" font-size=\"%d\" font-family=\"Helvetica\">%s</text>\n",
			p.X, p.Y, opts.FontSize, html.EscapeString(state)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
