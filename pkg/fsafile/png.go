// Native PNG rendering for automaton diagrams.
// Mirrors the SVG renderer output using Go's image packages.

package fsafile

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/fsa2re/pkg/fsa"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width       int
	Height      int
	Padding     int
	StateRadius int
	FontSize    int
	LabelSize   int
	Title       string
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:       800,
		Height:      600,
		Padding:     80,
		StateRadius: 28,
		FontSize:    14,
	}
}

// RenderPNG renders the automaton as a PNG image and writes it to w.
func RenderPNG(a *fsa.Automaton, opts PNGOptions, w io.Writer) error {
	if opts.LabelSize == 0 {
		opts.LabelSize = opts.FontSize - 2
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	labelFace, err := newFace(float64(opts.LabelSize))
	if err != nil {
		return err
	}
	stateFace, err := newFace(float64(opts.FontSize))
	if err != nil {
		return err
	}

	black := color.RGBA{A: 255}
	positions := CircularLayout(a, opts.Width, opts.Height, opts.Padding)
	r := float64(opts.StateRadius)

	if opts.Title != "" {
		titleFace, err := newFace(float64(opts.FontSize + 4))
		if err != nil {
			return err
		}
		drawTextCentred(img, titleFace, opts.Title, float64(opts.Width)/2, float64(opts.FontSize+12), black)
	}

	// Edges first so the state circles overdraw their ends.
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
		label := strings.Join(labels[key], ", ")
		from := positions[key.from]
		to := positions[key.to]

		if key.from == key.to {
			loop := Point{X: from.X, Y: from.Y - r*1.9}
			drawCircle(img, loop, r*0.7, black, false)
			drawTextCentred(img, labelFace, label, loop.X, loop.Y-r*0.9, black)
			continue
		}

		start, end := edgeEndpoints(from, to, r)
		drawLine(img, start, end, black)
		drawArrowHead(img, start, end, black)

		mx := (start.X + end.X) / 2
		my := (start.Y + end.Y) / 2
		dx := end.X - start.X
		dy := end.Y - start.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			mx += -dy / dist * 12
			my += dx / dist * 12
		}
		drawTextCentred(img, labelFace, label, mx, my, black)
	}

	// Entry arrow for the initial state.
	if p, ok := positions[a.Initial]; ok {
		start := Point{X: p.X - r*2.5, Y: p.Y}
		end := Point{X: p.X - r, Y: p.Y}
		drawLine(img, start, end, black)
		drawArrowHead(img, start, end, black)
	}

	for _, state := range a.States {
		p := positions[state]
		drawCircle(img, p, r, black, true)
		if a.IsAccepting(state) {
			drawCircle(img, p, r-4, black, false)
		}
		drawTextCentred(img, stateFace, state, p.X, p.Y+float64(opts.FontSize)/3, black)
	}

	return png.Encode(w, img)
}

func newFace(size float64) (font.Face, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawCircle rasterises a one-pixel ring; fill whitens the interior first so
// edges passing underneath are hidden.
func drawCircle(img *image.RGBA, c Point, r float64, col color.Color, fill bool) {
	x0 := int(c.X - r - 2)
	x1 := int(c.X + r + 2)
	y0 := int(c.Y - r - 2)
	y1 := int(c.Y + r + 2)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := math.Hypot(float64(x)-c.X, float64(y)-c.Y)
			switch {
			case d <= r-1 && fill:
				img.Set(x, y, color.White)
			case d >= r-1 && d <= r+0.5:
				img.Set(x, y, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, a, b Point, col color.Color) {
	steps := int(math.Hypot(b.X-a.X, b.Y-a.Y)) * 2
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.X + (b.X-a.X)*t
		y := a.Y + (b.Y-a.Y)*t
		img.Set(int(x+0.5), int(y+0.5), col)
	}
}

func drawArrowHead(img *image.RGBA, from, to Point, col color.Color) {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	const length = 9.0
	const spread = 0.45
	for _, a := range []float64{angle + math.Pi - spread, angle + math.Pi + spread} {
		tip := Point{
			X: to.X + length*math.Cos(a),
			Y: to.Y + length*math.Sin(a),
		}
		drawLine(img, to, tip, col)
	}
}

func drawTextCentred(img *image.RGBA, face font.Face, text string, x, y float64, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*64) - width/2,
		Y: fixed.Int26_6(y * 64),
	}
	d.DrawString(text)
}
