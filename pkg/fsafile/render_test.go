package fsafile

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderSVG(t *testing.T) {
	a, err := Parse([]byte(sampleInput))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	opts := DefaultSVGOptions()
	opts.Title = "sample"
	svg := RenderSVG(a, opts)

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("Output is not a complete SVG document")
	}
	if !strings.Contains(svg, ">sample</text>") {
		t.Error("Missing title text")
	}
	if !strings.Contains(svg, ">q1</text>") || !strings.Contains(svg, ">q2</text>") {
		t.Error("Missing state labels")
	}
	// One circle per state plus the inner ring of the accepting state.
	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("Expected 3 circles, got %d", got)
	}
}

func TestRenderSVGSelfLoop(t *testing.T) {
	input := strings.Replace(sampleInput,
		"transitions=[q1>a>q2,q2>b>q1]",
		"transitions=[q1>a>q1,q1>b>q2]", 1)
	a, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	svg := RenderSVG(a, DefaultSVGOptions())
	// States (2) + accepting ring (1) + self-loop circle (1).
	if got := strings.Count(svg, "<circle"); got != 4 {
		t.Errorf("Expected 4 circles with a self-loop, got %d", got)
	}
}

func TestRenderPNG(t *testing.T) {
	a, err := Parse([]byte(sampleInput))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf bytes.Buffer
	if err := RenderPNG(a, DefaultPNGOptions(), &buf); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("Output does not start with the PNG signature")
	}
}
