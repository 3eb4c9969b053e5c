package imgtoa

import (
	"strings"
	"testing"
)

// testGrid returns a normalized 3x2 grid with distinct intensities:
//
//	0.0 0.5 1.0
//	1.0 0.5 0.0
func testGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(3, 2, 3, 1)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.cells = []float64{0, 0.5, 1, 1, 0.5, 0}
	return g
}

func renderToLines(t *testing.T, g *Grid, opts Options) []string {
	t.Helper()
	var buf strings.Builder
	if err := Render(g, opts, &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("Output must end with a newline")
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestRenderBasic(t *testing.T) {
	opts := DefaultOptions()
	opts.Palette = "#+ " // dark, mid, bright

	lines := renderToLines(t, testGrid(t), opts)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	// intensity 0 -> last char ' ', 0.5 -> '+', 1 -> first char '#'
	if lines[0] != " +#" {
		t.Errorf("Expected %q, got %q", " +#", lines[0])
	}
	if lines[1] != "#+ " {
		t.Errorf("Expected %q, got %q", "#+ ", lines[1])
	}
}

func TestRenderInvert(t *testing.T) {
	opts := DefaultOptions()
	opts.Palette = "#+ "
	opts.Invert = true

	lines := renderToLines(t, testGrid(t), opts)
	if lines[0] != "#+ " {
		t.Errorf("Expected %q, got %q", "#+ ", lines[0])
	}
	if lines[1] != " +#" {
		t.Errorf("Expected %q, got %q", " +#", lines[1])
	}
}

func TestRenderFlipX(t *testing.T) {
	opts := DefaultOptions()
	opts.Palette = "#+ "

	plain := renderToLines(t, testGrid(t), opts)

	opts.FlipX = true
	flipped := renderToLines(t, testGrid(t), opts)

	for i := range plain {
		if flipped[i] != reverse(plain[i]) {
			t.Errorf("Line %d: expected %q, got %q", i, reverse(plain[i]), flipped[i])
		}
	}
}

func TestRenderFlipY(t *testing.T) {
	opts := DefaultOptions()
	opts.Palette = "#+ "

	plain := renderToLines(t, testGrid(t), opts)

	opts.FlipY = true
	flipped := renderToLines(t, testGrid(t), opts)

	if len(flipped) != len(plain) {
		t.Fatalf("Line count changed: %d vs %d", len(flipped), len(plain))
	}
	for i := range plain {
		if flipped[i] != plain[len(plain)-i-1] {
			t.Errorf("Line %d: expected %q, got %q", i, plain[len(plain)-i-1], flipped[i])
		}
	}
}

func TestRenderFlipInvolution(t *testing.T) {
	// Flipping is applied at render time only, so mirroring a flipped
	// rendering reproduces the unflipped output exactly.
	opts := DefaultOptions()
	opts.Palette = "#+ "
	plain := renderToLines(t, testGrid(t), opts)

	opts.FlipX = true
	flippedX := renderToLines(t, testGrid(t), opts)
	for i := range plain {
		if reverse(flippedX[i]) != plain[i] {
			t.Errorf("FlipX involution broken at line %d", i)
		}
	}

	opts.FlipX = false
	opts.FlipY = true
	flippedY := renderToLines(t, testGrid(t), opts)
	for i := range plain {
		if flippedY[len(plain)-i-1] != plain[i] {
			t.Errorf("FlipY involution broken at line %d", i)
		}
	}
}

func TestRenderLineWidth(t *testing.T) {
	opts := DefaultOptions()
	for _, line := range renderToLines(t, testGrid(t), opts) {
		if n := len([]rune(line)); n != 3 {
			t.Errorf("Expected 3 characters per line, got %d (%q)", n, line)
		}
	}
}

func TestRenderUnicodePalette(t *testing.T) {
	opts := DefaultOptions()
	opts.Palette = "█▓ "

	lines := renderToLines(t, testGrid(t), opts)
	if lines[0] != " ▓█" {
		t.Errorf("Expected %q, got %q", " ▓█", lines[0])
	}
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
