package imgtoa

import (
	"bufio"
	"io"
)

// renderLine builds the characters for output row y. Flips are applied
// here, at render time only: flipY selects the mirrored grid row,
// flipX mirrors the character placement within the line. The stored
// grid is never modified, so flipping an axis twice reproduces the
// unflipped output.
func renderLine(g *Grid, y int, palette []rune, opts Options, line []rune) {
	srcRow := y
	if opts.FlipY {
		srcRow = g.Height - y - 1
	}
	for x := 0; x < g.Width; x++ {
		idx := QuantizeIndex(g.Cell(x, srcRow), len(palette), opts.Invert)
		pos := x
		if opts.FlipX {
			pos = g.Width - x - 1
		}
		line[pos] = palette[idx]
	}
}

// Render writes the normalized grid as text, one newline-terminated
// line per destination row, with no trailing padding.
func Render(g *Grid, opts Options, out io.Writer) error {
	palette := []rune(opts.Palette)
	line := make([]rune, g.Width)

	w := bufio.NewWriter(out)
	for y := 0; y < g.Height; y++ {
		renderLine(g, y, palette, opts, line)
		if _, err := w.WriteString(string(line)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
