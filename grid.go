package imgtoa

import "fmt"

// maxGridCells caps the accumulation grid at 64M cells (512 MB of
// float64 sums). Dimensions beyond this are treated as an allocation
// failure rather than handed to the runtime.
const maxGridCells = 1 << 26

// Grid is the destination accumulation buffer for one image. Cells
// hold running intensity sums until Normalize divides each row by the
// number of source rows that contributed to it; after that the grid is
// read-only. A Grid is never shared between images.
type Grid struct {
	Width  int
	Height int

	cells     []float64
	rowCounts []int
	colLookup []int
}

// NewGrid allocates a zeroed width x height grid and builds the
// horizontal source-column lookup table for a source image srcWidth
// samples wide with the given number of components per pixel. The
// lookup performs nearest-neighbor column selection; there is no
// horizontal averaging.
func NewGrid(width, height, srcWidth, components int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid output dimension %dx%d", width, height)
	}
	if width > maxGridCells/height {
		return nil, fmt.Errorf("not enough memory for output dimension %dx%d", width, height)
	}

	g := &Grid{
		Width:     width,
		Height:    height,
		cells:     make([]float64, width*height),
		rowCounts: make([]int, height),
		colLookup: make([]int, width),
	}

	ratio := float64(srcWidth) / float64(width)
	for x := 0; x < width; x++ {
		g.colLookup[x] = int(float64(x)*ratio) * components
	}

	return g, nil
}

// Cell returns the value at column x of row y.
func (g *Grid) Cell(x, y int) float64 {
	return g.cells[y*g.Width+x]
}

// RowCount returns how many source rows have contributed to row y.
func (g *Grid) RowCount(y int) int {
	return g.rowCounts[y]
}

// Normalize divides every cell by its row's contribution count,
// turning the accumulated sums into averages. Rows that received no
// contributions are left at zero. Normalize must run exactly once per
// image, after all source rows have been consumed; it is not
// idempotent.
func (g *Grid) Normalize() {
	for y, offset := 0, 0; y < g.Height; y, offset = y+1, offset+g.Width {
		if g.rowCounts[y] == 0 {
			continue
		}
		n := float64(g.rowCounts[y])
		for x := 0; x < g.Width; x++ {
			g.cells[offset+x] /= n
		}
	}
}
