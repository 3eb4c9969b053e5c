package imgtoa

// Resampler accumulates source image rows into a Grid. It consumes
// rows strictly top to bottom, one call per row, carrying a cursor for
// the last destination row touched. Each image gets a fresh Resampler;
// the cursor is never reused across images.
//
// Vertically the same loop serves both directions: when downsampling,
// several consecutive source rows land in one destination row and the
// later Normalize turns the sum into a box-filter average; when
// upsampling, a single source row is replicated into every destination
// row up to its mapping. Horizontally the grid's lookup table picks
// one source column per destination column.
type Resampler struct {
	grid          *Grid
	components    int
	verticalRatio float64
	lastRow       int
}

// NewResampler prepares accumulation of srcHeight source rows with the
// given components per pixel into g.
func NewResampler(g *Grid, srcHeight, components int) *Resampler {
	ratio := 0.0
	if srcHeight > 1 {
		ratio = float64(g.Height-1) / float64(srcHeight-1)
	}
	return &Resampler{
		grid:          g,
		components:    components,
		verticalRatio: ratio,
	}
}

// ConsumeRow folds one source row into the grid. srcRow must increase
// by one on every call, starting at zero; samples holds the row's
// 8-bit values, components per pixel.
func (r *Resampler) ConsumeRow(srcRow int, samples []uint8) {
	destRow := round(r.verticalRatio * float64(srcRow))
	if destRow > r.grid.Height-1 {
		destRow = r.grid.Height - 1
	}

	// catch up every destination row since the previous call
	for r.lastRow <= destRow {
		offset := r.lastRow * r.grid.Width
		for x := 0; x < r.grid.Width; x++ {
			start := r.grid.colLookup[x]
			r.grid.cells[offset+x] += Intensity(samples[start : start+r.components])
		}
		r.grid.rowCounts[r.lastRow]++
		r.lastRow++
	}
	r.lastRow = destRow
}
