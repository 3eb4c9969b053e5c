// Package imgtoa turns decoded raster images into character-grid
// renderings. The source image is resampled onto a destination grid
// with box-filter averaging on the vertical axis and nearest-neighbor
// selection on the horizontal axis, and each cell's averaged
// brightness is quantized into an ordered character palette.
package imgtoa

import (
	"fmt"
	"io"
	"os"
)

// RowSource is the decoding collaborator consumed by the converter.
// Header metadata must be available before the first row is requested;
// rows are then pulled strictly in top-to-bottom order.
type RowSource interface {
	// Width and Height are the source image dimensions in pixels.
	Width() int
	Height() int

	// Components is the number of 8-bit samples per pixel.
	Components() int

	// Row returns the samples of row y, Width()*Components() bytes.
	// The returned slice is only valid until the next call.
	Row(y int) ([]uint8, error)
}

// BuildGrid runs the accumulation pipeline for one image: resolve the
// output dimensions, allocate a fresh grid, fold in every source row
// in order, and normalize once. The returned grid is ready for
// rendering and is not touched again by this package.
func BuildGrid(src RowSource, opts Options) (*Grid, error) {
	width, height, err := ResolveSize(src.Width(), src.Height(), opts)
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(width, height, src.Width(), src.Components())
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		printInfo(src, width, height, opts)
	}

	rs := NewResampler(grid, src.Height(), src.Components())
	for y := 0; y < src.Height(); y++ {
		row, err := src.Row(y)
		if err != nil {
			return nil, fmt.Errorf("decoding row %d: %w", y, err)
		}
		rs.ConsumeRow(y, row)
	}

	grid.Normalize()
	return grid, nil
}

// Convert is the full pipeline for one image: BuildGrid followed by a
// text rendering to out.
func Convert(src RowSource, opts Options, out io.Writer) error {
	grid, err := BuildGrid(src, opts)
	if err != nil {
		return err
	}
	return Render(grid, opts, out)
}

func printInfo(src RowSource, width, height int, opts Options) {
	fmt.Fprintf(os.Stderr, "Source width: %d\n", src.Width())
	fmt.Fprintf(os.Stderr, "Source height: %d\n", src.Height())
	fmt.Fprintf(os.Stderr, "Source color components: %d\n", src.Components())
	fmt.Fprintf(os.Stderr, "Output width: %d\n", width)
	fmt.Fprintf(os.Stderr, "Output height: %d\n", height)
	fmt.Fprintf(os.Stderr, "Output palette (%d chars): '%s'\n\n",
		len([]rune(opts.Palette)), opts.Palette)
}
