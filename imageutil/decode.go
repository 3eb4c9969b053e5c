// Package imageutil adapts decoded raster images to the sequential
// row-pull interface the converter consumes.
package imageutil

import (
	"fmt"
	"image"
	"io"

	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Rows serves a decoded image as scanlines of 8-bit samples, one row
// per call. Grayscale images yield one component per pixel, everything
// else three (RGB); alpha is dropped. Width, height, and component
// count are available before the first row is read.
type Rows struct {
	img        image.Image
	gray       *image.Gray
	width      int
	height     int
	components int
	buf        []uint8
}

// Decode reads an image from r and returns its row adapter. The
// format is detected from the stream; JPEG, PNG, GIF, TIFF, BMP, and
// WebP are supported.
func Decode(r io.Reader) (*Rows, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Rows {
	bounds := img.Bounds()
	rows := &Rows{
		img:        img,
		width:      bounds.Dx(),
		height:     bounds.Dy(),
		components: 3,
	}
	if gray, ok := img.(*image.Gray); ok {
		rows.gray = gray
		rows.components = 1
	}
	rows.buf = make([]uint8, rows.width*rows.components)
	return rows
}

// Width returns the source image width in pixels.
func (r *Rows) Width() int {
	return r.width
}

// Height returns the source image height in pixels.
func (r *Rows) Height() int {
	return r.height
}

// Components returns the number of 8-bit samples per pixel.
func (r *Rows) Components() int {
	return r.components
}

// Row returns the samples of row y. The slice is reused by the next
// call.
func (r *Rows) Row(y int) ([]uint8, error) {
	if y < 0 || y >= r.height {
		return nil, fmt.Errorf("row %d out of range [0,%d)", y, r.height)
	}

	bounds := r.img.Bounds()
	if r.gray != nil {
		offset := r.gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(r.buf, r.gray.Pix[offset:offset+r.width])
		return r.buf, nil
	}

	for x := 0; x < r.width; x++ {
		red, green, blue, _ := r.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		r.buf[x*3] = uint8(red >> 8)
		r.buf[x*3+1] = uint8(green >> 8)
		r.buf[x*3+2] = uint8(blue >> 8)
	}
	return r.buf, nil
}
