package imgtoa

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// fontSize is the point size used for TTF faces, chosen to sit close
// to the cell height of the built-in 7x13 bitmap face.
const fontSize = 13

// LoadFontFace loads a TrueType font from path and returns a face
// sized for character-cell rendering.
func LoadFontFace(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// RenderImage rasterizes the normalized grid into an image, one fixed
// character cell per grid cell, dark glyphs on a white background.
// A nil face selects the built-in 7x13 bitmap face. The characters are
// the same ones Render would emit, flips and inversion included.
func RenderImage(g *Grid, opts Options, face font.Face) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}

	metrics := face.Metrics()
	cellHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	cellWidth := cellHeight / 2
	if adv, ok := face.GlyphAdvance('M'); ok && adv.Ceil() > 0 {
		cellWidth = adv.Ceil()
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Width*cellWidth, g.Height*cellHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	palette := []rune(opts.Palette)
	line := make([]rune, g.Width)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}

	for y := 0; y < g.Height; y++ {
		renderLine(g, y, palette, opts, line)
		for x, ch := range line {
			// place every glyph at its cell origin so proportional
			// fonts still line up in columns
			d.Dot = fixed.P(x*cellWidth, y*cellHeight+ascent)
			d.DrawString(string(ch))
		}
	}

	return img
}

// WritePNG renders the grid with the face named by opts.FontPath (or
// the built-in face) and encodes it as PNG at path.
func WritePNG(g *Grid, opts Options, path string) error {
	var face font.Face
	if opts.FontPath != "" {
		var err error
		face, err = LoadFontFace(opts.FontPath)
		if err != nil {
			return err
		}
		defer face.Close()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, RenderImage(g, opts, face))
}
