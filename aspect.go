package imgtoa

import "fmt"

// round rounds half up, matching floor(x+0.5) for non-negative x.
func round(x float64) int {
	return int(x + 0.5)
}

// maxAspectIterations bounds the dimension bump loop in ResolveSize.
// The loop terminates long before this for any real image; the ceiling
// only guards against pathological metadata.
const maxAspectIterations = 1 << 16

// ResolveSize returns the output grid dimensions for a source image of
// srcWidth x srcHeight. An axis marked derive in opts is computed from
// the source aspect ratio; the factor 2 (and its inverse 0.5)
// compensates for character cells being roughly twice as tall as they
// are wide. If the derived dimension rounds to zero, the fixed
// dimension is bumped by one and the derivation repeated until the
// result is at least 1.
func ResolveSize(srcWidth, srcHeight int, opts Options) (width, height int, err error) {
	width, height = opts.Width, opts.Height

	switch {
	case opts.DeriveWidth && !opts.DeriveHeight:
		for n := 0; ; n++ {
			if n >= maxAspectIterations {
				return 0, 0, fmt.Errorf("cannot derive width for source %dx%d", srcWidth, srcHeight)
			}
			width = round(2.0 * float64(height) * float64(srcWidth) / float64(srcHeight))
			if width >= 1 {
				break
			}
			height++
		}
	case !opts.DeriveWidth && opts.DeriveHeight:
		for n := 0; ; n++ {
			if n >= maxAspectIterations {
				return 0, 0, fmt.Errorf("cannot derive height for source %dx%d", srcWidth, srcHeight)
			}
			height = round(0.5 * float64(width) * float64(srcHeight) / float64(srcWidth))
			if height >= 1 {
				break
			}
			width++
		}
	}

	return width, height, nil
}
