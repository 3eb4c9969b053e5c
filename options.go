package imgtoa

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultPalette orders characters from the black extreme to the white
// extreme. Any palette of at least two characters may be substituted
// with the --chars option.
const DefaultPalette = "   ...',;:clodxkO0KXNWM"

// DefaultWidth is the output width used when no sizing flag is given;
// the height is then derived from the source aspect ratio.
const DefaultWidth = 78

// ErrHelp is returned by ParseArgs when the user asked for usage text.
// It is not a failure; callers should print usage and exit cleanly.
var ErrHelp = errors.New("help requested")

// Options is the full configuration for one converter run. It is built
// once by ParseArgs and passed down to every component; nothing in the
// package reads process-wide state.
type Options struct {
	// Palette holds the ordered character ramp, validated to contain
	// at least two runes.
	Palette string

	// Width and Height are the requested output dimensions. An axis
	// whose Derive flag is set is computed from the source aspect
	// ratio by ResolveSize and the value here is only a starting point.
	Width  int
	Height int

	DeriveWidth  bool
	DeriveHeight bool

	FlipX  bool
	FlipY  bool
	Invert bool

	Verbose bool

	// Output, when non-empty, redirects the rendering to a file
	// instead of stdout. A .png suffix selects rasterized output.
	Output string

	// FontPath optionally names a TTF file used for .png output.
	FontPath string

	// Files are the input operands in command-line order; "-" selects
	// standard input.
	Files []string
}

// DefaultOptions returns the options equivalent to running with no
// flags at all: width 78, height derived, default palette.
func DefaultOptions() Options {
	return Options{
		Palette:      DefaultPalette,
		Width:        DefaultWidth,
		DeriveHeight: true,
	}
}

// Usage writes the command-line help text to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, `Usage: imgtoa [ options ] [ file(s) ]

Convert raster images to ASCII.

OPTIONS
    --chars=...  Leftmost char corresponds to black pixel, right-most to white (specify at least 2 characters).
    --flipx      Flip image in X direction.
    --flipy      Flip image in Y direction.
    --font=FILE  TTF font used for PNG output (default is a built-in bitmap face).
    --height=N   Set output height, calculate width from aspect ratio.
-h, --help       Print program help.
-i, --invert     Invert output image.  Use if your display has a dark background.
    --output=F   Write output to a file.  A .png suffix renders the characters to an image.
    --size=WxH   Set output width and height.
-v, --verbose    Verbose output.
    --width=N    Set output width, calculate height from ratio.

  The default running mode is 'imgtoa --width=78'
`)
}

// ParseArgs builds an Options value from raw command-line arguments
// (excluding the program name). Flags and file operands may be freely
// interleaved. It returns ErrHelp when -h or --help is present.
//
// The sizing flags interact through occurrence counters: each --width
// increments the derive-height counter, each --height increments the
// derive-width counter, and --size resets both to zero. After parsing,
// a derive-width counter of exactly 1 alongside a derive-height counter
// of exactly 1 means only --height was given, so height derivation is
// switched off; counters of 2 and 1 disable derivation on both axes.
// This table is kept bit for bit, repeated flags included.
func ParseArgs(args []string) (Options, error) {
	opts := DefaultOptions()

	deriveWidth := 0
	deriveHeight := 1

	for _, s := range args {
		if !strings.HasPrefix(s, "-") {
			opts.Files = append(opts.Files, s)
			continue
		}

		switch s {
		case "-":
			opts.Files = append(opts.Files, s)
			continue
		case "-h", "--help":
			return opts, ErrHelp
		case "-v", "--verbose":
			opts.Verbose = true
			continue
		case "-i", "--invert":
			opts.Invert = true
			continue
		case "--flipx":
			opts.FlipX = true
			continue
		case "--flipy":
			opts.FlipY = true
			continue
		}

		if v, ok := strings.CutPrefix(s, "--width="); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, fmt.Errorf("unknown option %s", s)
			}
			opts.Width = n
			deriveHeight++
			continue
		}
		if v, ok := strings.CutPrefix(s, "--height="); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, fmt.Errorf("unknown option %s", s)
			}
			opts.Height = n
			deriveWidth++
			continue
		}
		if v, ok := strings.CutPrefix(s, "--size="); ok {
			var w, h int
			if n, err := fmt.Sscanf(v, "%dx%d", &w, &h); n != 2 || err != nil {
				return opts, fmt.Errorf("unknown option %s", s)
			}
			opts.Width, opts.Height = w, h
			deriveWidth, deriveHeight = 0, 0
			continue
		}
		if v, ok := strings.CutPrefix(s, "--chars="); ok {
			// the value may contain any characters, spaces included
			opts.Palette = v
			continue
		}
		if v, ok := strings.CutPrefix(s, "--output="); ok {
			opts.Output = v
			continue
		}
		if v, ok := strings.CutPrefix(s, "--font="); ok {
			opts.FontPath = v
			continue
		}

		return opts, fmt.Errorf("unknown option %s", s)
	}

	if len(opts.Files) == 0 {
		return opts, errors.New("no files specified")
	}

	// only --height given: derive the width instead of the height
	if deriveWidth == 1 && deriveHeight == 1 {
		deriveHeight = 0
	}
	// --width and --height together behave like --size
	if deriveWidth == 2 && deriveHeight == 1 {
		deriveWidth, deriveHeight = 0, 0
	}
	opts.DeriveWidth = deriveWidth != 0
	opts.DeriveHeight = deriveHeight != 0

	if len([]rune(opts.Palette)) < 2 {
		return opts, errors.New("you must specify at least two characters in --chars")
	}
	if (opts.Width < 1 && !opts.DeriveWidth) || (opts.Height < 1 && !opts.DeriveHeight) {
		return opts, errors.New("invalid width or height specified")
	}
	if opts.Output != "" && len(opts.Files) > 1 {
		return opts, errors.New("--output cannot be combined with multiple input files")
	}

	return opts, nil
}
