// Command imgtoa converts raster images to ASCII on standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/imgtoa/imgtoa"
	"github.com/imgtoa/imgtoa/imageutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := imgtoa.ParseArgs(args)
	if errors.Is(err, imgtoa.ErrHelp) {
		imgtoa.Usage(stderr)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n", err)
		imgtoa.Usage(stderr)
		return 1
	}

	// any failure aborts the remaining batch
	for _, path := range opts.Files {
		if err := processFile(path, opts, stdout, stderr); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	return 0
}

func processFile(path string, opts imgtoa.Options, stdout, stderr io.Writer) error {
	var src *imageutil.Rows
	var err error

	if path == "-" {
		src, err = imageutil.Decode(os.Stdin)
	} else {
		if opts.Verbose {
			fmt.Fprintf(stderr, "File: %s\n", path)
		}
		src, err = imageutil.Open(path)
	}
	if err != nil {
		return err
	}

	grid, err := imgtoa.BuildGrid(src, opts)
	if err != nil {
		return err
	}

	switch {
	case opts.Output == "":
		return imgtoa.Render(grid, opts, stdout)
	case strings.HasSuffix(strings.ToLower(opts.Output), ".png"):
		return imgtoa.WritePNG(grid, opts, opts.Output)
	default:
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("can't create %s: %w", opts.Output, err)
		}
		defer f.Close()
		return imgtoa.Render(grid, opts, f)
	}
}
