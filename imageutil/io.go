package imageutil

import (
	"fmt"
	"os"
)

// Open opens and decodes the image at path, returning its row
// adapter.
func Open(path string) (*Rows, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
