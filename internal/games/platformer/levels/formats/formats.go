// Package formats provides pluggable level file format parsers.
// Every parser produces a core.Grid; validation of the playable level
// (start tile, coins) is left to core.NewLevel.
package formats

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// ErrIrregularSheet is returned when an image is not a whole number of cells.
var ErrIrregularSheet = errors.New("image size is not a multiple of the cell size")

// Options tune how a source is turned into tiles.
type Options struct {
	// CellSize is the number of image pixels per tile side (images only).
	// 0 and 1 both mean one pixel per tile.
	CellSize int
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".png", ".gif", ".bmp", ".txt", ".tmx"}
}

// Supported reports whether a file name has a known level extension.
func Supported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range FormatExtensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// Load parses the level file at name inside fsys, picking the parser by extension.
func Load(fsys fs.FS, name string, opts Options) (*core.Grid, error) {
	ext := strings.ToLower(path.Ext(name))
	if ext == ".tmx" {
		return ParseTMX(fsys, name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	switch ext {
	case ".png", ".gif", ".bmp":
		return DecodeImage(data, opts.CellSize)
	case ".txt":
		return ParseText(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
