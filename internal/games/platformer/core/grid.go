package core

import (
	"errors"
	"fmt"
)

// ErrEmptyLevel is returned when a level source has no tiles.
var ErrEmptyLevel = errors.New("level has no tiles")

// Grid is the level tilemap. Cells are stored in row-major order: index = y*W + x.
// The shape never changes after creation.
type Grid struct {
	W     int // Width in tiles
	H     int // Height in tiles
	cells []Kind
}

// NewGrid creates a grid of the given size with every tile Empty.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]Kind, w*h),
	}
}

// ParseRows builds a grid from text rows using the Glyph alphabet.
// Shorter rows are padded with Empty.
func ParseRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	if w == 0 {
		return nil, ErrEmptyLevel
	}

	g := NewGrid(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			g.SetKind(x, y, KindFromGlyph(r[x]))
		}
	}
	return g, nil
}

// InBounds returns true if the tile coordinate lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// KindAt returns the tile kind at (x, y). Anything outside the grid is Wall.
func (g *Grid) KindAt(x, y int) Kind {
	if !g.InBounds(x, y) {
		return KindWall
	}
	return g.cells[y*g.W+x]
}

// SetKind replaces the tile at (x, y). Out-of-range writes are ignored.
func (g *Grid) SetKind(x, y int, k Kind) {
	if g.InBounds(x, y) {
		g.cells[y*g.W+x] = k
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Kind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Count returns how many tiles of kind k the grid holds.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c == k {
			n++
		}
	}
	return n
}

// Find returns the first tile of kind k in row-major order.
func (g *Grid) Find(k Kind) (x, y int, ok bool) {
	for i, c := range g.cells {
		if c == k {
			return i % g.W, i / g.W, true
		}
	}
	return 0, 0, false
}

// Rows renders the grid back into Glyph text rows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	buf := make([]byte, g.W)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			buf[x] = g.KindAt(x, y).Glyph()
		}
		rows[y] = string(buf)
	}
	return rows
}

// String implements fmt.Stringer.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d)", g.W, g.H)
}
