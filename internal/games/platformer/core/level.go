package core

import (
	"errors"
	"fmt"
)

// ErrNoStart is returned when a level has no Start tile.
var ErrNoStart = errors.New("level has no start tile")

// Level is a parsed, immutable level. Worlds clone its grid before playing.
type Level struct {
	ID      string
	Name    string
	ParTime float64 // Seconds considered a good run, 0 if unset

	W, H       int // Size in tiles
	CoinsTotal int
	StartX     int // Start tile column
	StartY     int // Start tile row

	source *Grid
}

// NewLevel validates the grid and wraps a private copy of it.
// The first Start tile in row-major order is the spawn point.
func NewLevel(id, name string, g *Grid) (*Level, error) {
	if g == nil || g.W <= 0 || g.H <= 0 {
		return nil, fmt.Errorf("level %q: %w", id, ErrEmptyLevel)
	}
	sx, sy, ok := g.Find(KindStart)
	if !ok {
		return nil, fmt.Errorf("level %q: %w", id, ErrNoStart)
	}
	return &Level{
		ID:         id,
		Name:       name,
		W:          g.W,
		H:          g.H,
		CoinsTotal: g.Count(KindCoin),
		StartX:     sx,
		StartY:     sy,
		source:     g.Clone(),
	}, nil
}

// Grid returns a fresh copy of the pristine tilemap.
func (l *Level) Grid() *Grid {
	return l.source.Clone()
}

// KindAt reads the pristine tilemap.
func (l *Level) KindAt(x, y int) Kind {
	return l.source.KindAt(x, y)
}

// PixelSize returns the level size in pixels for the given tile size.
func (l *Level) PixelSize(tw, th int) (float64, float64) {
	return float64(l.W * tw), float64(l.H * th)
}

// Stats summarizes the tile counts of a level.
type Stats struct {
	Counts [KindCount]int
}

// Stats counts every tile kind in the pristine grid.
func (l *Level) Stats() Stats {
	var s Stats
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			s.Counts[l.source.KindAt(x, y)]++
		}
	}
	return s
}
