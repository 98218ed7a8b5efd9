package core

import (
	"math"
	"strings"
)

// CornerMask is a set of the four sample corners around the player box.
// C and F stand for the ceil and floor tile coordinates of each axis (x first).
type CornerMask uint8

const (
	CornerCC CornerMask = 1 << iota
	CornerCF
	CornerFC
	CornerFF
)

// ceilX reports corners sampled on the ceil column.
const ceilX = CornerCC | CornerCF

// floorX reports corners sampled on the floor column.
const floorX = CornerFC | CornerFF

func (m CornerMask) String() string {
	if m == 0 {
		return "-"
	}
	var parts []string
	for _, c := range []struct {
		bit  CornerMask
		name string
	}{{CornerCC, "CC"}, {CornerCF, "CF"}, {CornerFC, "FC"}, {CornerFF, "FF"}} {
		if m&c.bit != 0 {
			parts = append(parts, c.name)
		}
	}
	return strings.Join(parts, "|")
}

// Corners maps each tile kind to the corners that landed on it.
type Corners [KindCount]CornerMask

// Has reports whether any corner landed on kind k.
func (c Corners) Has(k Kind) bool {
	return c[k] != 0
}

// Solid reports whether any corner landed on a solid tile.
func (c Corners) Solid() bool {
	return c.Has(KindWall) || c.Has(KindCrumblingWall)
}

// String lists the hit kinds as "kind:corners", e.g. "wall:CC|FC ladders:CF".
func (c Corners) String() string {
	var parts []string
	for k := Kind(0); k < KindCount; k++ {
		if c[k] != 0 {
			parts = append(parts, k.String()+":"+c[k].String())
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func (c *Corners) add(k Kind, m CornerMask) {
	c[k] |= m
}

// NeighborSample holds what the player box overlaps and touches on each side.
type NeighborSample struct {
	Under Corners
	Left  Corners
	Right Corners
	Above Corners
	Below Corners
}

// SampleCoords are the tile coordinates used for one sample.
// For an aligned box CX == FX (or CY == FY); otherwise the ceil coordinate is
// the far tile of the pair.
type SampleCoords struct {
	CX, FX, CY, FY int
}

// CoordsAt computes the sample coordinates for a box whose top-left corner is
// at (x, y). The ±1 pixel offset keeps a box resting on a tile edge from
// registering the neighbor tile as overlapped.
func CoordsAt(x, y float64, tw, th int) SampleCoords {
	return SampleCoords{
		CX: int(math.Ceil((x - 1) / float64(tw))),
		FX: int(math.Floor((x + 1) / float64(tw))),
		CY: int(math.Ceil((y - 1) / float64(th))),
		FY: int(math.Floor((y + 1) / float64(th))),
	}
}

// SampleNeighbors reads the grid around the box at (x, y). It never mutates.
// Tiles past the grid edge read as Wall.
func SampleNeighbors(g *Grid, c SampleCoords) NeighborSample {
	var s NeighborSample

	s.Under.add(g.KindAt(c.CX, c.CY), CornerCC)
	s.Under.add(g.KindAt(c.CX, c.FY), CornerCF)
	s.Under.add(g.KindAt(c.FX, c.CY), CornerFC)
	s.Under.add(g.KindAt(c.FX, c.FY), CornerFF)

	s.Left.add(g.KindAt(c.CX-1, c.CY), CornerFC)
	s.Left.add(g.KindAt(c.CX-1, c.FY), CornerFF)

	s.Right.add(g.KindAt(c.FX+1, c.CY), CornerCC)
	s.Right.add(g.KindAt(c.FX+1, c.FY), CornerCF)

	s.Above.add(g.KindAt(c.CX, c.CY-1), CornerCF)
	s.Above.add(g.KindAt(c.FX, c.CY-1), CornerFF)

	s.Below.add(g.KindAt(c.CX, c.FY+1), CornerCC)
	s.Below.add(g.KindAt(c.FX, c.FY+1), CornerFC)

	return s
}

// underTiles returns the four tiles the Under sample reads, in corner order.
func (c SampleCoords) underTiles() [4][2]int {
	return [4][2]int{
		{c.CX, c.CY},
		{c.CX, c.FY},
		{c.FX, c.CY},
		{c.FX, c.FY},
	}
}
