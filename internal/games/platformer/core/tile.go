// Package core implements the platformer simulation: the tile grid, per-tile
// animation timers, neighbor sampling around the player, motion and collision
// resolution, the follow camera and the World that sequences them each tick.
// It knows nothing about terminals, images or files.
package core

// Kind is the type of a single level tile.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindCrumblingWall
	KindLadders
	KindCoin
	KindStart
	KindEnd

	// KindCount is the number of tile kinds, not a kind itself.
	KindCount
)

// Solid reports whether the kind blocks player movement.
func (k Kind) Solid() bool {
	return k == KindWall || k == KindCrumblingWall
}

// String returns the lower-case name used in debug output and level checks.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindCrumblingWall:
		return "crumblingwall"
	case KindLadders:
		return "ladders"
	case KindCoin:
		return "coin"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Glyph returns the ASCII character for the kind in text level layouts.
func (k Kind) Glyph() byte {
	switch k {
	case KindWall:
		return '#'
	case KindCrumblingWall:
		return '%'
	case KindLadders:
		return 'H'
	case KindCoin:
		return 'o'
	case KindStart:
		return 'S'
	case KindEnd:
		return 'E'
	default:
		return '.'
	}
}

// KindFromGlyph is the inverse of Glyph. Space and any unknown byte are Empty.
func KindFromGlyph(b byte) Kind {
	switch b {
	case '#':
		return KindWall
	case '%':
		return KindCrumblingWall
	case 'H':
		return KindLadders
	case 'o':
		return KindCoin
	case 'S':
		return KindStart
	case 'E':
		return KindEnd
	default:
		return KindEmpty
	}
}

// KindFromRGBA maps a level image pixel to a tile kind by exact colour match.
// Fully transparent pixels and unlisted colours are Empty.
func KindFromRGBA(r, g, b, a uint8) Kind {
	if a == 0 {
		return KindEmpty
	}
	switch {
	case r == 0 && g == 0 && b == 0:
		return KindWall
	case r == 0 && g == 255 && b == 0:
		return KindLadders
	case r == 0 && g == 0 && b == 255:
		return KindCoin
	case r == 255 && g == 0 && b == 0:
		return KindStart
	case r == 128 && g == 128 && b == 128:
		return KindCrumblingWall
	case r == 0 && g == 255 && b == 255:
		return KindEnd
	}
	return KindEmpty
}
