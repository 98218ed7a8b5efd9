package core

import "math"

// Controls is the set of movement actions held during a tick.
type Controls struct {
	Left, Right bool
	Up, Down    bool
	Jump        bool
}

// Physics holds the tile size and movement tuning shared by every tick.
type Physics struct {
	TileW, TileH  int
	Gravity       float64 // Pixels per second squared
	MaxFallSpeed  float64 // Pixels per second, 0 for no cap
	ClimbSpeed    float64 // Ladder climb speed as a fraction of run speed
	HangSpeed     float64 // Sideways ladder speed as a fraction of run speed
	RunFrameDiv   float64 // Run frames advance by Speed*dt/RunFrameDiv
	ClimbFrameDiv float64 // Climb frames advance by Speed*dt/ClimbFrameDiv
	RunFrames     int
	ClimbFrames   int
}

// DefaultPhysics returns the stock 16x24 tile physics.
func DefaultPhysics() Physics {
	return Physics{
		TileW:         16,
		TileH:         24,
		Gravity:       800,
		MaxFallSpeed:  1200,
		ClimbSpeed:    0.5,
		HangSpeed:     0.5,
		RunFrameDiv:   8,
		ClimbFrameDiv: 12,
		RunFrames:     16,
		ClimbFrames:   6,
	}
}

// Hits records which sides blocked the player during resolution.
type Hits struct {
	Below, Above, Left, Right bool
}

// Any reports whether anything was hit.
func (h Hits) Any() bool {
	return h.Below || h.Above || h.Left || h.Right
}

// Move turns held controls into position deltas and animation state, then
// applies them. It reads the sample taken before this tick's movement.
func (p *Player) Move(in Controls, s NeighborSample, ph Physics, dt float64) {
	var dx, dy float64

	if p.Climbing == ClimbNone {
		switch {
		case in.Left:
			dx -= p.Speed * dt
			if !p.Midair {
				p.Anim = AnimRunLeft
				p.Frame += p.Speed * dt / ph.RunFrameDiv
			} else {
				p.Anim = AnimJumpLeft
			}
		case in.Right:
			dx += p.Speed * dt
			if !p.Midair {
				p.Anim = AnimRunRight
				p.Frame += p.Speed * dt / ph.RunFrameDiv
			} else {
				p.Anim = AnimJumpRight
			}
		case !p.Midair:
			p.Anim = AnimStance
			p.Frame = 0
		}
	} else {
		switch {
		case in.Left:
			if grip(s.Left) {
				dx -= p.Speed * dt * ph.HangSpeed
				p.Climbing = ClimbMoving
			} else if !in.Up && !in.Down {
				p.release(AnimJumpLeft)
			}
		case in.Right:
			if grip(s.Right) {
				dx += p.Speed * dt * ph.HangSpeed
				p.Climbing = ClimbMoving
			} else if !in.Up && !in.Down {
				p.release(AnimJumpRight)
			}
		default:
			p.Climbing = ClimbStatic
		}
	}

	tw := float64(ph.TileW)
	switch {
	case in.Up:
		switch {
		case p.Climbing == ClimbNone:
			if s.Under.Has(KindLadders) {
				p.grab(s.Under[KindLadders], tw)
				dx = 0
			}
		case s.Under.Has(KindLadders):
			p.Frame += p.Speed * dt / ph.ClimbFrameDiv
			dy -= p.Speed * ph.ClimbSpeed * dt
		default:
			// Top of the ladder: stand on the row above.
			th := float64(ph.TileH)
			p.Y = math.Floor((p.Y+1)/th) * th
			p.Frame = 0
			p.Climbing = ClimbNone
			dy = 0
		}
	case in.Down:
		onLadder := s.Under.Has(KindLadders) || s.Below.Has(KindLadders)
		switch {
		case p.Climbing == ClimbNone:
			if onLadder {
				mask := s.Under[KindLadders]
				if s.Below.Has(KindLadders) {
					mask = s.Below[KindLadders]
				}
				p.grab(mask, tw)
				dx = 0
			}
		case onLadder:
			p.Frame -= p.Speed * dt / ph.ClimbFrameDiv
			dy += p.Speed * ph.ClimbSpeed * dt
		default:
			p.Frame = 0
			p.Climbing = ClimbNone
			dy = 0
		}
	}

	p.X += dx
	p.Y += dy

	if p.Climbing != ClimbNone {
		p.Midair = false
	}
}

// grip reports whether a side sample offers something to hold on to.
func grip(c Corners) bool {
	return c.Has(KindLadders) || c.Has(KindWall)
}

// grab starts climbing and lines the player up with the ladder column the
// corner mask points at.
func (p *Player) grab(m CornerMask, tw float64) {
	switch {
	case m&ceilX != 0 && m&floorX != 0:
		p.X = math.Floor(p.X/tw+0.5) * tw
	case m&ceilX != 0:
		p.X = math.Ceil(p.X/tw) * tw
	case m&floorX != 0:
		p.X = math.Floor(p.X/tw) * tw
	}
	p.Climbing = ClimbStatic
	p.Frame = 0
	p.Anim = AnimClimb
}

func (p *Player) release(a Anim) {
	p.Climbing = ClimbNone
	p.Midair = true
	p.Anim = a
	p.Frame = 0
}

// CheckGround marks the player airborne when nothing below holds it up.
// Standing on top of a ladder counts as ground unless already inside one.
func (p *Player) CheckGround(s NeighborSample) {
	if p.Climbing != ClimbNone {
		return
	}
	if !s.Below.Solid() && (!s.Below.Has(KindLadders) || s.Under.Has(KindLadders)) {
		p.Midair = true
	}
}

// LimitFrames wraps the animation frame into the current sequence.
func (p *Player) LimitFrames(ph Physics) {
	switch p.Anim {
	case AnimRunLeft, AnimRunRight:
		if p.Frame > float64(ph.RunFrames-1) {
			p.Frame = 0
		}
	case AnimClimb:
		last := float64(ph.ClimbFrames - 1)
		if p.Frame < 0 {
			p.Frame = last
		} else if p.Frame > last {
			p.Frame = 0
		}
	}
}

// Resolve rolls the player back out of solid tiles reported by the sample.
// Side and ceiling hits only count when moving towards them. A floor hit
// while falling snaps Y onto the tile row. A sideways move into a solid
// column the sample could not see yet stops flush against it. SafeX/SafeY
// always end up at the resolved position.
func (p *Player) Resolve(s NeighborSample, g *Grid, ph Physics) Hits {
	h := Hits{
		Below: s.Below.Solid(),
		Above: s.Above.Solid() && p.Y < p.SafeY,
		Left:  s.Left.Solid() && p.X < p.SafeX,
		Right: s.Right.Solid() && p.X > p.SafeX,
	}

	if h.Left || h.Right {
		p.X = p.SafeX
	}

	if h.Above {
		p.Y = p.SafeY
		if p.YPlus > 0 {
			p.YPlus = 0
		}
	} else if h.Below && p.YPlus <= 0 && p.Y >= p.SafeY {
		th := float64(ph.TileH)
		p.Y = math.Ceil(p.SafeY/th) * th
		p.Midair = false
	}

	switch {
	case p.X > p.SafeX && p.stopAtColumn(g, ph, 1):
		h.Right = true
	case p.X < p.SafeX && p.stopAtColumn(g, ph, -1):
		h.Left = true
	}

	p.SafeX, p.SafeY = p.X, p.Y
	return h
}

// edgeEps absorbs float error when a box edge lies exactly on a tile edge.
const edgeEps = 1e-9

// stopAtColumn walks the tile columns the box entered since SafeX in
// direction dir and, at the first one holding a solid tile in the box's
// rows, puts the box flush against it. The box is one tile in size.
func (p *Player) stopAtColumn(g *Grid, ph Physics, dir int) bool {
	if g == nil {
		return false
	}
	tw, th := float64(ph.TileW), float64(ph.TileH)
	y0 := int(math.Floor(p.Y/th + edgeEps))
	y1 := int(math.Ceil((p.Y+th)/th-edgeEps)) - 1

	solid := func(x int) bool {
		for y := y0; y <= y1; y++ {
			if g.KindAt(x, y).Solid() {
				return true
			}
		}
		return false
	}

	if dir > 0 {
		from := int(math.Ceil((p.SafeX+tw)/tw-edgeEps)) - 1
		to := int(math.Ceil((p.X+tw)/tw-edgeEps)) - 1
		for x := from + 1; x <= to; x++ {
			if solid(x) {
				p.X = float64(x-1) * tw
				return true
			}
		}
		return false
	}

	from := int(math.Floor(p.SafeX/tw + edgeEps))
	to := int(math.Floor(p.X/tw + edgeEps))
	for x := from - 1; x >= to; x-- {
		if solid(x) {
			p.X = float64(x+1) * tw
			return true
		}
	}
	return false
}

// Jump launches the player when grounded, off ladders and with headroom.
func (p *Player) Jump(in Controls, s NeighborSample) bool {
	if !in.Jump || p.Midair || p.Climbing != ClimbNone || s.Above.Solid() {
		return false
	}
	p.YPlus = p.JumpPower / p.Weight
	p.Midair = true
	if in.Left {
		p.Anim = AnimJumpLeft
	} else {
		p.Anim = AnimJumpRight
	}
	return true
}
