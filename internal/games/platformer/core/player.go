package core

// ClimbState is the ladder sub-state of the player.
type ClimbState uint8

const (
	ClimbNone   ClimbState = iota // Not on a ladder
	ClimbStatic                   // Holding on, no sideways input
	ClimbMoving                   // Moving sideways along ladders or a wall
)

func (c ClimbState) String() string {
	switch c {
	case ClimbStatic:
		return "static"
	case ClimbMoving:
		return "moving"
	default:
		return "none"
	}
}

// Anim selects the player sprite sequence.
type Anim uint8

const (
	AnimStance Anim = iota
	AnimRunLeft
	AnimRunRight
	AnimJumpLeft
	AnimJumpRight
	AnimClimb
)

func (a Anim) String() string {
	switch a {
	case AnimRunLeft:
		return "runleft"
	case AnimRunRight:
		return "runright"
	case AnimJumpLeft:
		return "jumpleft"
	case AnimJumpRight:
		return "jumpright"
	case AnimClimb:
		return "climb"
	default:
		return "stance"
	}
}

// PlayerSpec holds the player's body and movement constants.
type PlayerSpec struct {
	W         float64 // Box width in pixels
	H         float64 // Box height in pixels
	Speed     float64 // Run speed, pixels per second
	Weight    float64 // Mass in kg
	JumpPower float64 // Jump impulse; initial upward speed is JumpPower/Weight
}

// DefaultPlayerSpec returns the stock player: a 16x24 box running at 196 px/s.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		W:         16,
		H:         24,
		Speed:     196,
		Weight:    70,
		JumpPower: 25000,
	}
}

// Player is the controllable body. (X, Y) is the top-left corner of its box
// in level pixels, Y growing downwards. YPlus is the upward speed.
type Player struct {
	X, Y      float64
	YPlus     float64
	W, H      float64
	Speed     float64
	Weight    float64
	JumpPower float64

	Midair   bool
	Climbing ClimbState
	Anim     Anim
	Frame    float64

	// SafeX and SafeY are the position resolved on the previous tick and act
	// as the rollback target on collision.
	SafeX, SafeY float64
}

// NewPlayer places a fresh player at (x, y), airborne until the first landing.
func NewPlayer(spec PlayerSpec, x, y float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		W:         spec.W,
		H:         spec.H,
		Speed:     spec.Speed,
		Weight:    spec.Weight,
		JumpPower: spec.JumpPower,
		Midair:    true,
		SafeX:     x,
		SafeY:     y,
	}
}

// VerticalPos implements GravityBody.
func (p *Player) VerticalPos() float64 { return p.Y }

// SetVerticalPos implements GravityBody.
func (p *Player) SetVerticalPos(y float64) { p.Y = y }

// VerticalSpeed implements GravityBody.
func (p *Player) VerticalSpeed() float64 { return p.YPlus }

// SetVerticalSpeed implements GravityBody.
func (p *Player) SetVerticalSpeed(v float64) { p.YPlus = v }

// Mass implements GravityBody.
func (p *Player) Mass() float64 { return p.Weight }

// Airborne implements GravityBody.
func (p *Player) Airborne() bool { return p.Midair }

// SetAirborne implements GravityBody.
func (p *Player) SetAirborne(on bool) { p.Midair = on }
