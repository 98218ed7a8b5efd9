package core

import "slices"

// GravityBody is anything the gravity pass moves vertically.
type GravityBody interface {
	VerticalPos() float64
	SetVerticalPos(y float64)
	VerticalSpeed() float64
	SetVerticalSpeed(v float64)
	Mass() float64
	Airborne() bool
	SetAirborne(on bool)
}

// Gravity integrates every registered body once per tick.
type Gravity struct {
	G       float64 // Downward acceleration, pixels per second squared
	MaxFall float64 // Fall speed cap in pixels per second; 0 disables it
	bodies  []GravityBody
}

// NewGravity creates an empty gravity pass.
func NewGravity(g, maxFall float64) *Gravity {
	return &Gravity{G: g, MaxFall: maxFall}
}

// Register adds a body. Registering the same body twice has no effect.
func (g *Gravity) Register(b GravityBody) {
	if slices.Contains(g.bodies, b) {
		return
	}
	g.bodies = append(g.bodies, b)
}

// Unregister removes a body and zeroes its vertical speed.
func (g *Gravity) Unregister(b GravityBody) {
	i := slices.Index(g.bodies, b)
	if i < 0 {
		return
	}
	b.SetVerticalSpeed(0)
	g.bodies = slices.Delete(g.bodies, i, i+1)
}

// Len returns the number of registered bodies.
func (g *Gravity) Len() int {
	return len(g.bodies)
}

// Apply accelerates airborne bodies downwards and moves them by dt seconds.
// Grounded bodies get their vertical speed pinned to zero.
func (g *Gravity) Apply(dt float64) {
	for _, b := range g.bodies {
		if !b.Airborne() {
			b.SetVerticalSpeed(0)
			continue
		}
		v := b.VerticalSpeed() - g.G*dt
		if g.MaxFall > 0 && v < -g.MaxFall {
			v = -g.MaxFall
		}
		b.SetVerticalSpeed(v)
		b.SetVerticalPos(b.VerticalPos() - v*dt)
	}
}
