package core

import "testing"

func standing(x, y float64) *Player {
	p := NewPlayer(DefaultPlayerSpec(), x, y)
	p.Midair = false
	return p
}

func TestResolveDirectionalHits(t *testing.T) {
	ph := DefaultPhysics()

	tests := []struct {
		name       string
		setup      func(s *NeighborSample)
		x, y       float64 // position after this tick's movement
		yPlus      float64
		safeY      float64 // previous resolved Y, 48 when zero
		wantX      float64
		wantY      float64
		wantYPlus  float64
		wantMidair bool
		wantHits   Hits
	}{
		{
			name:  "right wall while moving right",
			setup: func(s *NeighborSample) { s.Right[KindWall] = CornerCC | CornerCF },
			x: 35, y: 48,
			wantX: 32, wantY: 48, wantMidair: true,
			wantHits: Hits{Right: true},
		},
		{
			name:  "right wall while moving left",
			setup: func(s *NeighborSample) { s.Right[KindWall] = CornerCC | CornerCF },
			x: 29, y: 48,
			wantX: 29, wantY: 48, wantMidair: true,
		},
		{
			name:  "left crumbling wall while moving left",
			setup: func(s *NeighborSample) { s.Left[KindCrumblingWall] = CornerFC },
			x: 30, y: 48,
			wantX: 32, wantY: 48, wantMidair: true,
			wantHits: Hits{Left: true},
		},
		{
			name:  "ceiling while rising",
			setup: func(s *NeighborSample) { s.Above[KindWall] = CornerCF | CornerFF },
			x: 32, y: 44, yPlus: 120,
			wantX: 32, wantY: 48, wantYPlus: 0, wantMidair: true,
			wantHits: Hits{Above: true},
		},
		{
			name:  "ceiling while standing still",
			setup: func(s *NeighborSample) { s.Above[KindWall] = CornerCF | CornerFF },
			x: 32, y: 48,
			wantX: 32, wantY: 48, wantMidair: true,
		},
		{
			name:  "landing snaps to row",
			setup: func(s *NeighborSample) { s.Below[KindWall] = CornerCC | CornerFC },
			x: 32, y: 53, yPlus: -300, safeY: 50,
			wantX: 32, wantY: 72, wantYPlus: -300, wantMidair: false,
			wantHits: Hits{Below: true},
		},
		{
			name:  "floor below while rising does not snap",
			setup: func(s *NeighborSample) { s.Below[KindWall] = CornerCC | CornerFC },
			x: 32, y: 44, yPlus: 300,
			wantX: 32, wantY: 44, wantYPlus: 300, wantMidair: true,
			wantHits: Hits{Below: true},
		},
	}

	open := NewGrid(8, 8)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(DefaultPlayerSpec(), 32, 48)
			if tc.safeY != 0 {
				p.SafeY = tc.safeY
			}
			p.X, p.Y, p.YPlus = tc.x, tc.y, tc.yPlus

			var s NeighborSample
			tc.setup(&s)
			hits := p.Resolve(s, open, ph)

			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", p.X, p.Y, tc.wantX, tc.wantY)
			}
			if p.YPlus != tc.wantYPlus {
				t.Errorf("YPlus = %v, expected %v", p.YPlus, tc.wantYPlus)
			}
			if p.Midair != tc.wantMidair {
				t.Errorf("Midair = %v, expected %v", p.Midair, tc.wantMidair)
			}
			if hits != tc.wantHits {
				t.Errorf("hits = %+v, expected %+v", hits, tc.wantHits)
			}
			if p.SafeX != p.X || p.SafeY != p.Y {
				t.Error("safe position must follow the resolved position")
			}
		})
	}
}

func TestResolveStopsAtUnseenColumn(t *testing.T) {
	ph := DefaultPhysics()
	g, err := ParseRows(
		"##########",
		"#........#",
		"#......#.#",
		"##########",
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		safeX, x float64
		y        float64
		wantX    float64
		wantHits Hits
	}{
		{"run right into wall column", 94.5, 97.8, 48, 96, Hits{Right: true}},
		{"run right short of wall", 90, 93.2, 48, 93.2, Hits{}},
		{"run left into border", 17, 13.7, 48, 16, Hits{Left: true}},
		{"midair box spanning the wall row", 94.5, 97.8, 30, 96, Hits{Right: true}},
		{"above the wall row", 94.5, 97.8, 24, 97.8, Hits{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(DefaultPlayerSpec(), tc.safeX, tc.y)
			p.X = tc.x
			hits := p.Resolve(NeighborSample{}, g, ph)
			if p.X != tc.wantX {
				t.Errorf("X = %v, expected %v", p.X, tc.wantX)
			}
			if hits != tc.wantHits {
				t.Errorf("hits = %+v, expected %+v", hits, tc.wantHits)
			}
			if p.SafeX != p.X {
				t.Errorf("SafeX = %v, expected %v", p.SafeX, p.X)
			}
		})
	}
}

func TestJumpConditions(t *testing.T) {
	var roof NeighborSample
	roof.Above[KindWall] = CornerCF

	tests := []struct {
		name     string
		midair   bool
		climbing ClimbState
		s        NeighborSample
		in       Controls
		want     bool
	}{
		{"grounded", false, ClimbNone, NeighborSample{}, Controls{Jump: true}, true},
		{"no key", false, ClimbNone, NeighborSample{}, Controls{}, false},
		{"midair", true, ClimbNone, NeighborSample{}, Controls{Jump: true}, false},
		{"climbing", false, ClimbStatic, NeighborSample{}, Controls{Jump: true}, false},
		{"roof", false, ClimbNone, roof, Controls{Jump: true}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := standing(32, 48)
			p.Midair = tc.midair
			p.Climbing = tc.climbing

			if got := p.Jump(tc.in, tc.s); got != tc.want {
				t.Fatalf("Jump = %v, expected %v", got, tc.want)
			}
			if tc.want {
				if p.YPlus != p.JumpPower/p.Weight || !p.Midair {
					t.Errorf("jump did not launch: %+v", p)
				}
				if p.Anim != AnimJumpRight {
					t.Errorf("anim = %v, expected jumpright", p.Anim)
				}
			}
		})
	}
}

func TestMoveRunAnimation(t *testing.T) {
	ph := DefaultPhysics()
	p := standing(32, 48)

	p.Move(Controls{Left: true}, NeighborSample{}, ph, 0.5)
	if p.X != 32-98 {
		t.Errorf("X = %v, expected %v", p.X, 32-98)
	}
	if p.Anim != AnimRunLeft || p.Frame != 196*0.5/8 {
		t.Errorf("anim/frame = %v/%v", p.Anim, p.Frame)
	}

	p.Move(Controls{}, NeighborSample{}, ph, 0.5)
	if p.Anim != AnimStance || p.Frame != 0 {
		t.Errorf("idle should reset to stance, got %v/%v", p.Anim, p.Frame)
	}

	p.Midair = true
	p.Move(Controls{Right: true}, NeighborSample{}, ph, 0.1)
	if p.Anim != AnimJumpRight {
		t.Errorf("airborne run should use jump anim, got %v", p.Anim)
	}
}

func TestGrabCentersOnLadder(t *testing.T) {
	ph := DefaultPhysics()
	tests := []struct {
		name  string
		x     float64
		mask  CornerMask
		wantX float64
	}{
		{"both columns rounds down", 20, CornerCC | CornerFF, 16},
		{"both columns rounds up", 25, CornerCF | CornerFC, 32},
		{"ceil column", 20, CornerCC | CornerCF, 32},
		{"floor column", 20, CornerFC, 16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := standing(tc.x, 48)
			var s NeighborSample
			s.Under[KindLadders] = tc.mask

			p.Move(Controls{Up: true, Right: true}, s, ph, 1.0/60)

			if p.X != tc.wantX {
				t.Errorf("X = %v, expected %v", p.X, tc.wantX)
			}
			if p.Climbing != ClimbStatic || p.Anim != AnimClimb || p.Midair {
				t.Errorf("expected static climb, got climbing=%v anim=%v midair=%v", p.Climbing, p.Anim, p.Midair)
			}
		})
	}
}

func TestClimbSideways(t *testing.T) {
	ph := DefaultPhysics()

	t.Run("grip moves slowly", func(t *testing.T) {
		p := standing(32, 48)
		p.Climbing = ClimbStatic
		var s NeighborSample
		s.Right[KindLadders] = CornerCC

		p.Move(Controls{Right: true}, s, ph, 0.5)
		if p.X != 32+49 || p.Climbing != ClimbMoving {
			t.Errorf("X = %v climbing = %v", p.X, p.Climbing)
		}

		p.Move(Controls{}, s, ph, 0.5)
		if p.Climbing != ClimbStatic {
			t.Errorf("no sideways input should hold static, got %v", p.Climbing)
		}
	})

	t.Run("no grip releases", func(t *testing.T) {
		p := standing(32, 48)
		p.Climbing = ClimbStatic

		p.Move(Controls{Left: true}, NeighborSample{}, ph, 0.5)
		if p.Climbing != ClimbNone || !p.Midair || p.Anim != AnimJumpLeft {
			t.Errorf("expected release, got climbing=%v midair=%v anim=%v", p.Climbing, p.Midair, p.Anim)
		}
		if p.X != 32 {
			t.Errorf("release should not move sideways, X = %v", p.X)
		}
	})

	t.Run("no grip while climbing up holds on", func(t *testing.T) {
		p := standing(32, 48)
		p.Climbing = ClimbStatic
		var s NeighborSample
		s.Under[KindLadders] = CornerCC | CornerCF | CornerFC | CornerFF

		p.Move(Controls{Left: true, Up: true}, s, ph, 0.5)
		if p.Climbing == ClimbNone {
			t.Error("holding up should keep the grip")
		}
		if p.Y != 48-49 {
			t.Errorf("Y = %v, expected %v", p.Y, 48-49)
		}
	})
}

func TestClimbOffTopSnapsToRow(t *testing.T) {
	ph := DefaultPhysics()
	p := standing(32, 24.5)
	p.Climbing = ClimbStatic
	p.Anim = AnimClimb

	p.Move(Controls{Up: true}, NeighborSample{}, ph, 1.0/60)

	if p.Y != 24 || p.Climbing != ClimbNone {
		t.Errorf("Y = %v climbing = %v, expected 24 none", p.Y, p.Climbing)
	}
}

func TestCheckGround(t *testing.T) {
	var ladderBelow NeighborSample
	ladderBelow.Below[KindLadders] = CornerCC

	var insideLadder NeighborSample
	insideLadder.Below[KindLadders] = CornerCC
	insideLadder.Under[KindLadders] = CornerCF

	var floor NeighborSample
	floor.Below[KindWall] = CornerCC

	tests := []struct {
		name string
		s    NeighborSample
		want bool
	}{
		{"nothing below", NeighborSample{}, true},
		{"floor", floor, false},
		{"ladder top", ladderBelow, false},
		{"inside ladder", insideLadder, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := standing(32, 48)
			p.CheckGround(tc.s)
			if p.Midair != tc.want {
				t.Errorf("Midair = %v, expected %v", p.Midair, tc.want)
			}
		})
	}
}

func TestLimitFrames(t *testing.T) {
	ph := DefaultPhysics()
	tests := []struct {
		anim  Anim
		frame float64
		want  float64
	}{
		{AnimRunRight, 15.5, 0},
		{AnimRunLeft, 14.9, 14.9},
		{AnimClimb, -0.2, 5},
		{AnimClimb, 5.1, 0},
		{AnimClimb, 3, 3},
		{AnimStance, 40, 40},
	}
	for _, tc := range tests {
		p := standing(0, 0)
		p.Anim, p.Frame = tc.anim, tc.frame
		p.LimitFrames(ph)
		if p.Frame != tc.want {
			t.Errorf("%v frame %v -> %v, expected %v", tc.anim, tc.frame, p.Frame, tc.want)
		}
	}
}
