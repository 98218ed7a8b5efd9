package core

import (
	"errors"
	"math"
	"testing"
)

const tick = 1.0 / 60

func newTestWorld(t *testing.T, rows ...string) *World {
	t.Helper()
	g, err := ParseRows(rows...)
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	lvl, err := NewLevel("test", "Test", g)
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}
	w, err := NewWorld(lvl, DefaultSettings(), WithSeed(1))
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

// place puts the player at rest on (x, y) as if it had been resolved there.
func place(w *World, x, y float64) {
	p := w.Player()
	p.X, p.Y = x, y
	p.SafeX, p.SafeY = x, y
	p.YPlus = 0
	p.Midair = false
}

func TestNewLevelErrors(t *testing.T) {
	noStart, _ := ParseRows("#.E")
	if _, err := NewLevel("x", "", noStart); !errors.Is(err, ErrNoStart) {
		t.Errorf("expected ErrNoStart, got %v", err)
	}
	if _, err := NewLevel("x", "", nil); !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("expected ErrEmptyLevel, got %v", err)
	}
	if _, err := NewWorld(nil, DefaultSettings()); err == nil {
		t.Error("NewWorld should reject a nil level")
	}
}

func TestWinInThreeByThree(t *testing.T) {
	w := newTestWorld(t,
		"###",
		"#SE",
		"###",
	)
	w.SetControls(Controls{Right: true})

	var res TickResult
	for i := 0; i < 120; i++ {
		res = w.Step(tick)
		if res.Status != StatusOngoing {
			break
		}
	}

	if res.Status != StatusWon {
		t.Fatalf("expected win, got %v", res.Status)
	}
	if res.Elapsed < 0 {
		t.Errorf("elapsed = %v, expected >= 0", res.Elapsed)
	}
	if again := w.Step(tick); again != res {
		t.Errorf("won world should stay won, got %+v", again)
	}
}

func TestWinNeedsAllCoins(t *testing.T) {
	w := newTestWorld(t,
		"######",
		"#SoE.#",
		"######",
	)
	exit := TimerKey{3, 1, TimerExit}
	if w.Timers().Toggled(exit) {
		t.Fatal("exit flash should wait for the coins")
	}
	w.SetControls(Controls{Right: true})

	var res TickResult
	for i := 0; i < 120 && res.Status == StatusOngoing; i++ {
		res = w.Step(tick)
	}

	if res.Status != StatusWon {
		t.Fatalf("expected win, got %v", res.Status)
	}
	if w.CoinsRemaining() != 0 {
		t.Errorf("coins remaining = %d", w.CoinsRemaining())
	}
	if w.Grid().KindAt(2, 1) != KindEmpty {
		t.Error("collected coin should leave an empty tile")
	}
	if !w.Timers().Toggled(exit) {
		t.Error("exit flash should start once every coin is collected")
	}
}

func TestCoinPickupIsIdempotent(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#SoE#",
		"#####",
	)
	if w.CoinsRemaining() != 1 {
		t.Fatalf("expected 1 coin, got %d", w.CoinsRemaining())
	}
	// Aligned on the coin: all four under corners read the same tile.
	place(w, 32, 24)

	w.Step(tick)
	if w.Sample().Under[KindCoin] != CornerCC|CornerCF|CornerFC|CornerFF {
		t.Errorf("expected all corners on the coin, got %v", w.Sample().Under)
	}
	if w.CoinsRemaining() != 0 {
		t.Fatalf("coins remaining = %d, expected 0", w.CoinsRemaining())
	}
	if _, ok := w.Timers().Phase(TimerKey{2, 1, TimerCoin}); ok {
		t.Error("coin timer should be removed with the coin")
	}

	w.Step(tick)
	if w.CoinsRemaining() != 0 {
		t.Errorf("second tick changed the count to %d", w.CoinsRemaining())
	}
}

func TestIdleOnWallDoesNotMove(t *testing.T) {
	w := newTestWorld(t,
		"###",
		"#S#",
		"###",
	)
	w.Step(tick)
	x, y := w.Player().X, w.Player().Y

	for i := 0; i < 100; i++ {
		if res := w.Step(tick); res.Status != StatusOngoing {
			t.Fatalf("tick %d: status %v", i, res.Status)
		}
		p := w.Player()
		if p.X != x || p.Y != y || p.Midair {
			t.Fatalf("tick %d: player moved to (%v, %v) midair=%v", i, p.X, p.Y, p.Midair)
		}
	}
	if x != 16 || y != 24 {
		t.Errorf("player rests at (%v, %v), expected (16, 24)", x, y)
	}
}

func TestFallLandsOnRow(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#.S.#",
		"#...#",
		"#...#",
		"#####",
	)
	for i := 0; i < 120; i++ {
		w.Step(tick)
	}

	p := w.Player()
	if p.Midair {
		t.Fatal("player should have landed")
	}
	if p.Y != 72 || math.Mod(p.Y, 24) != 0 {
		t.Errorf("landed at Y = %v, expected 72", p.Y)
	}
}

func TestSafePositionNeverInsideSolid(t *testing.T) {
	script := []Controls{{Right: true}, {Left: true}, {Right: true}}

	for _, dt := range []float64{tick, 1.0 / 30, 1.0 / 240} {
		w := newTestWorld(t,
			"##########",
			"#........#",
			"#.S....#.#",
			"##########",
		)
		ph := w.Settings().Physics
		n := 0
		for _, c := range script {
			w.SetControls(c)
			for range 300 {
				w.Step(dt)
				n++
				p := w.Player()
				x0 := int(math.Floor(p.SafeX / float64(ph.TileW)))
				x1 := int(math.Ceil((p.SafeX+p.W)/float64(ph.TileW))) - 1
				y0 := int(math.Floor(p.SafeY / float64(ph.TileH)))
				y1 := int(math.Ceil((p.SafeY+p.H)/float64(ph.TileH))) - 1
				for ty := y0; ty <= y1; ty++ {
					for tx := x0; tx <= x1; tx++ {
						if w.Grid().KindAt(tx, ty).Solid() {
							t.Fatalf("dt %v tick %d: safe box (%v, %v) overlaps solid tile (%d, %d)",
								dt, n, p.SafeX, p.SafeY, tx, ty)
						}
					}
				}
			}
		}
	}
}

func TestRunStopsFlushAgainstWall(t *testing.T) {
	w := newTestWorld(t,
		"##########",
		"#........#",
		"#.S....#.#",
		"##########",
	)
	w.SetControls(Controls{Right: true})
	for range 120 {
		w.Step(tick)
	}
	if p := w.Player(); p.X != 96 || p.SafeX != 96 {
		t.Errorf("player at X = %v (safe %v), expected flush at 96", p.X, p.SafeX)
	}

	w.SetControls(Controls{Left: true})
	for range 120 {
		w.Step(tick)
	}
	if p := w.Player(); p.X != 16 {
		t.Errorf("player at X = %v, expected flush at 16", p.X)
	}
}

func TestCrumblingWallEmptiesAfterTimer(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#.S.#",
		"#.%.#",
		"#...#",
		"#####",
	)
	key := TimerKey{2, 2, TimerCrumble}

	for i := 1; i <= 58; i++ {
		w.Step(tick)
		if w.Grid().KindAt(2, 2) != KindCrumblingWall {
			t.Fatalf("wall vanished early at tick %d", i)
		}
	}
	if !w.Timers().Toggled(key) {
		t.Fatal("standing on the wall should start its timer")
	}

	for i := 0; i < 5; i++ {
		w.Step(tick)
	}
	if w.Grid().KindAt(2, 2) != KindEmpty {
		t.Fatal("wall should be gone after one second")
	}
	if _, ok := w.Timers().Phase(key); ok {
		t.Error("finished crumble timer should be removed")
	}

	for i := 0; i < 60; i++ {
		w.Step(tick)
	}
	if p := w.Player(); p.Y != 72 || p.Midair {
		t.Errorf("player should drop to the floor, got Y=%v midair=%v", p.Y, p.Midair)
	}
}

func TestClimbLadderToTop(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#...#",
		"#S..#",
		"#.H.#",
		"#.H.#",
		"#####",
	)
	place(w, 32, 96)
	w.SetControls(Controls{Up: true})

	w.Step(tick)
	if w.Player().Climbing != ClimbStatic || w.Player().Anim != AnimClimb {
		t.Fatalf("expected to grab the ladder, got %v", w.Player().Climbing)
	}

	for i := 0; i < 60; i++ {
		w.Step(tick)
	}
	p := w.Player()
	if p.Climbing != ClimbNone || p.Y != 48 || p.Midair {
		t.Errorf("expected to stand on the ladder top, got climbing=%v Y=%v midair=%v", p.Climbing, p.Y, p.Midair)
	}

	w.SetControls(Controls{})
	for i := 0; i < 30; i++ {
		w.Step(tick)
	}
	if w.Player().Y != 48 {
		t.Errorf("ladder top should hold the player, Y=%v", w.Player().Y)
	}
}

func TestJumpAndLand(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#...#",
		"#...#",
		"#S..#",
		"#####",
	)
	w.Step(tick)
	if w.Player().Midair {
		t.Fatal("player should start on the floor")
	}

	w.SetControls(Controls{Jump: true})
	w.Step(tick)
	w.SetControls(Controls{})

	minY := w.Player().Y
	for i := 0; i < 180; i++ {
		w.Step(tick)
		minY = min(minY, w.Player().Y)
	}
	if minY >= 48 {
		t.Errorf("jump apex at Y=%v, expected above 48", minY)
	}
	if minY < 16 {
		t.Errorf("jump went through the ceiling, apex Y=%v", minY)
	}
	if p := w.Player(); p.Y != 72 || p.Midair {
		t.Errorf("expected to land at 72, got Y=%v midair=%v", p.Y, p.Midair)
	}
}

func TestStopIsTerminal(t *testing.T) {
	w := newTestWorld(t, "S")
	w.Step(tick)
	w.Stop()

	if res := w.Step(tick); res.Status != StatusStopped {
		t.Fatalf("expected stopped, got %v", res.Status)
	}
	if res := w.Step(tick); res.Status != StatusStopped || res.Elapsed != tick {
		t.Errorf("stopped world should not advance, got %+v", res)
	}
}

func TestResetRestoresLevel(t *testing.T) {
	w := newTestWorld(t,
		"######",
		"#SoE.#",
		"##%###",
		"######",
	)
	w.SetControls(Controls{Right: true})
	for i := 0; i < 10; i++ {
		w.Step(tick)
	}
	if w.CoinsRemaining() != 0 {
		t.Fatal("setup: coin should be collected")
	}

	w.Reset()

	if w.CoinsRemaining() != 1 || w.Grid().KindAt(2, 1) != KindCoin {
		t.Error("reset should bring the coin back")
	}
	if w.Elapsed() != 0 || w.Status() != StatusOngoing {
		t.Errorf("reset should restart the clock, got %v %v", w.Elapsed(), w.Status())
	}
	if p := w.Player(); p.X != 16 || p.Y != 24 {
		t.Errorf("player should respawn at (16, 24), got (%v, %v)", p.X, p.Y)
	}
	if w.Timers().Len() != 3 {
		t.Errorf("expected coin, crumble and exit timers, got %d", w.Timers().Len())
	}
}

func TestCoinPeriodsAreSeeded(t *testing.T) {
	rows := []string{"#SoooooE#"}
	a := newTestWorld(t, rows...)
	b := newTestWorld(t, rows...)

	for x := 2; x <= 6; x++ {
		key := TimerKey{x, 0, TimerCoin}
		pa, _ := a.Timers().Phase(key)
		pb, _ := b.Timers().Phase(key)
		if pa.Speed != pb.Speed {
			t.Errorf("coin %d: speeds differ with the same seed", x)
		}
		secs := pa.MaxValue / pa.Speed
		if secs < 0.5-1e-9 || secs > 1.5+1e-9 {
			t.Errorf("coin %d: period %v outside [0.5, 1.5]", x, secs)
		}
	}
}

func TestCameraCenteredOnNarrowLevel(t *testing.T) {
	w := newTestWorld(t,
		"###",
		"#SE",
		"###",
	)
	w.SetControls(Controls{Right: true})
	first := w.Camera()
	for i := 0; i < 5; i++ {
		w.Step(tick)
		if w.Camera() != first {
			t.Fatalf("camera moved: %+v vs %+v", w.Camera(), first)
		}
	}
	if first.X != 296 {
		t.Errorf("camera X = %v, expected 296", first.X)
	}
}
