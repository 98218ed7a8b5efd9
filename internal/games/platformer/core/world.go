package core

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Status is the outcome of a tick.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusWon
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusStopped:
		return "stopped"
	default:
		return "ongoing"
	}
}

// TickResult is returned by World.Step.
type TickResult struct {
	Status  Status
	Elapsed float64 // Simulated seconds since the level started
}

// TimerSpec configures the per-tile timers created when a level starts.
type TimerSpec struct {
	CrumbleFrames  float64 // Crumble timer max value
	CrumbleSeconds float64
	CoinFrames     float64 // Coin timer max value
	CoinMinSeconds float64 // Each coin spins once every Min..Max seconds
	CoinMaxSeconds float64
	CoinStep       float64 // Granularity of the random coin period
	ExitFlashSpeed float64 // Flash cycles of 0..1 per second
}

// DefaultTimerSpec returns the stock timer constants.
func DefaultTimerSpec() TimerSpec {
	return TimerSpec{
		CrumbleFrames:  8.99,
		CrumbleSeconds: 1,
		CoinFrames:     5.99,
		CoinMinSeconds: 0.5,
		CoinMaxSeconds: 1.5,
		CoinStep:       0.1,
		ExitFlashSpeed: 2,
	}
}

// Settings bundles everything a World needs besides the level.
type Settings struct {
	ScreenW, ScreenH float64 // Viewport in pixels
	Physics          Physics
	Player           PlayerSpec
	Timers           TimerSpec
}

// DefaultSettings returns a 640x480 viewport with stock physics.
func DefaultSettings() Settings {
	return Settings{
		ScreenW: 640,
		ScreenH: 480,
		Physics: DefaultPhysics(),
		Player:  DefaultPlayerSpec(),
		Timers:  DefaultTimerSpec(),
	}
}

// Option customizes a World.
type Option func(*World)

// WithLogger routes World events to l.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithSeed seeds the RNG used for coin periods.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.seed = seed
	}
}

// World owns all mutable simulation state for one level.
// It is not safe for concurrent use, except for Stop.
type World struct {
	level *Level
	set   Settings

	grid    *Grid
	timers  *Timers
	player  *Player
	gravity *Gravity
	camera  Camera
	coords  SampleCoords
	sample  NeighborSample
	hits    Hits

	controls Controls
	coins    int
	elapsed  float64
	status   Status
	debug    bool
	stopReq  atomic.Bool

	seed   int64
	rng    *rand.Rand
	logger *log.Logger
}

// NewWorld creates a World ready to step on the given level.
func NewWorld(level *Level, set Settings, opts ...Option) (*World, error) {
	if level == nil {
		return nil, ErrEmptyLevel
	}
	if set.Physics.TileW <= 0 || set.Physics.TileH <= 0 {
		return nil, errors.New("world: tile size must be positive")
	}

	w := &World{
		level:  level,
		set:    set,
		timers: NewTimers(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.rng = rand.New(rand.NewSource(w.seed))
	w.gravity = NewGravity(set.Physics.Gravity, set.Physics.MaxFallSpeed)

	w.start()
	w.logger.Info("level started", "level", level.ID, "w", level.W, "h", level.H, "coins", w.coins)
	return w, nil
}

// Reset restores the level to its pristine state: collected coins return,
// crumbled walls reappear and the player respawns.
func (w *World) Reset() {
	w.rng = rand.New(rand.NewSource(w.seed))
	w.stopReq.Store(false)
	w.start()
	w.logger.Info("level reset", "level", w.level.ID)
}

func (w *World) start() {
	ph := w.set.Physics
	w.grid = w.level.Grid()
	w.timers.Reset()
	w.coins = w.level.CoinsTotal
	w.elapsed = 0
	w.status = StatusOngoing
	w.controls = Controls{}
	w.sample = NeighborSample{}
	w.hits = Hits{}

	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			switch w.grid.KindAt(x, y) {
			case KindCrumblingWall:
				w.timers.Create(TimerKey{x, y, TimerCrumble}, TimerConfig{
					MaxValue: w.set.Timers.CrumbleFrames,
					Seconds:  w.set.Timers.CrumbleSeconds,
					Destroy:  true,
				})
			case KindCoin:
				w.timers.Create(TimerKey{x, y, TimerCoin}, TimerConfig{
					MaxValue: w.set.Timers.CoinFrames,
					Seconds:  w.coinPeriod(),
					Toggled:  true,
				})
			case KindEnd:
				w.timers.CreateFlash(TimerKey{x, y, TimerExit}, w.set.Timers.ExitFlashSpeed)
			}
		}
	}
	if w.coins <= 0 {
		w.toggleExits()
	}

	if w.player != nil {
		w.gravity.Unregister(w.player)
	}
	w.player = NewPlayer(w.set.Player,
		float64(w.level.StartX*ph.TileW),
		float64(w.level.StartY*ph.TileH))
	w.gravity.Register(w.player)
	w.updateCamera()
}

// coinPeriod picks a random spin period on the CoinStep grid.
func (w *World) coinPeriod() float64 {
	t := w.set.Timers
	if t.CoinStep <= 0 || t.CoinMaxSeconds <= t.CoinMinSeconds {
		return t.CoinMinSeconds
	}
	steps := int(math.Round((t.CoinMaxSeconds-t.CoinMinSeconds)/t.CoinStep)) + 1
	return t.CoinMinSeconds + float64(w.rng.Intn(steps))*t.CoinStep
}

// SetControls sets the actions held for the following ticks.
func (w *World) SetControls(c Controls) {
	w.controls = c
}

// SetScreen changes the viewport size in pixels.
func (w *World) SetScreen(width, height float64) {
	w.set.ScreenW = width
	w.set.ScreenH = height
	w.updateCamera()
}

// Stop requests an emergency stop. It takes effect at the next Step and may
// be called from any goroutine.
func (w *World) Stop() {
	w.stopReq.Store(true)
}

// ToggleDebug flips the debug flag and returns the new value.
func (w *World) ToggleDebug() bool {
	w.debug = !w.debug
	return w.debug
}

// Step advances the simulation by dt seconds. Once a level is won or stopped
// every further call returns the same terminal result.
func (w *World) Step(dt float64) TickResult {
	if w.status != StatusOngoing {
		return w.result()
	}
	if w.stopReq.Load() {
		w.status = StatusStopped
		w.logger.Info("emergency stop", "level", w.level.ID, "elapsed", w.elapsed)
		return w.result()
	}

	w.elapsed += dt
	w.sampleNeighbors()

	if w.coins <= 0 && w.sample.Under.Has(KindEnd) {
		w.status = StatusWon
		w.logger.Info("level complete", "level", w.level.ID, "elapsed", w.elapsed)
		return w.result()
	}

	p, ph := w.player, w.set.Physics
	p.Move(w.controls, w.sample, ph, dt)
	p.CheckGround(w.sample)
	p.LimitFrames(ph)
	w.hits = p.Resolve(w.sample, w.grid, ph)
	p.Jump(w.controls, w.sample)
	w.gravity.Apply(dt)

	w.updateCamera()

	for _, key := range w.timers.Advance(dt) {
		if key.Kind != TimerCrumble {
			continue
		}
		w.grid.SetKind(key.X, key.Y, KindEmpty)
		w.timers.Remove(key)
		w.logger.Debug("wall crumbled", "x", key.X, "y", key.Y)
	}

	return w.result()
}

// sampleNeighbors rebuilds the neighbor sample at the player's position and
// applies its side effects: picking up coins and starting crumble timers.
func (w *World) sampleNeighbors() {
	p, ph := w.player, w.set.Physics
	w.coords = CoordsAt(p.X, p.Y, ph.TileW, ph.TileH)
	w.sample = SampleNeighbors(w.grid, w.coords)

	if w.sample.Under.Has(KindCoin) {
		for _, t := range w.coords.underTiles() {
			if w.grid.KindAt(t[0], t[1]) != KindCoin {
				continue
			}
			w.grid.SetKind(t[0], t[1], KindEmpty)
			w.timers.Remove(TimerKey{t[0], t[1], TimerCoin})
			w.coins--
			w.logger.Debug("coin collected", "x", t[0], "y", t[1], "left", w.coins)
			if w.coins == 0 {
				w.toggleExits()
			}
		}
	}

	if p.YPlus >= 0 {
		m := w.sample.Below[KindCrumblingWall]
		row := w.coords.FY + 1
		if m&CornerCC != 0 {
			w.crumble(w.coords.CX, row)
		}
		if m&CornerFC != 0 {
			w.crumble(w.coords.FX, row)
		}
	}
}

func (w *World) crumble(x, y int) {
	key := TimerKey{x, y, TimerCrumble}
	if w.timers.Toggled(key) {
		return
	}
	if _, ok := w.timers.Phase(key); !ok {
		return
	}
	w.timers.Toggle(key, true)
	w.logger.Debug("wall crumbling", "x", x, "y", y)
}

func (w *World) toggleExits() {
	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			if w.grid.KindAt(x, y) == KindEnd {
				w.timers.Toggle(TimerKey{x, y, TimerExit}, true)
			}
		}
	}
}

func (w *World) updateCamera() {
	lw, lh := w.level.PixelSize(w.set.Physics.TileW, w.set.Physics.TileH)
	w.camera = FollowCamera(w.set.ScreenW, w.set.ScreenH, lw, lh, w.player.X, w.player.Y)
}

func (w *World) result() TickResult {
	return TickResult{Status: w.status, Elapsed: w.elapsed}
}

// Player returns the player. Callers must treat it as read-only.
func (w *World) Player() *Player { return w.player }

// Camera returns the camera computed on the last tick.
func (w *World) Camera() Camera { return w.camera }

// Grid returns the live tilemap. Callers must treat it as read-only.
func (w *World) Grid() *Grid { return w.grid }

// Sample returns the neighbor sample taken on the last tick.
func (w *World) Sample() NeighborSample { return w.sample }

// Coords returns the tile coordinates of the last sample.
func (w *World) Coords() SampleCoords { return w.coords }

// Hits returns what the player collided with on the last tick.
func (w *World) Hits() Hits { return w.hits }

// Timers returns the timer registry for rendering animated tiles.
func (w *World) Timers() *Timers { return w.timers }

// CoinsRemaining returns the number of coins still in the level.
func (w *World) CoinsRemaining() int { return w.coins }

// Level returns the level being played.
func (w *World) Level() *Level { return w.level }

// Settings returns the active settings.
func (w *World) Settings() Settings { return w.set }

// Elapsed returns simulated seconds since the level started.
func (w *World) Elapsed() float64 { return w.elapsed }

// Status returns the status after the last tick.
func (w *World) Status() Status { return w.status }

// Debug reports whether the debug overlay is on.
func (w *World) Debug() bool { return w.debug }
