// Package platformer adapts the tile platformer simulation to the platform's
// Game interface: input frames become held controls, terminal cells become
// viewport pixels and the world is drawn into a core.Screen.
package platformer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	engine "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// hudRows is the number of screen rows above the map.
const hudRows = 1

// Game plays the levels of one pack, starting at a given level.
type Game struct {
	loader *levels.Loader
	cfg    config.PlatformerConfig
	logger *log.Logger

	id    string
	title string
	rc    engine.RuntimeConfig
	world *core.World
	err   error // Level failed to load; rendered instead of the map

	state     engine.GameState
	prevInput engine.InputFrame // Held platform actions of the previous tick
}

// New creates a game that starts on level id.
func New(loader *levels.Loader, id string, cfg config.PlatformerConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{loader: loader, cfg: cfg, logger: logger, id: id, title: id}
	if e, err := loader.Entry(id); err == nil {
		g.title = e.Name
	}
	return g
}

// RegisterLevels adds one factory per level of the pack, in pack order.
func RegisterLevels(reg *registry.Registry, loader *levels.Loader, cfg config.PlatformerConfig, logger *log.Logger) error {
	for _, e := range loader.Entries() {
		id := e.ID
		if err := reg.Register(id, e.Name, func() registry.Game {
			return New(loader, id, cfg, logger)
		}); err != nil {
			return err
		}
	}
	return nil
}

// SettingsFromConfig converts the YAML configuration into simulation settings.
func SettingsFromConfig(cfg config.PlatformerConfig) core.Settings {
	return core.Settings{
		ScreenW: float64(cfg.Screen.Width),
		ScreenH: float64(cfg.Screen.Height),
		Physics: core.Physics{
			TileW:         cfg.Tiles.Width,
			TileH:         cfg.Tiles.Height,
			Gravity:       cfg.Physics.Gravity,
			MaxFallSpeed:  cfg.Physics.MaxFallSpeed,
			ClimbSpeed:    cfg.Physics.ClimbSpeed,
			HangSpeed:     cfg.Physics.HangSpeed,
			RunFrameDiv:   cfg.Physics.RunFrameDiv,
			ClimbFrameDiv: cfg.Physics.ClimbFrameDiv,
			RunFrames:     cfg.Physics.RunFrames,
			ClimbFrames:   cfg.Physics.ClimbFrames,
		},
		Player: core.PlayerSpec{
			W:         cfg.Player.Width,
			H:         cfg.Player.Height,
			Speed:     cfg.Player.Speed,
			Weight:    cfg.Player.Weight,
			JumpPower: cfg.Player.JumpPower,
		},
		Timers: core.TimerSpec{
			CrumbleFrames:  cfg.Timers.CrumbleFrames,
			CrumbleSeconds: cfg.Timers.CrumbleSeconds,
			CoinFrames:     cfg.Timers.CoinFrames,
			CoinMinSeconds: cfg.Timers.CoinMinSeconds,
			CoinMaxSeconds: cfg.Timers.CoinMaxSeconds,
			CoinStep:       cfg.Timers.CoinStep,
			ExitFlashSpeed: cfg.Timers.ExitFlashSpeed,
		},
	}
}

// ControlsFrom picks the movement actions out of an input frame.
func ControlsFrom(in engine.InputFrame) core.Controls {
	return core.Controls{
		Left:  in.Has(engine.ActionLeft),
		Right: in.Has(engine.ActionRight),
		Up:    in.Has(engine.ActionUp),
		Down:  in.Has(engine.ActionDown),
		Jump:  in.Has(engine.ActionJump),
	}
}

// ID returns the id of the level being played.
func (g *Game) ID() string { return g.id }

// Title returns the level name.
func (g *Game) Title() string { return g.title }

// World exposes the running simulation, nil until Reset succeeds.
func (g *Game) World() *core.World { return g.world }

// Err returns the level load error, if any.
func (g *Game) Err() error { return g.err }

// Reset loads the current level and starts it from scratch.
func (g *Game) Reset(rc engine.RuntimeConfig) {
	g.rc = rc
	g.state = engine.GameState{}
	g.prevInput = engine.NewInputFrame()
	g.world = nil

	lvl, err := g.loader.Load(g.id)
	if err != nil {
		g.err = err
		g.logger.Error("cannot load level", "level", g.id, "err", err)
		return
	}
	g.err = nil
	g.title = lvl.Name

	w, err := core.NewWorld(lvl, SettingsFromConfig(g.cfg),
		core.WithLogger(g.logger),
		core.WithSeed(rc.Seed))
	if err != nil {
		g.err = err
		g.logger.Error("cannot start level", "level", g.id, "err", err)
		return
	}
	if g.cfg.Render.Debug {
		w.ToggleDebug()
	}
	g.world = w
	g.fitViewport()
	g.syncState()
}

// fitViewport sizes the camera viewport to the terminal map area.
func (g *Game) fitViewport() {
	if g.world == nil || g.rc.ScreenW <= 0 || g.rc.ScreenH <= 0 {
		return
	}
	cols := g.cellColumns()
	ph := g.world.Settings().Physics
	rows := max(g.rc.ScreenH-hudRows, 1)
	g.world.SetScreen(
		float64(g.rc.ScreenW)/float64(cols)*float64(ph.TileW),
		float64(rows*ph.TileH))
}

// Resize adapts the viewport to a new terminal size without restarting.
func (g *Game) Resize(width, height int) {
	g.rc.ScreenW = width
	g.rc.ScreenH = height
	g.fitViewport()
}

func (g *Game) cellColumns() int {
	if g.cfg.Render.CellColumns <= 0 {
		return 1
	}
	return g.cfg.Render.CellColumns
}

// pressed reports an action held now but not on the previous tick.
func (g *Game) pressed(in engine.InputFrame, a engine.Action) bool {
	return in.Has(a) && !g.prevInput.Has(a)
}

// Step advances one tick.
// Platform actions (pause, restart, next, debug) trigger on press; movement
// actions are held for as long as they are in the frame.
func (g *Game) Step(in engine.InputFrame) engine.StepResult {
	defer func() { g.prevInput = in.Clone() }()

	if g.world == nil {
		return engine.StepResult{State: g.state}
	}

	if g.pressed(in, engine.ActionQuit) {
		g.world.Stop()
	}
	if g.pressed(in, engine.ActionDebug) {
		on := g.world.ToggleDebug()
		g.logger.Debug("debug overlay", "on", on)
	}
	if g.pressed(in, engine.ActionRestart) {
		g.world.Reset()
		g.state.Paused = false
		g.syncState()
		return engine.StepResult{State: g.state}
	}
	if g.state.Complete && g.pressed(in, engine.ActionNext) {
		if next, ok := g.loader.Next(g.id); ok {
			g.logger.Info("next level", "from", g.id, "to", next)
			g.id = next
			g.Reset(g.rc)
			return engine.StepResult{State: g.state}
		}
	}
	if g.pressed(in, engine.ActionPause) && !g.state.Over() {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused && !in.Has(engine.ActionQuit) {
		return engine.StepResult{State: g.state}
	}

	g.world.SetControls(ControlsFrom(in))
	g.world.Step(g.rc.TickSeconds())
	g.syncState()
	return engine.StepResult{State: g.state}
}

func (g *Game) syncState() {
	st := g.world.Status()
	g.state.CoinsLeft = g.world.CoinsRemaining()
	g.state.Elapsed = g.world.Elapsed()
	g.state.Complete = st == core.StatusWon
	g.state.Stopped = st == core.StatusStopped
	if g.state.Over() {
		g.state.Paused = false
	}
}

// State returns the current game state.
func (g *Game) State() engine.GameState {
	return g.state
}

var _ registry.Game = (*Game)(nil)
