// Package config provides YAML-based configuration loading and difficulty
// presets for the platformer.
package config

// PlatformerConfig holds all tunables of the platformer runtime.
type PlatformerConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Tiles   TileConfig    `yaml:"tiles"`
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Timers  TimersConfig  `yaml:"timers"`
	Render  RenderConfig  `yaml:"render"`
}

// ScreenConfig is the logical viewport in pixels and the tick rate.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// TileConfig is the pixel size of one grid cell.
type TileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player box and its movement constants.
type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`      // Pixels per second
	Weight    float64 `yaml:"weight"`     // kg
	JumpPower float64 `yaml:"jump_power"` // Initial upward speed is jump_power/weight
}

// PhysicsConfig defines gravity, ladders and animation frame pacing.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // 0 disables the cap
	ClimbSpeed    float64 `yaml:"climb_speed"`    // Fraction of run speed
	HangSpeed     float64 `yaml:"hang_speed"`     // Fraction of run speed
	RunFrameDiv   float64 `yaml:"run_frame_div"`
	ClimbFrameDiv float64 `yaml:"climb_frame_div"`
	RunFrames     int     `yaml:"run_frames"`
	ClimbFrames   int     `yaml:"climb_frames"`
}

// TimersConfig defines the tile animation timers.
type TimersConfig struct {
	CrumbleFrames  float64 `yaml:"crumble_frames"`
	CrumbleSeconds float64 `yaml:"crumble_seconds"`
	CoinFrames     float64 `yaml:"coin_frames"`
	CoinMinSeconds float64 `yaml:"coin_min_seconds"`
	CoinMaxSeconds float64 `yaml:"coin_max_seconds"`
	CoinStep       float64 `yaml:"coin_step"`
	ExitFlashSpeed float64 `yaml:"exit_flash_speed"`
}

// RenderConfig controls the terminal renderer.
type RenderConfig struct {
	CellColumns int  `yaml:"cell_columns"` // Terminal columns per tile
	HoldMillis  int  `yaml:"hold_ms"`      // How long a key press stays held
	ShowHUD     bool `yaml:"show_hud"`
	Debug       bool `yaml:"debug"` // Start with the debug overlay visible
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Unknown names are normal.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}
