package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in every search location.
const FileName = "platformer.yaml"

// ErrInvalidConfig is wrapped by every ValidateConfig failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
//
// Files only need to carry the keys they change; everything else keeps its
// default value.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, ValidateConfig(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", FileName)); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile reads an optional config file. Unreadable or invalid files are
// skipped so the next location can be tried.
func tryFile(path string) (PlatformerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, false
	}
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, false
	}
	if ValidateConfig(cfg) != nil {
		return PlatformerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.platformer, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer")
}

// ValidateConfig rejects values the runtime cannot work with.
func ValidateConfig(cfg PlatformerConfig) error {
	switch {
	case cfg.Tiles.Width <= 0 || cfg.Tiles.Height <= 0:
		return fmt.Errorf("%w: tile size %dx%d", ErrInvalidConfig, cfg.Tiles.Width, cfg.Tiles.Height)
	case cfg.Screen.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalidConfig, cfg.Screen.TickRate)
	case cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, cfg.Screen.Width, cfg.Screen.Height)
	case cfg.Player.Weight <= 0:
		return fmt.Errorf("%w: player weight %g", ErrInvalidConfig, cfg.Player.Weight)
	case cfg.Player.Width <= 0 || cfg.Player.Height <= 0:
		return fmt.Errorf("%w: player size %gx%g", ErrInvalidConfig, cfg.Player.Width, cfg.Player.Height)
	case cfg.Player.Width != float64(cfg.Tiles.Width) || cfg.Player.Height != float64(cfg.Tiles.Height):
		// Collision samples whole tiles around the player's corner.
		return fmt.Errorf("%w: player size %gx%g must match tile size %dx%d", ErrInvalidConfig,
			cfg.Player.Width, cfg.Player.Height, cfg.Tiles.Width, cfg.Tiles.Height)
	case cfg.Physics.MaxFallSpeed < 0:
		return fmt.Errorf("%w: max_fall_speed %g", ErrInvalidConfig, cfg.Physics.MaxFallSpeed)
	case cfg.Timers.CrumbleSeconds <= 0:
		return fmt.Errorf("%w: crumble_seconds %g", ErrInvalidConfig, cfg.Timers.CrumbleSeconds)
	case cfg.Timers.CoinMinSeconds <= 0 || cfg.Timers.CoinMaxSeconds < cfg.Timers.CoinMinSeconds:
		return fmt.Errorf("%w: coin period %g..%g", ErrInvalidConfig, cfg.Timers.CoinMinSeconds, cfg.Timers.CoinMaxSeconds)
	case cfg.Render.CellColumns <= 0:
		return fmt.Errorf("%w: cell_columns %d", ErrInvalidConfig, cfg.Render.CellColumns)
	}
	return nil
}

// ApplyDifficultyPreset modifies the config based on a difficulty preset.
// Easy walls crumble slower and falls are capped lower; hard walls give way
// sooner.
func ApplyDifficultyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timers.CrumbleSeconds *= 2
		if cfg.Physics.MaxFallSpeed == 0 || cfg.Physics.MaxFallSpeed > 900 {
			cfg.Physics.MaxFallSpeed = 900
		}
	case DifficultyHard:
		cfg.Timers.CrumbleSeconds *= 0.6
	}
}
