package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hardcoded platformer configuration.
// It matches defaults/platformer.yaml.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Screen: ScreenConfig{
			Width:    640,
			Height:   480,
			TickRate: 60,
		},
		Tiles: TileConfig{
			Width:  16,
			Height: 24,
		},
		Player: PlayerConfig{
			Width:     16,
			Height:    24,
			Speed:     196,
			Weight:    70,
			JumpPower: 25000,
		},
		Physics: PhysicsConfig{
			Gravity:       800,
			MaxFallSpeed:  1200,
			ClimbSpeed:    0.5,
			HangSpeed:     0.5,
			RunFrameDiv:   8,
			ClimbFrameDiv: 12,
			RunFrames:     16,
			ClimbFrames:   6,
		},
		Timers: TimersConfig{
			CrumbleFrames:  8.99,
			CrumbleSeconds: 1,
			CoinFrames:     5.99,
			CoinMinSeconds: 0.5,
			CoinMaxSeconds: 1.5,
			CoinStep:       0.1,
			ExitFlashSpeed: 2,
		},
		Render: RenderConfig{
			CellColumns: 2,
			HoldMillis:  150,
			ShowHUD:     true,
		},
	}
}
