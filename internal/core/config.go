package core

import "time"

// RuntimeConfig is handed to a game at initialization by the platform.
// Games use it to fit the terminal and to seed their RNG deterministically.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the fixed simulation step in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// TickInterval returns the wall-clock time between ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickSeconds() * float64(time.Second))
}

// GameState is the platform-facing summary of a running level.
type GameState struct {
	CoinsLeft int     // Coins still to collect
	Elapsed   float64 // Simulated seconds since the level started
	Complete  bool    // Level finished (won)
	Stopped   bool    // Emergency stop was requested
	Paused    bool    // Game is paused
}

// Over reports whether the simulation has reached a terminal state.
func (s GameState) Over() bool {
	return s.Complete || s.Stopped
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
