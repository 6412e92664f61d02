package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawns
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

// GameState is the status the platform needs from a running game.
type GameState struct {
	Score    int
	Best     int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
