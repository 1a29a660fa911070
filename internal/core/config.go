package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions are in world units; hosts scale them to their own output.
type RuntimeConfig struct {
	ScreenW  int   // World width
	ScreenH  int   // World height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1280,
		ScreenH:  720,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Scene    string // Name of the active scene
	Score    int    // Current score
	GameOver bool   // Whether the session has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Frame Frame

	// Restart is set when the player asked for a full reset.
	// The platform answers by calling Game.Reset.
	Restart bool

	// Err carries a non-fatal problem raised during the tick
	// (for example an unreadable high score file). The game keeps running.
	Err error
}
