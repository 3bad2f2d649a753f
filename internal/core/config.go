package core

// RuntimeConfig contains configuration passed to games at initialization.
// Simulation time advances by 1/TickRate per step, so a round replays the
// same way for the same inputs.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns the runtime used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Editing  bool   // Whether the game is in an edit mode that owns the pointer
	Winner   string // Empty until the game is over
	Message  string // Transient status line, e.g. a rejected editor save
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []string // Human-readable events for logging
}

// RoundSummary describes a finished round for persistence.
type RoundSummary struct {
	Winner         string
	Score          int
	Remaining      int
	PursuersCaught int
	Duration       float64 // Simulated seconds
	CustomMaze     bool    // Round was played on an edited maze
}
