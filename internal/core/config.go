package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// FrameSeconds returns the simulated duration of one tick.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Leaderboard score so far
	GameOver bool // Whether the match has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// MatchSummary describes a finished match for the score store.
type MatchSummary struct {
	Winner         string   // "player" or "cpu"
	Sets           []string // Completed set scores from the player's side, e.g. "6-4"
	PlayerSets     int
	OpponentSets   int
	PointsWon      int
	PointsLost     int
	QuestionsAsked int
	Correct        int
	Duration       time.Duration
}
