package core

import "time"

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game when it starts a run.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 asks the platform for a time based one
}

// DefaultConfig returns an 80x24 screen at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// TickDuration is the wall time of one tick. A non-positive rate falls back
// to DefaultTickRate.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the platform-facing summary of a run.
type GameState struct {
	Score    int  // Ducklings captured
	GameOver bool // Won or lost
	Won      bool
	Paused   bool
}

// StepResult is returned after each tick.
type StepResult struct {
	State GameState
}
