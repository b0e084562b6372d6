package core

import "time"

// RuntimeConfig contains the shell-side settings a session is run with.
type RuntimeConfig struct {
	ScreenW       int           // Display width (cells or pixels, shell dependent)
	ScreenH       int           // Display height
	TickRate      int           // Frames per second (default 60)
	Seed          int64         // RNG seed; 0 means derive from the clock
	MaxFrameDelta time.Duration // Upper bound on a single frame's dt
}

// ResolveSeed returns the configured seed, or a clock-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// FrameDelta converts the wall-clock gap between two frames into a
// simulation dt in seconds, clamped to [0, MaxFrameDelta].
func (c RuntimeConfig) FrameDelta(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	if c.MaxFrameDelta > 0 && elapsed > c.MaxFrameDelta {
		elapsed = c.MaxFrameDelta
	}
	return elapsed.Seconds()
}

// GameState is the coarse status shells use to drive their own behavior.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
}

// StepResult is returned after each simulation step.
type StepResult struct {
	State GameState
}
