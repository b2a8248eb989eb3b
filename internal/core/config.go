package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the frame driver (default 60)
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

// FrameInterval returns the nominal time between two frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// MaxFrameDelta caps the delta handed to Step so a stalled terminal or a
// suspended window does not teleport entities through each other.
const MaxFrameDelta = 100 * time.Millisecond

// ClampDelta restricts a measured frame delta to [0, MaxFrameDelta].
func ClampDelta(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Victory  bool   // Whether the game ended in victory
	Scene    string // Name of the active scene
	Level    string // Name of the current difficulty level
	Launches int    // Successful production launches
	Branch   string // Branch picked for this run

	Elapsed time.Duration // Gameplay time of the current run, pauses excluded
}

// Tone is a short audible cue requested by a game.
type Tone struct {
	Freq     float64       // Frequency in Hz
	Duration time.Duration // Length of the tone
}

// TonePlayer plays the cues returned by a step.
type TonePlayer interface {
	Play(tones ...Tone)
	Close()
}

// Silent discards every tone. Used when sound is off and over SSH.
type Silent struct{}

// Play does nothing.
func (Silent) Play(...Tone) {}

// Close does nothing.
func (Silent) Close() {}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues that occurred.
type StepResult struct {
	State GameState
	Tones []Tone
}
