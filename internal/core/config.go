package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; the terminal size only matters
// to the platform, which scales the game's logical canvas onto it.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Clock    Clock // Time source; nil means a fresh SystemClock
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

// ClockOrSystem returns the configured clock or a new system clock.
func (c RuntimeConfig) ClockOrSystem() Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return NewSystemClock()
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Exited   bool // Whether the player asked to leave
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventLivesChanged
	EventSpeedUp
	EventFlash
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score"
	case EventLivesChanged:
		return "lives"
	case EventSpeedUp:
		return "speed-up"
	case EventFlash:
		return "flash"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation layer.
type Event struct {
	Kind     EventKind
	Value    float64       // New score, lives or speed depending on Kind
	Duration time.Duration // How long the platform must freeze (EventFlash)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
