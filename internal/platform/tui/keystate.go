package tui

import (
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// KeyState derives held movement keys from terminal key events.
//
// Terminals report presses and auto-repeats but no releases, so a key counts
// as held until window has passed since it was last seen. Pressing a
// direction releases the opposite one immediately.
type KeyState struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// NewKeyState creates a tracker with the given hold window.
func NewKeyState(window time.Duration) *KeyState {
	return &KeyState{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records that a movement key was seen at now.
func (k *KeyState) Press(a core.Action, now time.Time) {
	k.lastSeen[a] = now
	if o, ok := opposite[a]; ok {
		delete(k.lastSeen, o)
	}
}

// Held reports whether a is still inside its hold window at now.
func (k *KeyState) Held(a core.Action, now time.Time) bool {
	seen, ok := k.lastSeen[a]
	if !ok {
		return false
	}
	if now.Sub(seen) > k.window {
		delete(k.lastSeen, a)
		return false
	}
	return true
}

// Apply marks every held action in frame.
func (k *KeyState) Apply(frame *core.InputFrame, now time.Time) {
	for a := range k.lastSeen {
		if k.Held(a, now) {
			frame.Hold(a)
		}
	}
}

// Reset releases everything.
func (k *KeyState) Reset() {
	clear(k.lastSeen)
}
