package tui

import (
	"time"

	"github.com/vovakirdan/retro-rocket/internal/core"
)

// DefaultHoldWindow is how long a steering key counts as held after its
// last press or auto-repeat. Terminals report no key releases.
const DefaultHoldWindow = 200 * time.Millisecond

// heldInput turns discrete key events into per-frame intent sets.
// Steering and thrust stay active for the hold window; everything else,
// fire included, is delivered to exactly one frame. Sustained fire comes
// from keyboard auto-repeat and the game's fire cooldown.
type heldInput struct {
	window  time.Duration
	pressed map[core.Action]time.Time
	edges   core.InputFrame
}

func newHeldInput(window time.Duration) *heldInput {
	return &heldInput{
		window:  window,
		pressed: make(map[core.Action]time.Time),
		edges:   core.NewInputFrame(),
	}
}

// continuous reports whether an action is held rather than triggered.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust:
		return true
	}
	return false
}

// Press records a key event at the given time.
func (h *heldInput) Press(a core.Action, at time.Time) {
	if a == core.ActionNone {
		return
	}
	if continuous(a) {
		h.pressed[a] = at
		return
	}
	h.edges.Set(a)
}

// Frame builds the intent set for a tick at now and consumes edge actions.
func (h *heldInput) Frame(now time.Time) core.InputFrame {
	frame := h.edges.Clone()
	h.edges.Clear()
	for a, at := range h.pressed {
		if now.Sub(at) > h.window {
			delete(h.pressed, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release drops all held actions, used when the game leaves play.
func (h *heldInput) Release() {
	clear(h.pressed)
}
