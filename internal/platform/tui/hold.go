package tui

import (
	"time"

	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
)

// Holds turns key presses into button levels.
//
// Terminals report presses and auto-repeat but never releases, so a button
// counts as down until its hold window passes without another press. Keep
// the crouch window longer than the terminal's initial repeat delay or a
// held key flickers.
type Holds struct {
	windows map[core.Action]time.Duration
	until   map[core.Action]time.Duration
}

// NewHolds creates hold windows for the game buttons.
func NewHolds(cfg config.InputConfig) *Holds {
	jump := time.Duration(cfg.JumpHoldMS) * time.Millisecond
	return &Holds{
		windows: map[core.Action]time.Duration{
			core.ActionJump:   jump,
			core.ActionReset:  jump,
			core.ActionCrouch: time.Duration(cfg.CrouchHoldMS) * time.Millisecond,
		},
		until: make(map[core.Action]time.Duration),
	}
}

// Press records a key press at now. Non-button actions are ignored.
func (h *Holds) Press(a core.Action, now time.Duration) {
	w, ok := h.windows[a]
	if !ok {
		return
	}
	h.until[a] = now + w
}

// Levels returns the buttons that are down at now.
func (h *Holds) Levels(now time.Duration) core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range h.until {
		if now < until {
			f.Set(a)
		}
	}
	return f
}

// Release drops every held button.
func (h *Holds) Release() {
	clear(h.until)
}
