package core

import "time"

// PhaseTimer toggles a boolean phase every period.
// It is fed elapsed time by its owner and knows nothing about the simulation,
// so swapping animation assets never changes game timing.
type PhaseTimer struct {
	period  time.Duration
	elapsed time.Duration
	phase   bool
}

// NewPhaseTimer creates a timer with the given period and starting phase.
func NewPhaseTimer(period time.Duration, phase bool) *PhaseTimer {
	return &PhaseTimer{period: period, phase: phase}
}

// Advance adds dt to the accumulator and flips the phase once the period has
// passed. Like the firmware's millis() comparison it flips at most once per
// call and drops the remainder.
func (t *PhaseTimer) Advance(dt time.Duration) bool {
	if t.period <= 0 || dt <= 0 {
		return t.phase
	}
	t.elapsed += dt
	if t.elapsed >= t.period {
		t.elapsed = 0
		t.phase = !t.phase
	}
	return t.phase
}

// Phase returns the current phase.
func (t *PhaseTimer) Phase() bool {
	return t.phase
}
