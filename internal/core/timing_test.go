package core

import (
	"testing"
	"time"
)

func TestSchedulerFiresOncePerInterval(t *testing.T) {
	s := NewScheduler(30 * time.Millisecond)

	tests := []struct {
		now      time.Duration
		expected bool
	}{
		{10 * time.Millisecond, false},
		{29 * time.Millisecond, false},
		{30 * time.Millisecond, true},
		{30 * time.Millisecond, false}, // same instant never fires twice
		{59 * time.Millisecond, false},
		{60 * time.Millisecond, true},
	}

	for _, tc := range tests {
		if got := s.Tick(tc.now); got != tc.expected {
			t.Errorf("Tick(%v) = %v, expected %v", tc.now, got, tc.expected)
		}
	}
}

func TestSchedulerDoesNotCatchUp(t *testing.T) {
	s := NewScheduler(30 * time.Millisecond)

	// Stall for ten intervals; only one tick should fire
	if !s.Tick(300 * time.Millisecond) {
		t.Fatal("expected a tick after a long stall")
	}
	if s.Tick(300 * time.Millisecond) {
		t.Error("missed ticks must not be replayed")
	}
	if s.Tick(329 * time.Millisecond) {
		t.Error("next tick is measured from the late tick, not the nominal grid")
	}
	if !s.Tick(330 * time.Millisecond) {
		t.Error("expected tick one interval after the late tick")
	}
}

func TestSchedulerNoSideEffectOnFalse(t *testing.T) {
	s := NewScheduler(30 * time.Millisecond)
	s.Tick(30 * time.Millisecond)

	s.Tick(45 * time.Millisecond)
	if s.Last() != 30*time.Millisecond {
		t.Errorf("Last() = %v after a rejected poll, expected 30ms", s.Last())
	}
}

func TestPhaseTimer(t *testing.T) {
	pt := NewPhaseTimer(150*time.Millisecond, true)

	for i := 0; i < 4; i++ {
		pt.Advance(30 * time.Millisecond)
	}
	if !pt.Phase() {
		t.Error("phase should not flip before the period elapses")
	}

	pt.Advance(30 * time.Millisecond) // 150ms total
	if pt.Phase() {
		t.Error("phase should flip once the period elapses")
	}

	// A huge step flips only once
	pt.Advance(time.Second)
	if !pt.Phase() {
		t.Error("phase should flip exactly once per Advance")
	}
}

func TestPhaseTimerIgnoresBadInput(t *testing.T) {
	pt := NewPhaseTimer(0, false)
	if pt.Advance(time.Second) {
		t.Error("zero period should never flip")
	}

	pt = NewPhaseTimer(10*time.Millisecond, false)
	pt.Advance(-time.Second)
	if pt.Phase() {
		t.Error("negative dt should be ignored")
	}
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	c.Advance(30 * time.Millisecond)
	c.Advance(-time.Hour)
	if c.Now() != 30*time.Millisecond {
		t.Errorf("Now() = %v, expected 30ms", c.Now())
	}
}
