package core

import "time"

// Scheduler gates simulation steps to a fixed interval.
//
// It does not accumulate: if several intervals elapse between polls only one
// tick fires, so a slow frame drops simulation time instead of replaying it.
type Scheduler struct {
	interval time.Duration
	last     time.Duration
}

// NewScheduler creates a scheduler firing every interval.
// A non-positive interval fires on every poll.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{interval: interval}
}

// Interval returns the configured tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Tick reports whether a simulation step is due at now.
// On true the reference time moves to now; on false nothing changes.
func (s *Scheduler) Tick(now time.Duration) bool {
	if now-s.last < s.interval {
		return false
	}
	s.last = now
	return true
}

// Last returns the timestamp of the most recent tick.
func (s *Scheduler) Last() time.Duration {
	return s.last
}
