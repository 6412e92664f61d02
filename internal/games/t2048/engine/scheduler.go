package engine

import "time"

// Clock schedules deferred callbacks. Implementations must run fn on the
// caller's goroutine; the engine is not safe for concurrent use.
type Clock interface {
	AfterFunc(d time.Duration, fn func())
}

// ManualClock fires callbacks only when advanced explicitly.
// UI loops advance it once per tick; tests advance it directly.
type ManualClock struct {
	now     time.Duration
	seq     uint64
	pending []pendingCall
}

type pendingCall struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewManualClock creates a clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// AfterFunc registers fn to run once the clock has advanced by d.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) {
	c.seq++
	c.pending = append(c.pending, pendingCall{at: c.now + d, seq: c.seq, fn: fn})
}

// Advance moves the clock forward and runs every callback that became due,
// in deadline order. Callbacks scheduled while advancing run in the same call
// if they fall inside the window.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next < 0 {
			break
		}
		call := c.pending[next]
		c.pending = append(c.pending[:next], c.pending[next+1:]...)
		if call.at > c.now {
			c.now = call.at
		}
		call.fn()
	}
	c.now = target
}

// Pending returns the number of callbacks not yet fired.
func (c *ManualClock) Pending() int {
	return len(c.pending)
}

// Now returns the elapsed clock time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

func (c *ManualClock) nextDue(target time.Duration) int {
	idx := -1
	for i, p := range c.pending {
		if p.at > target {
			continue
		}
		if idx < 0 || p.at < c.pending[idx].at || (p.at == c.pending[idx].at && p.seq < c.pending[idx].seq) {
			idx = i
		}
	}
	return idx
}

// Stage is one step of a move's visible completion.
type Stage func()

// Scheduler sequences the stages of an accepted move as one timer chain and
// holds the moving lock from the first stage until the last one finishes.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	locked   bool
	epoch    uint64
}

// NewScheduler creates a scheduler. A zero interval or nil clock runs every
// chain synchronously.
func NewScheduler(clock Clock, interval time.Duration) *Scheduler {
	if interval < 0 {
		interval = 0
	}
	return &Scheduler{clock: clock, interval: interval}
}

// Locked reports whether a chain is in flight.
func (s *Scheduler) Locked() bool {
	return s.locked
}

// Interval returns the delay between stages.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run starts a chain. The first stage runs immediately, each following stage
// after the interval. Returns false if a chain is already running.
func (s *Scheduler) Run(stages ...Stage) bool {
	if s.locked {
		return false
	}
	if len(stages) == 0 {
		return true
	}
	s.locked = true
	s.step(s.epoch, stages)
	return true
}

// Reset drops any chain in flight and releases the lock.
// Stages scheduled before the reset are ignored when they fire.
func (s *Scheduler) Reset() {
	s.epoch++
	s.locked = false
}

func (s *Scheduler) step(epoch uint64, stages []Stage) {
	if epoch != s.epoch {
		return
	}
	stages[0]()
	if epoch != s.epoch {
		// A stage reset the scheduler; the chain is gone.
		return
	}
	rest := stages[1:]
	if len(rest) == 0 {
		s.locked = false
		return
	}
	if s.interval == 0 || s.clock == nil {
		s.step(epoch, rest)
		return
	}
	s.clock.AfterFunc(s.interval, func() {
		s.step(epoch, rest)
	})
}

