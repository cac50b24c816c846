package core

import (
	"sync"
	"time"
)

// Clock abstracts the wall clock so loops can be driven deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current wall time.
func (SystemClock) Now() time.Time { return time.Now() }

// StepClock advances by a fixed step on every call to Now. It is safe for
// concurrent use.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock returns a clock starting at the Unix epoch that moves forward
// by step each time it is read.
func NewStepClock(step time.Duration) *StepClock {
	if step < 0 {
		step = 0
	}
	return &StepClock{now: time.Unix(0, 0), step: step}
}

// Now returns the current reading and then advances the clock.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// FrameTimer measures the real time that passed between loop iterations.
type FrameTimer struct {
	clock Clock
	last  time.Time
}

// NewFrameTimer starts measuring from the current clock reading.
func NewFrameTimer(clock Clock) *FrameTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameTimer{clock: clock, last: clock.Now()}
}

// Tick returns the milliseconds elapsed since the previous Tick (or since
// construction). The result is never negative.
func (f *FrameTimer) Tick() float64 {
	now := f.clock.Now()
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	return float64(delta) / float64(time.Millisecond)
}
