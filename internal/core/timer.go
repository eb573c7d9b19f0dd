package core

import "time"

// FixedStep is a Scheduler driven by the host frame loop. The loop calls Poll
// once per frame and FixedStep decides whether the interval has elapsed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool
	fn          func()

	now func() time.Time
}

// NewFixedStep constructs a stopped FixedStep using the wall clock.
func NewFixedStep() *FixedStep {
	return NewFixedStepWithClock(time.Now)
}

// NewFixedStepWithClock constructs a stopped FixedStep reading time from now.
func NewFixedStepWithClock(now func() time.Time) *FixedStep {
	if now == nil {
		now = time.Now
	}
	return &FixedStep{now: now}
}

// Start begins firing fn every interval. A negative interval is treated as 0,
// which fires on every poll.
func (f *FixedStep) Start(interval time.Duration, fn func()) {
	f.fn = fn
	f.setStep(interval)
	f.accumulator = 0
	f.last = f.now()
	f.running = true
}

// Stop halts future callbacks. The configured interval is kept.
func (f *FixedStep) Stop() {
	f.running = false
	f.accumulator = 0
}

// Reschedule changes the interval. It is safe to call from the main loop and
// while stopped; the elapsed time restarts from zero so the pending callback
// fires exactly once, one new interval from now.
func (f *FixedStep) Reschedule(interval time.Duration) {
	f.setStep(interval)
	f.accumulator = 0
	f.last = f.now()
}

// Interval returns the current period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Running reports whether callbacks are being fired.
func (f *FixedStep) Running() bool { return f.running }

// Poll advances the clock and fires the callback at most once. It reports
// whether the callback ran.
func (f *FixedStep) Poll() bool {
	if !f.running || f.fn == nil {
		return false
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	// Long stalls fire one callback, not a burst.
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	f.fn()
	return true
}

func (f *FixedStep) setStep(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.step = interval
}
