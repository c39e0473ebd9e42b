package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// from inside a frame-driven loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart drops accumulated time so the next ShouldStep call fires
// immediately and pacing resumes from now.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Never bank more than one pending tick after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
