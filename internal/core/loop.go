package core

import (
	"context"
	"sync/atomic"
	"time"
)

// Loop runs a task repeatedly with a fixed delay between iterations. The
// delay can be changed while the loop runs; the new value applies from the
// next wait. Stopping only prevents future iterations.
type Loop struct {
	interval atomic.Int64
	stopped  atomic.Bool
}

// NewLoop returns a Loop ticking tps times per second. A non-positive tps
// disables the delay so iterations run back to back.
func NewLoop(tps int) *Loop {
	l := &Loop{}
	l.SetTPS(tps)
	return l
}

// SetTPS changes the tick rate.
func (l *Loop) SetTPS(tps int) {
	if tps <= 0 {
		l.interval.Store(0)
		return
	}
	l.interval.Store(int64(time.Second / time.Duration(tps)))
}

// Interval returns the current delay between iterations.
func (l *Loop) Interval() time.Duration { return time.Duration(l.interval.Load()) }

// Stop asks the loop to exit at its next iteration boundary.
func (l *Loop) Stop() { l.stopped.Store(true) }

// Run invokes task until ctx is done, Stop is called, or task returns
// false. Each task call runs to completion before the stop flag and the
// context are checked again.
func (l *Loop) Run(ctx context.Context, task func() bool) error {
	l.stopped.Store(false)
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		if l.stopped.Load() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if l.stopped.Load() {
			return nil
		}
		if !task() {
			return nil
		}
		timer.Reset(l.Interval())
	}
}
