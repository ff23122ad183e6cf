package battle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Advancer is anything driven by elapsed game time.
type Advancer interface {
	Advance(dt time.Duration)
}

// Driver feeds real elapsed time into an Advancer on a fixed tick. Deltas
// are taken from the monotonic clock, and time spent paused is never
// delivered.
type Driver struct {
	target Advancer
	tick   time.Duration
	now    func() time.Time

	mu     sync.Mutex
	last   time.Time
	paused atomic.Bool
}

// NewDriver returns a driver ticking target every tick.
func NewDriver(target Advancer, tick time.Duration) *Driver {
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	return &Driver{target: target, tick: tick, now: time.Now}
}

// Pause stops time delivery.
func (d *Driver) Pause() {
	d.paused.Store(true)
}

// Resume restarts time delivery from the moment of resuming.
func (d *Driver) Resume() {
	if d.paused.CompareAndSwap(true, false) {
		d.mu.Lock()
		d.last = time.Time{}
		d.mu.Unlock()
	}
}

// Paused reports whether time delivery is stopped.
func (d *Driver) Paused() bool {
	return d.paused.Load()
}

// Step delivers the time elapsed since the previous step and returns it.
// The first step after creation or Resume only sets the baseline.
func (d *Driver) Step(now time.Time) time.Duration {
	d.mu.Lock()
	if d.paused.Load() {
		d.last = time.Time{}
		d.mu.Unlock()
		return 0
	}
	if d.last.IsZero() {
		d.last = now
		d.mu.Unlock()
		return 0
	}
	dt := now.Sub(d.last)
	d.last = now
	d.mu.Unlock()

	if dt > 0 {
		d.target.Advance(dt)
	}
	return dt
}

// Run ticks until ctx is cancelled or, when the target exposes Done, until
// the target is torn down.
func (d *Driver) Run(ctx context.Context) {
	var done <-chan struct{}
	if t, ok := d.target.(interface{ Done() <-chan struct{} }); ok {
		done = t.Done()
	}

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	d.Step(d.now())
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			d.Step(d.now())
		}
	}
}
