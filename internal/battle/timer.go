package battle

import "time"

// TimerID identifies one scheduled action.
type TimerID uint64

// Timer holds at most one single-shot deferred action. It has no clock of
// its own: time moves only through Advance.
type Timer struct {
	seq     TimerID
	pending *timerEntry
}

type timerEntry struct {
	id        TimerID
	step      Step
	remaining time.Duration
	fn        func()
}

// Schedule arms fn to run after the given delay. It fails with
// ErrTimerPending when an action is already outstanding.
func (t *Timer) Schedule(step Step, after time.Duration, fn func()) (TimerID, error) {
	if t.pending != nil {
		return 0, ErrTimerPending
	}
	t.seq++
	t.pending = &timerEntry{id: t.seq, step: step, remaining: max(after, 0), fn: fn}
	return t.seq, nil
}

// Cancel drops the pending action if it has the given id.
func (t *Timer) Cancel(id TimerID) bool {
	if t.pending == nil || t.pending.id != id {
		return false
	}
	t.pending = nil
	return true
}

// Stop drops whatever action is pending.
func (t *Timer) Stop() bool {
	had := t.pending != nil
	t.pending = nil
	return had
}

// Pending reports the outstanding action.
func (t *Timer) Pending() (TimerID, Step, time.Duration, bool) {
	if t.pending == nil {
		return 0, StepNone, 0, false
	}
	return t.pending.id, t.pending.step, t.pending.remaining, true
}

// Advance moves time forward by dt and fires the pending action when its
// delay runs out. Time left over after a firing is handed to whatever the
// callback scheduled next.
func (t *Timer) Advance(dt time.Duration) {
	for t.pending != nil {
		if dt < t.pending.remaining {
			t.pending.remaining -= dt
			return
		}
		dt -= t.pending.remaining
		fired := t.pending
		t.pending = nil
		fired.fn()
	}
}
