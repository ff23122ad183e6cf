package battle

import (
	"errors"
	"testing"
	"time"
)

func TestTimer_FiresOnce(t *testing.T) {
	var tm Timer
	fired := 0
	if _, err := tm.Schedule(StepEnemyTurn, time.Second, func() { fired++ }); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	tm.Advance(999 * time.Millisecond)
	if fired != 0 {
		t.Errorf("Expected no firing before the delay, got %d", fired)
	}
	tm.Advance(time.Millisecond)
	tm.Advance(time.Hour)

	if fired != 1 {
		t.Errorf("Expected exactly one firing, got %d", fired)
	}
	if _, _, _, ok := tm.Pending(); ok {
		t.Error("Expected nothing pending")
	}
}

func TestTimer_RejectsSecondSchedule(t *testing.T) {
	var tm Timer
	if _, err := tm.Schedule(StepEnemyTurn, time.Second, func() {}); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	_, err := tm.Schedule(StepFled, time.Second, func() {})
	if !errors.Is(err, ErrTimerPending) {
		t.Errorf("Expected ErrTimerPending, got %v", err)
	}
	if _, step, _, _ := tm.Pending(); step != StepEnemyTurn {
		t.Errorf("Expected first action kept, got %s", step)
	}
}

func TestTimer_Cancel(t *testing.T) {
	var tm Timer
	fired := false
	id, _ := tm.Schedule(StepVictory, time.Second, func() { fired = true })

	if tm.Cancel(id + 1) {
		t.Error("Expected stale id to be ignored")
	}
	if !tm.Cancel(id) {
		t.Error("Expected cancel to succeed")
	}
	tm.Advance(2 * time.Second)
	if fired {
		t.Error("Expected cancelled action not to fire")
	}
	if tm.Stop() {
		t.Error("Expected Stop to report nothing pending")
	}
}

func TestTimer_CarriesLeftoverIntoChain(t *testing.T) {
	var tm Timer
	var order []Step
	_, _ = tm.Schedule(StepEnemyTurn, 1500*time.Millisecond, func() {
		order = append(order, StepEnemyTurn)
		_, _ = tm.Schedule(StepPlayerTurn, time.Second, func() {
			order = append(order, StepPlayerTurn)
		})
	})

	tm.Advance(2 * time.Second)
	if len(order) != 1 {
		t.Fatalf("Expected one firing, got %v", order)
	}
	if _, step, remaining, _ := tm.Pending(); step != StepPlayerTurn || remaining != 500*time.Millisecond {
		t.Errorf("Expected player turn in 500ms, got %s in %s", step, remaining)
	}
	tm.Advance(500 * time.Millisecond)
	if len(order) != 2 || order[1] != StepPlayerTurn {
		t.Errorf("Expected chained firing, got %v", order)
	}
}
