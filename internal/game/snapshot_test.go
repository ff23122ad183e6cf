package game

import "testing"

func TestSnapshot_Keys(t *testing.T) {
	p := NewPlayer()
	p.Gold = 42
	p.CurrentHP = 77

	kv := Snapshot(p)

	want := map[string]int{
		"gold": 42, "level": 1, "attack": 10, "defense": 5,
		"maxHP": 100, "currentHP": 77, "currentXP": 0, "maxXP": 100,
	}
	if len(kv) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(kv))
	}
	for k, v := range want {
		if kv[k] != v {
			t.Errorf("Expected %s=%d, got %d", k, v, kv[k])
		}
	}
}

func TestRestore_RoundTripsProgress(t *testing.T) {
	p := NewPlayer()
	p.GainXP(130)
	p.Gold = 9
	p.TakeDamage(30)

	got := Restore(Snapshot(p))

	if got.Level != p.Level || got.MaxXP != p.MaxXP || got.CurrentXP != p.CurrentXP {
		t.Errorf("Expected progress %d %d/%d, got %d %d/%d", p.Level, p.CurrentXP, p.MaxXP, got.Level, got.CurrentXP, got.MaxXP)
	}
	if got.CurrentHP != p.CurrentHP || got.Gold != 9 {
		t.Errorf("Expected HP %d and gold 9, got %d and %d", p.CurrentHP, got.CurrentHP, got.Gold)
	}
	if got.Role != RolePlayer {
		t.Errorf("Expected player role, got %s", got.Role)
	}
}

func TestRestore_ZeroHPLoadsFull(t *testing.T) {
	got := Restore(map[string]int{"maxHP": 140, "currentHP": 0})

	if got.CurrentHP != 140 {
		t.Errorf("Expected full 140 HP, got %d", got.CurrentHP)
	}
}

func TestRestore_EmptyUsesDefaults(t *testing.T) {
	got := Restore(nil)
	def := NewPlayer()
	if *got != *def {
		t.Errorf("Expected defaults, got %+v", *got)
	}
}
