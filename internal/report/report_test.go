package report

import (
	"bytes"
	"fmt"
	"testing"
)

func TestGenerate(t *testing.T) {
	pdf, err := Generate(Sheet{
		Name: "Hero", Level: 3, HP: 80, MaxHP: 140, XP: 20, MaxXP: 144,
		Attack: 16, Defense: 7, Gold: 42, Potions: 2, Weapon: "Iron Sword",
		Encounters: 5, Stage: 2, Highscore: 3, Outcome: "victory",
		Journal: []string{"Goblin Lvl 2 blocks the way!", "CRITICAL! 24 damage!"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("Expected PDF header, got %q", pdf[:min(8, len(pdf))])
	}
	if !bytes.Contains(pdf, []byte("%%EOF")) {
		t.Error("Expected PDF trailer")
	}
}

func TestGenerate_EmptySheet(t *testing.T) {
	pdf, err := Generate(Sheet{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pdf) == 0 {
		t.Error("Expected output for an empty sheet")
	}
}

func TestGenerate_LongJournal(t *testing.T) {
	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines, fmt.Sprintf("You hit for %d damage!", i))
	}
	if _, err := Generate(Sheet{Level: 1, MaxHP: 100, Journal: lines}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestWavyRectPointsClosed(t *testing.T) {
	pts := wavyRectPoints(0, 0, 100, 50, 12, 0)
	if len(pts) != 12*4+1 {
		t.Fatalf("Expected %d points, got %d", 12*4+1, len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if first.X != last.X || first.Y != last.Y {
		t.Errorf("Expected closed outline, got %v and %v", first, last)
	}
}
