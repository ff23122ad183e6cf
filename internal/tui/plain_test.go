package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"arena/internal/battle"
	"arena/internal/fx"
	"arena/internal/run"
	"arena/internal/save"
)

func fastConfig() battle.Config {
	return battle.Config{
		MeterRate:    200,
		ResolveDelay: time.Millisecond,
		TurnDelay:    time.Millisecond,
		DefeatDelay:  time.Millisecond,
		VictoryDelay: time.Millisecond,
		FleeDelay:    time.Millisecond,
		PotionDelay:  time.Millisecond,
	}
}

func TestPlain_Session(t *testing.T) {
	var buf bytes.Buffer
	out := NewPrinter(&buf)
	store := save.NewMemoryStore()
	r, err := run.Load(context.Background(), run.Deps{
		Store:   store,
		Catalog: testCatalog,
		Bus:     fx.Multi{out},
		Battle:  fastConfig(),
		Pick:    func(int) int { return 0 },
	})
	if err != nil {
		t.Fatalf("run.Load: %v", err)
	}

	in := strings.NewReader("status\nfight\nattack\nflee\n\nbuy\nxyzzy\nquit\nstatus\n")
	if err := Plain(context.Background(), in, out, r, time.Millisecond); err != nil {
		t.Fatalf("Plain: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"Welcome to the arena.",
		"Level 1, HP 100/100",
		"Goblin Lvl 1 blocks the way!",
		"Goblin Lvl 1 attacks!",
		"Your turn.",
		"You flee!",
		"You escaped.",
		"Not enough gold!",
		"Unknown command.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
	if strings.Count(got, "Level 1, HP") != 1 {
		t.Error("Expected input after quit to be ignored")
	}
	if r.Session() != nil {
		t.Error("Expected no battle left running")
	}
	if _, ok, _ := store.Load(context.Background(), "default"); !ok {
		t.Error("Expected progress saved")
	}
}

func TestPlain_EOFFinishesBattle(t *testing.T) {
	var buf bytes.Buffer
	out := NewPrinter(&buf)
	r, err := run.Load(context.Background(), run.Deps{Bus: out, Battle: fastConfig()})
	if err != nil {
		t.Fatalf("run.Load: %v", err)
	}
	if err := Plain(context.Background(), strings.NewReader("fight\n"), out, r, time.Millisecond); err != nil {
		t.Fatalf("Plain: %v", err)
	}
	if r.Session() != nil {
		t.Error("Expected the open battle to be settled on EOF")
	}
}
