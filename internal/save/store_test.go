package save

import (
	"context"
	"path/filepath"
	"testing"
)

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "arena.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": db,
	}
}

func TestStore_MissingProfile(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			kv, ok, err := s.Load(context.Background(), "nobody")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if ok || kv != nil {
				t.Errorf("Expected missing profile, got %v", kv)
			}
		})
	}
}

func TestStore_SaveMergesValues(t *testing.T) {
	ctx := context.Background()
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Save(ctx, "hero", map[string]int{"gold": 10, "level": 2}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save(ctx, "hero", map[string]int{"gold": 25, "potions": 3}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save(ctx, "other", map[string]int{"gold": 1}); err != nil {
				t.Fatalf("Save: %v", err)
			}

			kv, ok, err := s.Load(ctx, "hero")
			if err != nil || !ok {
				t.Fatalf("Load: ok=%v err=%v", ok, err)
			}
			want := map[string]int{"gold": 25, "level": 2, "potions": 3}
			if len(kv) != len(want) {
				t.Errorf("Expected %v, got %v", want, kv)
			}
			for k, v := range want {
				if kv[k] != v {
					t.Errorf("Expected %s=%d, got %d", k, v, kv[k])
				}
			}
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	in := map[string]int{"gold": 5}
	_ = s.Save(ctx, "p", in)
	in["gold"] = 99

	kv, _, _ := s.Load(ctx, "p")
	kv["gold"] = 42

	again, _, _ := s.Load(ctx, "p")
	if again["gold"] != 5 {
		t.Errorf("Expected stored gold 5, got %d", again["gold"])
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemoryStore().Save(ctx, "p", map[string]int{"gold": 1}); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "arena.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Save(ctx, "hero", map[string]int{"highscore": 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	kv, ok, err := db.Load(ctx, "hero")
	if err != nil || !ok || kv["highscore"] != 7 {
		t.Errorf("Expected highscore 7 after reopen, got %v ok=%v err=%v", kv, ok, err)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestUpSection(t *testing.T) {
	got := upSection("-- +migrate Up\nCREATE TABLE t (x INT);\n-- +migrate Down\nDROP TABLE t;")
	if got != "\nCREATE TABLE t (x INT);\n" {
		t.Errorf("Expected only the up statements, got %q", got)
	}
	if got := upSection("SELECT 1;"); got != "SELECT 1;" {
		t.Errorf("Expected plain file unchanged, got %q", got)
	}
}
