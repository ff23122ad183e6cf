package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"arena/internal/config"
	"arena/internal/fx"
	"arena/internal/game"
	"arena/internal/inventory"
	"arena/internal/run"
	"arena/internal/save"
	"arena/internal/tui"
)

func main() {
	plainMode := flag.Bool("plain", false, "line mode: read commands from stdin")
	logPath := flag.String("log", "", "append battle events to this file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	if err := play(cfg, *plainMode, *logPath); err != nil {
		config.Exitf("arena: %v", err)
	}
}

func play(cfg config.Config, plainMode bool, logPath string) error {
	bestiary, err := game.LoadBestiary(cfg.Bestiary)
	if err != nil {
		return err
	}
	catalog, err := inventory.LoadCatalog(cfg.Items)
	if err != nil {
		return err
	}

	var store save.Store = save.NewMemoryStore()
	if cfg.DBPath != "" {
		db, err := save.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open save db: %w", err)
		}
		defer db.Close()
		store = db
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal := fx.NewJournal(0)
	cues := &fx.CueBus{}
	bus := fx.Multi{journal, cues}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer f.Close()
		bus = append(bus, fx.NewLogBus(f))
	}

	var printer *tui.Printer
	if plainMode {
		printer = tui.NewPrinter(os.Stdout)
		bus = append(bus, printer)
	}

	r, err := run.Load(ctx, run.Deps{
		Store:         store,
		Profile:       cfg.Profile,
		Bestiary:      bestiary,
		Catalog:       catalog,
		Bus:           bus,
		Battle:        cfg.Battle(),
		MaxEnemyLevel: cfg.MaxEnemyLevel,
		StageLength:   cfg.StageLength,
	})
	if err != nil {
		return err
	}

	if plainMode {
		return tui.Plain(ctx, os.Stdin, printer, r, cfg.Tick)
	}
	return screen(ctx, r, journal, cues, cfg.Tick)
}

func screen(ctx context.Context, r *run.Run, journal *fx.Journal, cues *fx.CueBus, tick time.Duration) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	// The screen owns the terminal; keep stray log output off it.
	log.SetOutput(io.Discard)
	return tui.New(s, r, journal, cues).Loop(ctx, tick)
}
