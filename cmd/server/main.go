package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"arena/internal/battle"
	"arena/internal/config"
	"arena/internal/fx"
	"arena/internal/game"
	"arena/internal/inventory"
	"arena/internal/run"
	"arena/internal/save"
	"arena/internal/session"
	"arena/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	bestiary, err := game.LoadBestiary(cfg.Bestiary)
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := inventory.LoadCatalog(cfg.Items)
	if err != nil {
		log.Fatal(err)
	}

	var store save.Store = save.NewMemoryStore()
	if cfg.DBPath != "" {
		db, err := save.Open(cfg.DBPath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		store = db
	}

	tmpl, err := web.ParseTemplates(cfg.Templates)
	if err != nil {
		log.Fatal(err)
	}

	srv := &web.Server{
		Seats:   session.NewMemoryStore[*web.Seat](),
		Tmpl:    tmpl,
		Catalog: catalog,
		Synth:   fx.NewSynth(fx.DefaultSampleRate),
		NewRun: func(ctx context.Context, profile string, bus battle.Bus) (*run.Run, error) {
			return run.Load(ctx, run.Deps{
				Store:         store,
				Profile:       profile,
				Bestiary:      bestiary,
				Catalog:       catalog,
				Bus:           bus,
				Battle:        cfg.Battle(),
				MaxEnemyLevel: cfg.MaxEnemyLevel,
				StageLength:   cfg.StageLength,
			})
		},
		Tick:          cfg.Tick,
		BattleTimeout: cfg.BattleTimeout,
		StaticDir:     cfg.StaticDir,
	}
	if cfg.LogEvents {
		srv.Log = os.Stderr
	}

	log.Printf("listening on http://localhost%s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Routes()))
}
