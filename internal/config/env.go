// Package config loads process settings from ARENA_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"arena/internal/battle"
)

// Config is the runtime configuration shared by the server and the
// terminal client.
type Config struct {
	Addr     string `env:"ARENA_ADDR" envDefault:":8080"`
	DBPath   string `env:"ARENA_DB_PATH" envDefault:"arena.db"`
	Profile  string `env:"ARENA_PROFILE" envDefault:"default"`
	Bestiary string `env:"ARENA_BESTIARY" envDefault:"data/bestiary.yaml"`
	Items    string `env:"ARENA_ITEMS" envDefault:"data/items.yaml"`

	Templates     string        `env:"ARENA_TEMPLATES" envDefault:"templates"`
	StaticDir     string        `env:"ARENA_STATIC_DIR" envDefault:"static"`
	BattleTimeout time.Duration `env:"ARENA_BATTLE_TIMEOUT" envDefault:"30m"`
	LogEvents     bool          `env:"ARENA_LOG_EVENTS" envDefault:"false"`

	MeterRate    float64       `env:"ARENA_METER_RATE" envDefault:"200"`
	ResolveDelay time.Duration `env:"ARENA_RESOLVE_DELAY" envDefault:"1500ms"`
	TurnDelay    time.Duration `env:"ARENA_TURN_DELAY" envDefault:"1s"`
	DefeatDelay  time.Duration `env:"ARENA_DEFEAT_DELAY" envDefault:"2s"`
	VictoryDelay time.Duration `env:"ARENA_VICTORY_DELAY" envDefault:"2s"`
	FleeDelay    time.Duration `env:"ARENA_FLEE_DELAY" envDefault:"1s"`
	PotionDelay  time.Duration `env:"ARENA_POTION_DELAY" envDefault:"1s"`
	Tick         time.Duration `env:"ARENA_TICK" envDefault:"16ms"`

	MaxEnemyLevel int `env:"ARENA_MAX_ENEMY_LEVEL" envDefault:"20"`
	StageLength   int `env:"ARENA_STAGE_LENGTH" envDefault:"3"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the battle loop cannot run with.
func (c Config) Validate() error {
	if c.MeterRate <= 0 {
		return fmt.Errorf("ARENA_METER_RATE must be positive, got %v", c.MeterRate)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("ARENA_TICK must be positive, got %s", c.Tick)
	}
	if c.MaxEnemyLevel < 1 {
		return fmt.Errorf("ARENA_MAX_ENEMY_LEVEL must be at least 1, got %d", c.MaxEnemyLevel)
	}
	if c.StageLength < 1 {
		return fmt.Errorf("ARENA_STAGE_LENGTH must be at least 1, got %d", c.StageLength)
	}
	for name, d := range map[string]time.Duration{
		"ARENA_RESOLVE_DELAY": c.ResolveDelay,
		"ARENA_TURN_DELAY":    c.TurnDelay,
		"ARENA_DEFEAT_DELAY":  c.DefeatDelay,
		"ARENA_VICTORY_DELAY": c.VictoryDelay,
		"ARENA_FLEE_DELAY":    c.FleeDelay,
		"ARENA_POTION_DELAY":  c.PotionDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	return nil
}

// Battle returns the session settings.
func (c Config) Battle() battle.Config {
	return battle.Config{
		MeterRate:    c.MeterRate,
		ResolveDelay: c.ResolveDelay,
		TurnDelay:    c.TurnDelay,
		DefeatDelay:  c.DefeatDelay,
		VictoryDelay: c.VictoryDelay,
		FleeDelay:    c.FleeDelay,
		PotionDelay:  c.PotionDelay,
	}
}
