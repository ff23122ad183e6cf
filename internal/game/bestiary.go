package game

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Bestiary lists the enemy kinds the spawner can pick from. Each kind
// adds flat bonuses on top of the level scaling done by NewEnemy.
type Bestiary struct {
	Default string               `yaml:"default"`
	Kinds   map[string]EnemyKind `yaml:"kinds"`
}

// EnemyKind describes one enemy family.
type EnemyKind struct {
	Name     string `yaml:"name"`
	MinLevel int    `yaml:"minLevel"`
	HP       int    `yaml:"hp"`
	Attack   int    `yaml:"attack"`
	Defense  int    `yaml:"defense"`
	XP       int    `yaml:"xp"`
	Gold     int    `yaml:"gold"`
}

// LoadBestiary loads a bestiary from a YAML file.
func LoadBestiary(path string) (*Bestiary, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path comes from trusted config
	if err != nil {
		return nil, err
	}
	return ParseBestiary(b)
}

// ParseBestiary decodes bestiary YAML.
func ParseBestiary(b []byte) (*Bestiary, error) {
	var bs Bestiary
	if err := yaml.Unmarshal(b, &bs); err != nil {
		return nil, fmt.Errorf("parse bestiary: %w", err)
	}
	if bs.Default != "" {
		if _, ok := bs.Kinds[bs.Default]; !ok {
			return nil, fmt.Errorf("parse bestiary: default kind %q not defined", bs.Default)
		}
	}
	return &bs, nil
}

// KindsFor returns the sorted kind IDs available at level.
func (b *Bestiary) KindsFor(level int) []string {
	if b == nil {
		return nil
	}
	var ids []string
	for id, k := range b.Kinds {
		if k.MinLevel <= level {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Spawn builds an enemy of the given kind at level. Unknown kinds fall
// back to the default kind, and then to a plain goblin.
func (b *Bestiary) Spawn(kind string, level int) *Combatant {
	e := NewEnemy(level)
	if b == nil {
		return e
	}
	k, ok := b.Kinds[kind]
	if !ok {
		k, ok = b.Kinds[b.Default]
	}
	if !ok {
		return e
	}
	if k.Name != "" {
		e.Name = fmt.Sprintf("%s Lvl %d", k.Name, e.Level)
	}
	e.MaxHP = max(1, e.MaxHP+k.HP)
	e.CurrentHP = e.MaxHP
	e.Attack = max(0, e.Attack+k.Attack)
	e.Defense = max(0, e.Defense+k.Defense)
	e.XPReward = max(0, e.XPReward+k.XP)
	e.GoldReward = max(0, e.GoldReward+k.Gold)
	return e
}
