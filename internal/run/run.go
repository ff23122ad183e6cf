// Package run ties the battle core to a persistent player: it loads and
// saves progress, picks enemies for the current stage, runs the shop and
// settles each finished encounter.
package run

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"arena/internal/battle"
	"arena/internal/game"
	"arena/internal/inventory"
	"arena/internal/save"
)

// Keys persisted next to the player snapshot.
const (
	KeyPotions    = "potions"
	KeyEncounters = "encounters"
	KeyHighscore  = "highscore"
	// KeyWeapon and KeyArmor hold the catalog position of the equipped
	// item plus one, zero meaning nothing equipped.
	KeyWeapon = "weapon"
	KeyArmor  = "armor"
)

var (
	ErrBattleActive = errors.New("a battle is in progress")
	ErrUnknownItem  = errors.New("unknown item")
)

// Deps configures a Run.
type Deps struct {
	Store    save.Store
	Profile  string
	Bestiary *game.Bestiary
	Catalog  *inventory.Catalog
	Bus      battle.Bus
	Battle   battle.Config

	MaxEnemyLevel int
	StageLength   int

	// Pick returns a number in [0, n). It defaults to rand.IntN.
	Pick func(n int) int
}

// Status is a snapshot of the run for display.
type Status struct {
	Player     game.Combatant
	Potions    int
	Weapon     string
	Armor      string
	Encounters int
	Highscore  int
	Stage      int
	InBattle   bool
}

// Run is one player's ongoing game. It is safe for concurrent use.
type Run struct {
	mu   sync.Mutex
	deps Deps

	player     *game.Combatant
	inv        *inventory.Inventory
	session    *battle.Session
	encounters int
	highscore  int
	outcome    battle.Phase
}

// Load restores the profile's progress, starting fresh when nothing was
// saved.
func Load(ctx context.Context, deps Deps) (*Run, error) {
	if deps.Store == nil {
		deps.Store = save.NewMemoryStore()
	}
	if deps.Profile == "" {
		deps.Profile = "default"
	}
	if deps.MaxEnemyLevel < 1 {
		deps.MaxEnemyLevel = 20
	}
	if deps.StageLength < 1 {
		deps.StageLength = 3
	}
	if deps.Pick == nil {
		deps.Pick = rand.IntN
	}
	if deps.Battle == (battle.Config{}) {
		deps.Battle = battle.DefaultConfig()
	}

	kv, _, err := deps.Store.Load(ctx, deps.Profile)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", deps.Profile, err)
	}

	r := &Run{
		deps:       deps,
		player:     game.Restore(kv),
		inv:        inventory.New(),
		encounters: max(0, kv[KeyEncounters]),
		highscore:  max(1, kv[KeyHighscore]),
		outcome:    battle.PhaseIdle,
	}
	if n := kv[KeyPotions]; n > 0 {
		if potion, ok := deps.Catalog.DefaultPotion(); ok {
			r.inv.SetPotions(potion, n)
		}
	}
	for _, key := range []string{KeyWeapon, KeyArmor} {
		if i := kv[key] - 1; deps.Catalog != nil && i >= 0 && i < len(deps.Catalog.Items) {
			_ = r.inv.SetEquipped(deps.Catalog.Items[i])
		}
	}
	return r, nil
}

// Inventory returns the player's inventory.
func (r *Run) Inventory() *inventory.Inventory {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inv
}

// Session returns the current or last session, or nil before the first
// encounter.
func (r *Run) Session() *battle.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// Outcome returns how the last settled encounter ended.
func (r *Run) Outcome() battle.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}

// Status describes the run.
func (r *Run) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := Status{
		Potions:    r.inv.PotionCount(),
		Encounters: r.encounters,
		Highscore:  r.highscore,
		Stage:      r.stageLevel(),
	}
	st.Weapon, st.Armor = r.inv.Equipped()
	if r.active() {
		st.Player = r.session.View().Player
		st.InBattle = true
	} else {
		st.Player = *r.player
	}
	return st
}

// Spawn builds an enemy for the current stage.
func (r *Run) Spawn() *game.Combatant {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.spawn()
}

func (r *Run) spawn() *game.Combatant {
	level := r.stageLevel()
	kinds := r.deps.Bestiary.KindsFor(level)
	kind := ""
	if len(kinds) > 0 {
		kind = kinds[r.deps.Pick(len(kinds))]
	}
	return r.deps.Bestiary.Spawn(kind, level)
}

func (r *Run) stageLevel() int {
	return min(r.deps.MaxEnemyLevel, 1+r.encounters/r.deps.StageLength)
}

// Fight starts an encounter against a freshly spawned enemy.
func (r *Run) Fight(ctx context.Context) (*battle.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.begin(ctx, r.spawn())
}

// Begin starts an encounter against enemy. A previous session that has
// already torn down is settled first.
func (r *Run) Begin(ctx context.Context, enemy *game.Combatant) (*battle.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.begin(ctx, enemy)
}

func (r *Run) begin(ctx context.Context, enemy *game.Combatant) (*battle.Session, error) {
	if r.active() {
		return nil, ErrBattleActive
	}
	if r.session != nil {
		if _, err := r.settle(ctx); err != nil {
			return nil, err
		}
	}

	s, err := battle.NewSession(r.player, r.inv, r.deps.Bus, r.deps.Battle)
	if err != nil {
		return nil, err
	}
	if err := s.Start(enemy); err != nil {
		return nil, err
	}
	r.session = s
	return s, nil
}

// Finish settles the current encounter, ending it first if it is still
// running. Victory and escape save progress; defeat resets the run.
func (r *Run) Finish(ctx context.Context) (battle.Phase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return r.outcome, nil
	}
	return r.settle(ctx)
}

// Settled reports whether the current session has been torn down and is
// waiting for Finish.
func (r *Run) Settled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session != nil && !r.active()
}

func (r *Run) settle(ctx context.Context) (battle.Phase, error) {
	s := r.session
	phase := s.Conclude()
	r.session = nil

	if r.player.Dead() {
		phase = battle.PhaseDefeat
	}
	r.outcome = phase
	switch phase {
	case battle.PhaseDefeat:
		return phase, r.reset(ctx)
	case battle.PhaseVictory:
		r.encounters++
		r.highscore = max(r.highscore, r.player.Level)
	}
	return phase, r.persist(ctx)
}

// Reset starts over with a fresh character. The highscore is kept.
func (r *Run) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session != nil {
		r.session.End()
		r.session = nil
	}
	return r.reset(ctx)
}

func (r *Run) reset(ctx context.Context) error {
	r.player = game.NewPlayer()
	r.inv = inventory.New()
	r.encounters = 0
	return r.persist(ctx)
}

// Buy purchases the named catalog item, matched case-insensitively. An
// empty name buys the default potion.
func (r *Run) Buy(ctx context.Context, name string) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active() {
		return inventory.Item{}, ErrBattleActive
	}
	item, ok := r.findItem(name)
	if !ok {
		return inventory.Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	if err := r.inv.Buy(r.player, item); err != nil {
		return item, err
	}
	return item, r.persist(ctx)
}

func (r *Run) findItem(name string) (inventory.Item, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r.deps.Catalog.DefaultPotion()
	}
	if r.deps.Catalog == nil {
		return inventory.Item{}, false
	}
	for _, it := range r.deps.Catalog.Items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return inventory.Item{}, false
}

// active reports whether a session is running. Callers hold r.mu.
func (r *Run) active() bool {
	if r.session == nil {
		return false
	}
	select {
	case <-r.session.Done():
		return false
	default:
		return true
	}
}

func (r *Run) persist(ctx context.Context) error {
	kv := game.Snapshot(r.player)
	kv[KeyPotions] = r.inv.PotionCount()
	kv[KeyEncounters] = r.encounters
	kv[KeyHighscore] = r.highscore
	weapon, armor := r.inv.Equipped()
	kv[KeyWeapon] = r.catalogSlot(weapon)
	kv[KeyArmor] = r.catalogSlot(armor)

	if err := r.deps.Store.Save(ctx, r.deps.Profile, kv); err != nil {
		return fmt.Errorf("save profile %s: %w", r.deps.Profile, err)
	}
	return nil
}

func (r *Run) catalogSlot(name string) int {
	if name == "" || r.deps.Catalog == nil {
		return 0
	}
	for i, it := range r.deps.Catalog.Items {
		if it.Name == name {
			return i + 1
		}
	}
	return 0
}
