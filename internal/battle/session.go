// Package battle runs a single timed, turn-based encounter between the
// player and one enemy.
//
// A Session is a state machine. The player aims with an oscillating meter
// and commits an attack, drinks a potion or flees; every action resolves
// after a fixed delay, during which further input is refused. Time only
// moves through Advance, so the session is fully deterministic under test
// and a Driver feeds it real time in the running game.
package battle

import (
	"sync"
	"time"

	"arena/internal/game"
)

// Inventory is the consumable store a session draws potions from.
type Inventory interface {
	// PeekFirstPotion reports the heal amount of the next potion.
	PeekFirstPotion() (int, bool)
	// ConsumePotion removes the next potion.
	ConsumePotion() error
}

// Rewards are granted to the player on victory.
type Rewards struct {
	XP       int
	Gold     int
	LevelsUp int
}

// View is a consistent copy of the session state.
type View struct {
	Phase       Phase
	TimingValue float64
	Player      game.Combatant
	Enemy       *game.Combatant
	Pending     Step
	Remaining   time.Duration
	Closed      bool
	LastAttack  *AttackResult
	Rewards     Rewards
}

// Session is one encounter. It is safe for concurrent use: inputs, Advance
// and View serialize on an internal lock.
type Session struct {
	mu sync.Mutex

	cfg    Config
	player *game.Combatant
	enemy  *game.Combatant
	inv    Inventory
	bus    Bus

	phase      Phase
	meter      Meter
	timer      Timer
	lastAttack *AttackResult
	rewards    Rewards

	closed bool
	done   chan struct{}
}

// NewSession prepares an idle session for player. The player record is
// mutated in place by the encounter. inv and bus may be nil.
func NewSession(player *game.Combatant, inv Inventory, bus Bus, cfg Config) (*Session, error) {
	if player == nil {
		return nil, ErrNullCombatant
	}
	if bus == nil {
		bus = NopBus{}
	}
	return &Session{
		cfg:    cfg,
		player: player,
		inv:    inv,
		bus:    bus,
		phase:  PhaseIdle,
		meter:  NewMeter(cfg.MeterRate),
		done:   make(chan struct{}),
	}, nil
}

// Start begins the encounter against enemy.
func (s *Session) Start(enemy *game.Combatant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.phase != PhaseIdle {
		return invalidTransition("start", "encounter already "+s.phase.String())
	}
	if enemy == nil || enemy.Dead() {
		return ErrNullCombatant
	}
	s.enemy = enemy
	s.phase = PhasePlayerAiming
	s.meter.Reset()
	s.emit(EventEncounterStarted, enemy, 0)
	return nil
}

// CommitAttack samples the meter and strikes the enemy.
func (s *Session) CommitAttack() (AttackResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.acceptInput("attack"); err != nil {
		return AttackResult{}, err
	}

	res := ResolveAttack(s.player.Attack, s.meter.Value())
	res.Damage = s.enemy.ApplyDamage(res.Damage)
	res.EnemyHP = s.enemy.CurrentHP
	res.Killed = s.enemy.Dead()
	s.lastAttack = &res
	s.phase = PhaseResolvingPlayerAttack

	kind := EventNormalHit
	if res.Critical {
		kind = EventCriticalHit
	}
	s.emit(kind, s.enemy, res.Damage)

	if res.Killed {
		_, err := s.timer.Schedule(StepVictory, s.cfg.ResolveDelay, s.enterVictory)
		return res, err
	}
	_, err := s.timer.Schedule(StepEnemyTurn, s.cfg.ResolveDelay, s.enterEnemyTurn)
	return res, err
}

// UsePotion drinks the next potion and forfeits the turn. It returns the
// amount healed.
func (s *Session) UsePotion() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.acceptInput("potion"); err != nil {
		return 0, err
	}
	if s.inv == nil {
		return 0, ErrNoPotions
	}
	heal, ok := s.inv.PeekFirstPotion()
	if !ok {
		return 0, ErrNoPotions
	}
	if err := s.inv.ConsumePotion(); err != nil {
		return 0, ErrNoPotions
	}
	s.player.Heal(heal)
	s.phase = PhaseUsingPotion
	s.emit(EventPotionUsed, s.player, heal)

	_, err := s.timer.Schedule(StepEnemyTurn, s.cfg.PotionDelay, s.enterEnemyTurn)
	return heal, err
}

// Flee leaves the encounter without rewards after a short delay.
func (s *Session) Flee() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.acceptInput("flee"); err != nil {
		return err
	}
	s.phase = PhaseFleeing
	s.emit(EventFlee, s.enemy, 0)

	_, err := s.timer.Schedule(StepFled, s.cfg.FleeDelay, s.enterFled)
	return err
}

// Advance moves session time forward: the meter while aiming, and the
// pending deferred action in every phase.
func (s *Session) Advance(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || dt <= 0 {
		return
	}
	if s.phase == PhasePlayerAiming {
		s.meter.Advance(dt)
	}
	s.timer.Advance(dt)
}

// End tears the session down, cancelling any pending action. It is safe to
// call more than once.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardown()
}

// Conclude ends the session like End, but an outcome that is already
// decided is applied first: a pending defeat or victory fires at once. It
// returns the final phase.
func (s *Session) Conclude() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, step, remaining, ok := s.timer.Pending(); ok && (step == StepDefeat || step == StepVictory) {
		s.timer.Advance(remaining)
	}
	s.teardown()
	return s.phase
}

// Done is closed when the session has been torn down.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// TimingValue returns the current meter position.
func (s *Session) TimingValue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meter.Value()
}

// View returns a copy of the session state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Phase:       s.phase,
		TimingValue: s.meter.Value(),
		Player:      *s.player,
		Enemy:       s.enemy.Clone(),
		Closed:      s.closed,
		Rewards:     s.rewards,
	}
	if _, step, remaining, ok := s.timer.Pending(); ok {
		v.Pending = step
		v.Remaining = remaining
	}
	if s.lastAttack != nil {
		a := *s.lastAttack
		v.LastAttack = &a
	}
	return v
}

func (s *Session) acceptInput(op string) error {
	if s.closed {
		return invalidTransition(op, "session closed")
	}
	if _, step, _, ok := s.timer.Pending(); ok {
		return invalidTransition(op, "waiting for "+step.String())
	}
	if s.phase != PhasePlayerAiming {
		return invalidTransition(op, "phase "+s.phase.String())
	}
	return nil
}

// The enter* functions run from timer callbacks with s.mu held.

func (s *Session) enterEnemyTurn() {
	s.phase = PhaseEnemyTurn
	dmg := s.player.TakeDamage(s.enemy.Attack)
	s.emit(EventPlayerDamaged, s.player, dmg)

	if s.player.Dead() {
		_, _ = s.timer.Schedule(StepDefeat, s.cfg.DefeatDelay, s.enterDefeat)
		return
	}
	_, _ = s.timer.Schedule(StepPlayerTurn, s.cfg.TurnDelay, s.enterPlayerTurn)
}

func (s *Session) enterPlayerTurn() {
	s.phase = PhasePlayerAiming
	s.meter.Reset()
	s.emit(EventTurnStarted, s.player, 0)
}

func (s *Session) enterVictory() {
	s.phase = PhaseVictory
	r := Rewards{XP: s.enemy.XPReward, Gold: s.enemy.GoldReward}

	before := s.player.Level
	r.LevelsUp = s.player.GainXP(r.XP)
	for lvl := before + 1; lvl <= s.player.Level; lvl++ {
		s.bus.Emit(Event{Kind: EventLevelUp, Level: lvl, HP: s.player.CurrentHP, MaxHP: s.player.MaxHP})
	}
	s.player.Gold += r.Gold
	s.rewards = r

	s.bus.Emit(Event{
		Kind:   EventVictory,
		Enemy:  s.enemy.Name,
		Amount: r.XP,
		Gold:   r.Gold,
		Level:  s.player.Level,
		HP:     s.player.CurrentHP,
		MaxHP:  s.player.MaxHP,
	})
	_, _ = s.timer.Schedule(StepTeardown, s.cfg.VictoryDelay, s.teardown)
}

func (s *Session) enterDefeat() {
	s.phase = PhaseDefeat
	s.emit(EventDefeat, s.player, 0)
	s.teardown()
}

func (s *Session) enterFled() {
	s.phase = PhaseFled
	s.teardown()
}

// teardown drops the enemy, which is never retained past an encounter.
func (s *Session) teardown() {
	s.timer.Stop()
	if s.closed {
		return
	}
	s.closed = true
	s.enemy = nil
	close(s.done)
}

func (s *Session) emit(kind EventKind, subject *game.Combatant, amount int) {
	e := Event{Kind: kind, Amount: amount}
	if s.enemy != nil {
		e.Enemy = s.enemy.Name
	}
	if subject != nil {
		e.HP = subject.CurrentHP
		e.MaxHP = subject.MaxHP
	}
	s.bus.Emit(e)
}
