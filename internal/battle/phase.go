package battle

// Phase is the state of a Session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlayerAiming
	PhaseResolvingPlayerAttack
	PhaseUsingPotion
	PhaseFleeing
	PhaseEnemyTurn
	PhaseVictory
	PhaseDefeat
	PhaseFled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlayerAiming:
		return "player_aiming"
	case PhaseResolvingPlayerAttack:
		return "resolving_player_attack"
	case PhaseUsingPotion:
		return "using_potion"
	case PhaseFleeing:
		return "fleeing"
	case PhaseEnemyTurn:
		return "enemy_turn"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further turns can follow.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseFled
}

// Step names the transition a deferred action performs when it fires.
type Step int

const (
	StepNone Step = iota
	StepEnemyTurn
	StepPlayerTurn
	StepVictory
	StepDefeat
	StepFled
	StepTeardown
)

func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepEnemyTurn:
		return "enemy_turn"
	case StepPlayerTurn:
		return "player_turn"
	case StepVictory:
		return "victory"
	case StepDefeat:
		return "defeat"
	case StepFled:
		return "fled"
	case StepTeardown:
		return "teardown"
	default:
		return "unknown"
	}
}
