package game

import "fmt"

// Default player stats for a fresh run.
const (
	DefaultPlayerName = "Hero"
	DefaultLevel      = 1
	DefaultMaxHP      = 100
	DefaultAttack     = 10
	DefaultDefense    = 5
	DefaultLuck       = 5
	DefaultMaxXP      = 100
)

// NewPlayer returns the player record used when nothing has been saved yet.
func NewPlayer() *Combatant {
	return &Combatant{
		Role:      RolePlayer,
		Name:      DefaultPlayerName,
		Level:     DefaultLevel,
		CurrentHP: DefaultMaxHP,
		MaxHP:     DefaultMaxHP,
		Attack:    DefaultAttack,
		Defense:   DefaultDefense,
		Luck:      DefaultLuck,
		MaxXP:     DefaultMaxXP,
	}
}

// NewEnemy scales a goblin to the given level (minimum 1).
func NewEnemy(level int) *Combatant {
	if level < 1 {
		level = 1
	}
	maxHP := 30 + level*15
	return &Combatant{
		Role:       RoleEnemy,
		Name:       fmt.Sprintf("Goblin Lvl %d", level),
		Level:      level,
		CurrentHP:  maxHP,
		MaxHP:      maxHP,
		Attack:     5 + level*2,
		Defense:    1 + level,
		XPReward:   20 + level*15,
		GoldReward: 5 + level*5,
	}
}
