package game

// Role tags a Combatant as the long-lived player or a one-encounter enemy.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Combatant holds the stats, health and progression thresholds of one side
// of an encounter. Enemies are created right before an encounter and
// dropped afterwards; the player record lives across encounters.
type Combatant struct {
	Role  Role
	Name  string
	Level int

	CurrentHP int
	MaxHP     int

	Attack  int
	Defense int
	Luck    int

	CurrentXP int
	MaxXP     int

	// Rewards granted to the player when this combatant is defeated.
	XPReward   int
	GoldReward int

	// Gold is the player's purse.
	Gold int
}

// Clone returns a copy that can be read without holding the owner's lock.
func (c *Combatant) Clone() *Combatant {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// IsPlayer reports whether the combatant carries the player role.
func (c *Combatant) IsPlayer() bool {
	return c != nil && c.Role == RolePlayer
}
