package game

// Keys of the flat key/value mapping handed to persistence.
const (
	KeyGold      = "gold"
	KeyLevel     = "level"
	KeyAttack    = "attack"
	KeyDefense   = "defense"
	KeyMaxHP     = "maxHP"
	KeyCurrentHP = "currentHP"
	KeyCurrentXP = "currentXP"
	KeyMaxXP     = "maxXP"
)

// Snapshot flattens the persisted player fields into a key/value map.
func Snapshot(c *Combatant) map[string]int {
	return map[string]int{
		KeyGold:      c.Gold,
		KeyLevel:     c.Level,
		KeyAttack:    c.Attack,
		KeyDefense:   c.Defense,
		KeyMaxHP:     c.MaxHP,
		KeyCurrentHP: c.CurrentHP,
		KeyCurrentXP: c.CurrentXP,
		KeyMaxXP:     c.MaxXP,
	}
}

// Restore rebuilds a player from a saved mapping. Missing keys keep the
// defaults of NewPlayer; a saved HP of zero or less loads as full health.
func Restore(kv map[string]int) *Combatant {
	c := NewPlayer()
	if len(kv) == 0 {
		return c
	}
	load := func(key string, dst *int) {
		if v, ok := kv[key]; ok {
			*dst = v
		}
	}
	load(KeyGold, &c.Gold)
	load(KeyLevel, &c.Level)
	load(KeyAttack, &c.Attack)
	load(KeyDefense, &c.Defense)
	load(KeyMaxHP, &c.MaxHP)
	load(KeyCurrentXP, &c.CurrentXP)
	load(KeyMaxXP, &c.MaxXP)

	if c.MaxHP < 1 {
		c.MaxHP = DefaultMaxHP
	}
	if c.MaxXP < 1 {
		c.MaxXP = DefaultMaxXP
	}
	c.CurrentHP = c.MaxHP
	if hp, ok := kv[KeyCurrentHP]; ok && hp > 0 {
		c.CurrentHP = min(hp, c.MaxHP)
	}
	return c
}
