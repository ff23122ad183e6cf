package game

// MinDamage is the floor applied to every hit that lands.
const MinDamage = 1

// TakeDamage mitigates amount by the combatant's defense, subtracts the
// result (at least MinDamage) from CurrentHP and returns the damage applied.
// HP never drops below zero.
func (c *Combatant) TakeDamage(amount int) int {
	return c.hit(amount - c.Defense)
}

// ApplyDamage subtracts amount (at least MinDamage) without defense
// mitigation and returns the damage applied.
func (c *Combatant) ApplyDamage(amount int) int {
	return c.hit(amount)
}

func (c *Combatant) hit(dmg int) int {
	if dmg < MinDamage {
		dmg = MinDamage
	}
	c.CurrentHP -= dmg
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	return dmg
}

// Heal restores up to amount HP without exceeding MaxHP.
func (c *Combatant) Heal(amount int) {
	if amount <= 0 {
		return
	}
	c.CurrentHP += amount
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}
}

// Dead reports whether the combatant has no HP left.
func (c *Combatant) Dead() bool {
	return c.CurrentHP <= 0
}

// GainXP adds experience and levels up for every threshold crossed, so
// CurrentXP always ends below MaxXP. It returns the number of levels gained.
func (c *Combatant) GainXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.CurrentXP += amount
	levels := 0
	for c.MaxXP > 0 && c.CurrentXP >= c.MaxXP {
		LevelUp(c)
		levels++
	}
	return levels
}
