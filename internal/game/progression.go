package game

// Per-level growth applied by LevelUp.
const (
	LevelHPGrowth      = 20
	LevelAttackGrowth  = 3
	LevelDefenseGrowth = 1

	// XP threshold growth is 6/5 (x1.2) with integer truncation.
	xpGrowthNum = 6
	xpGrowthDen = 5
)

// LevelUp applies exactly one level step: the XP threshold is paid out of
// CurrentXP (the remainder carries over), the threshold grows by 20%, and
// the combatant gains max HP, attack and defense and is fully healed.
func LevelUp(c *Combatant) {
	c.CurrentXP -= c.MaxXP
	c.Level++
	c.MaxXP = c.MaxXP * xpGrowthNum / xpGrowthDen

	c.MaxHP += LevelHPGrowth
	c.CurrentHP = c.MaxHP
	c.Attack += LevelAttackGrowth
	c.Defense += LevelDefenseGrowth
}
