package battle

import "math"

// CriticalThreshold is the lowest hit quality that counts as critical.
const CriticalThreshold = 80.0

// Critical hits deal 3/2 of the raw damage, truncated.
const (
	critNum = 3
	critDen = 2
)

// AttackResult describes one committed player attack.
type AttackResult struct {
	HitQuality float64
	Critical   bool
	Damage     int
	EnemyHP    int
	Killed     bool
}

// ResolveAttack computes the damage of a player attack from the attack
// stat and the sampled hit quality. Defense plays no part: timing quality
// replaces mitigation for the player's swing.
func ResolveAttack(attack int, hitQuality float64) AttackResult {
	hitQuality = math.Max(0, math.Min(MeterMax, hitQuality))
	raw := int(math.Floor(float64(attack) * hitQuality / MeterMax))
	if raw < 1 {
		raw = 1
	}
	res := AttackResult{HitQuality: hitQuality, Damage: raw}
	if hitQuality >= CriticalThreshold {
		res.Critical = true
		res.Damage = raw * critNum / critDen
	}
	return res
}
