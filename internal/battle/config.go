package battle

import "time"

// Config holds the meter speed and the resolution delays of a session.
type Config struct {
	// MeterRate is the meter speed in units per second.
	MeterRate float64

	ResolveDelay time.Duration // committed attack, before the enemy turn or victory
	TurnDelay    time.Duration // enemy turn, before the next aiming phase
	DefeatDelay  time.Duration // fatal counter-attack, before defeat
	VictoryDelay time.Duration // victory, before teardown
	FleeDelay    time.Duration // flee, before the session ends
	PotionDelay  time.Duration // potion, before the enemy turn
}

// DefaultConfig returns the stock balance: a one second meter period and
// the classic resolution pauses.
func DefaultConfig() Config {
	return Config{
		MeterRate:    200,
		ResolveDelay: 1500 * time.Millisecond,
		TurnDelay:    time.Second,
		DefeatDelay:  2 * time.Second,
		VictoryDelay: 2 * time.Second,
		FleeDelay:    time.Second,
		PotionDelay:  time.Second,
	}
}
