package fx

import (
	"sync"

	"arena/internal/battle"
)

// Cue names, one per audible event.
const (
	CueHit     = "hit"
	CueCrit    = "crit"
	CueHurt    = "hurt"
	CueWin     = "win"
	CueFail    = "fail"
	CueFlee    = "flee"
	CuePotion  = "potion"
	CueLevelUp = "levelup"
)

// CueName maps an event to its cue, or "" for silent events.
func CueName(kind battle.EventKind) string {
	switch kind {
	case battle.EventNormalHit:
		return CueHit
	case battle.EventCriticalHit:
		return CueCrit
	case battle.EventPlayerDamaged:
		return CueHurt
	case battle.EventVictory:
		return CueWin
	case battle.EventDefeat:
		return CueFail
	case battle.EventFlee:
		return CueFlee
	case battle.EventPotionUsed:
		return CuePotion
	case battle.EventLevelUp:
		return CueLevelUp
	}
	return ""
}

// CueBus remembers the latest cue so a polling client can play it once.
type CueBus struct {
	mu   sync.Mutex
	name string
	seq  uint64
}

// Emit implements battle.Bus.
func (c *CueBus) Emit(e battle.Event) {
	name := CueName(e.Kind)
	if name == "" {
		return
	}
	c.mu.Lock()
	c.name = name
	c.seq++
	c.mu.Unlock()
}

// Last returns the newest cue and its sequence number. seq is 0 until the
// first cue.
func (c *CueBus) Last() (name string, seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name, c.seq
}
