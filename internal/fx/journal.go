// Package fx holds presentation sinks for battle events: a text journal,
// a log sink, synthesized audio cues and a fan-out bus.
package fx

import (
	"fmt"
	"sync"

	"arena/internal/battle"
)

// DefaultJournalSize bounds the journal when no size is given.
const DefaultJournalSize = 64

// Journal keeps the most recent battle lines for display.
type Journal struct {
	mu    sync.RWMutex
	size  int
	lines []string
}

// NewJournal returns a journal holding at most size lines.
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = DefaultJournalSize
	}
	return &Journal{size: size}
}

// Emit implements battle.Bus.
func (j *Journal) Emit(e battle.Event) {
	line := Describe(e)
	if line == "" {
		return
	}
	j.Add(line)
}

// Add appends a free-form line, dropping the oldest when full.
func (j *Journal) Add(line string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lines = append(j.lines, line)
	if over := len(j.lines) - j.size; over > 0 {
		j.lines = append(j.lines[:0:0], j.lines[over:]...)
	}
}

// Lines returns a copy of the journal, oldest first.
func (j *Journal) Lines() []string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]string, len(j.lines))
	copy(out, j.lines)
	return out
}

// Last returns the newest line, or "" when empty.
func (j *Journal) Last() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if len(j.lines) == 0 {
		return ""
	}
	return j.lines[len(j.lines)-1]
}

// Describe renders an event as a battle line.
func Describe(e battle.Event) string {
	switch e.Kind {
	case battle.EventEncounterStarted:
		return fmt.Sprintf("%s blocks the way!", e.Enemy)
	case battle.EventTurnStarted:
		return "Your turn."
	case battle.EventCriticalHit:
		return fmt.Sprintf("CRITICAL! %d damage!", e.Amount)
	case battle.EventNormalHit:
		return fmt.Sprintf("You hit for %d damage!", e.Amount)
	case battle.EventPlayerDamaged:
		return fmt.Sprintf("%s attacks! -%d HP", e.Enemy, e.Amount)
	case battle.EventPotionUsed:
		return fmt.Sprintf("Potion used! +%d HP", e.Amount)
	case battle.EventFlee:
		return "You flee!"
	case battle.EventLevelUp:
		return fmt.Sprintf("LEVEL UP! Level %d", e.Level)
	case battle.EventVictory:
		return fmt.Sprintf("Victory! +%d XP, +%d Gold", e.Amount, e.Gold)
	case battle.EventDefeat:
		return "Defeated..."
	}
	return ""
}
