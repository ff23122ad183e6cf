package fx

import "arena/internal/battle"

// Multi fans every event out to each bus in order.
type Multi []battle.Bus

// Emit implements battle.Bus.
func (m Multi) Emit(e battle.Event) {
	for _, b := range m {
		if b != nil {
			b.Emit(e)
		}
	}
}
