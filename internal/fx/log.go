package fx

import (
	"io"
	"log"

	"arena/internal/battle"
)

// LogBus writes every event as a log line.
type LogBus struct {
	logger *log.Logger
}

// NewLogBus logs to w with a "battle: " prefix.
func NewLogBus(w io.Writer) *LogBus {
	return &LogBus{logger: log.New(w, "battle: ", log.LstdFlags)}
}

// Emit implements battle.Bus.
func (b *LogBus) Emit(e battle.Event) {
	b.logger.Printf("%s enemy=%q amount=%d hp=%d/%d %s", e.Kind, e.Enemy, e.Amount, e.HP, e.MaxHP, Describe(e))
}
