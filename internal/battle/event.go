package battle

// EventKind identifies a presentation notification.
type EventKind int

const (
	EventEncounterStarted EventKind = iota
	EventTurnStarted
	EventCriticalHit
	EventNormalHit
	EventPlayerDamaged
	EventPotionUsed
	EventFlee
	EventLevelUp
	EventVictory
	EventDefeat
)

func (k EventKind) String() string {
	switch k {
	case EventEncounterStarted:
		return "encounter_started"
	case EventTurnStarted:
		return "turn_started"
	case EventCriticalHit:
		return "critical_hit"
	case EventNormalHit:
		return "normal_hit"
	case EventPlayerDamaged:
		return "player_damaged"
	case EventPotionUsed:
		return "potion_used"
	case EventFlee:
		return "flee"
	case EventLevelUp:
		return "level_up"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification about something that happened
// in a session.
//
// Amount carries the damage dealt (hits), the HP healed (PotionUsed) or
// the XP granted (Victory). Level is the new level for LevelUp.
type Event struct {
	Kind   EventKind
	Enemy  string
	Amount int
	Gold   int
	Level  int
	// HP and MaxHP describe the combatant affected by the event.
	HP    int
	MaxHP int
}

// Bus receives session events. Emit is called while the session holds its
// lock, so implementations must not call back into the session.
type Bus interface {
	Emit(Event)
}

// BusFunc adapts a function to Bus.
type BusFunc func(Event)

func (f BusFunc) Emit(e Event) { f(e) }

// NopBus discards every event.
type NopBus struct{}

func (NopBus) Emit(Event) {}
