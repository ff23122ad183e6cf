package battle

import (
	"errors"
	"fmt"
)

// Code is a machine-readable battle error code.
type Code string

const (
	CodeNoPotions              Code = "NO_POTIONS"
	CodeInvalidStateTransition Code = "INVALID_STATE_TRANSITION"
	CodeNullCombatant          Code = "NULL_COMBATANT"
)

// Error is a battle rule violation. Errors compare equal under errors.Is
// when their codes match, so callers test against the sentinels below.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNoPotions is returned by UsePotion when the inventory is empty.
	ErrNoPotions = &Error{Code: CodeNoPotions, Message: "no potions left"}
	// ErrInvalidStateTransition is returned for input outside its phase.
	ErrInvalidStateTransition = &Error{Code: CodeInvalidStateTransition, Message: "invalid state transition"}
	// ErrNullCombatant is returned when a session or encounter lacks a combatant.
	ErrNullCombatant = &Error{Code: CodeNullCombatant, Message: "combatant is required"}

	// ErrTimerPending is returned when a deferred action is scheduled while
	// another is still outstanding.
	ErrTimerPending = errors.New("deferred action already pending")
)

func invalidTransition(op string, reason string) error {
	return &Error{
		Code:    CodeInvalidStateTransition,
		Message: fmt.Sprintf("%s rejected: %s", op, reason),
	}
}
