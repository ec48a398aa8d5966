package game

import (
	"errors"
	"fmt"
)

// Rule violations. Every one of these is a decision error by the acting
// player; a failed action never changes game state.
var (
	ErrInvalidTokenSelection    = errors.New("invalid token selection")
	ErrInsufficientBankTokens   = errors.New("insufficient bank tokens")
	ErrCardNotOnBoard           = errors.New("card not on board")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrReservationLimitExceeded = errors.New("reservation limit exceeded")
	ErrInvalidActionType        = errors.New("invalid action type")
)

// Setup and lifecycle errors
var (
	ErrPlayerCount  = errors.New("game requires 2 to 4 players")
	ErrGameFinished = errors.New("game is finished")
	ErrConservation = errors.New("token conservation violated")
)

// RuleError wraps a rule violation with the player and action that caused it
type RuleError struct {
	Player string
	Action Action
	Err    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Player, e.Action, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
