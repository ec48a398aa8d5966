package game

import (
	"fmt"
	"strings"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/gem"
)

// ActionType tags the kind of action a player takes
type ActionType int

const (
	ActionUnknown ActionType = iota
	ActionTake
	ActionBuy
	ActionReserve
)

func (t ActionType) String() string {
	switch t {
	case ActionTake:
		return "take"
	case ActionBuy:
		return "buy"
	case ActionReserve:
		return "reserve"
	default:
		return fmt.Sprintf("action(%d)", int(t))
	}
}

// Action is one player decision. Colors is used by take, Card by buy and
// reserve.
type Action struct {
	Type      ActionType  `json:"type"`
	Colors    []gem.Color `json:"colors,omitempty"`
	Card      card.ID     `json:"card,omitempty"`
	Reasoning string      `json:"reasoning,omitempty"` // Human-readable explanation
}

// Take returns an action taking the given colored tokens
func Take(colors ...gem.Color) Action {
	return Action{Type: ActionTake, Colors: colors}
}

// Buy returns an action purchasing a visible board card
func Buy(id card.ID) Action {
	return Action{Type: ActionBuy, Card: id}
}

// Reserve returns an action reserving a visible board card
func Reserve(id card.ID) Action {
	return Action{Type: ActionReserve, Card: id}
}

// Because returns a copy of a with reasoning attached
func (a Action) Because(format string, args ...any) Action {
	a.Reasoning = fmt.Sprintf(format, args...)
	return a
}

func (a Action) String() string {
	switch a.Type {
	case ActionTake:
		names := make([]string, len(a.Colors))
		for i, c := range a.Colors {
			names[i] = c.String()
		}
		return "take " + strings.Join(names, ",")
	case ActionBuy, ActionReserve:
		return fmt.Sprintf("%s #%d", a.Type, a.Card)
	default:
		return a.Type.String()
	}
}
