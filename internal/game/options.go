package game

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Phase is the lifecycle state of a match
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Policy decides what a turn does when the agent's action is illegal or late
type Policy int

const (
	// PolicyHalt stops the match on the first rule violation
	PolicyHalt Policy = iota
	// PolicyRetry re-requests a decision up to MaxRetries times, then forfeits
	PolicyRetry
	// PolicyForfeit forfeits the turn on the first rule violation
	PolicyForfeit
)

func (p Policy) String() string {
	switch p {
	case PolicyHalt:
		return "halt"
	case PolicyRetry:
		return "retry"
	case PolicyForfeit:
		return "forfeit"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses "halt", "retry" or "forfeit"
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "halt", "":
		return PolicyHalt, nil
	case "retry":
		return PolicyRetry, nil
	case "forfeit":
		return PolicyForfeit, nil
	default:
		return 0, fmt.Errorf("unknown turn policy %q", s)
	}
}

// DefaultTargetScore is the score whose reach ends the match at round end
const DefaultTargetScore = 15

// Options configures rules and turn handling for one match
type Options struct {
	// TargetScore ends the match at the end of the round in which any
	// player reaches it. Zero disables the check.
	TargetScore int

	// MaxRounds ends the match after that many full rounds. Zero means no limit.
	MaxRounds int

	// AwardNobles gives a buyer one visible noble whose cost their
	// discounts meet.
	AwardNobles bool

	// ReserveGold gives a reserving player one gold token while the bank has any.
	ReserveGold bool

	Policy     Policy
	MaxRetries int // used by PolicyRetry

	// DecisionTimeout forfeits a turn whose decision takes longer. Zero
	// disables it. An agent that times out is left running on its own
	// snapshot copy.
	DecisionTimeout time.Duration
	Clock           quartz.Clock

	// Seed drives every deck shuffle. Zero picks a random seed.
	Seed   int64
	Logger *log.Logger
}

// DefaultOptions returns the standard rules: nobles and reservation gold on,
// a 15-point target and the halting turn policy.
func DefaultOptions() Options {
	return Options{
		TargetScore: DefaultTargetScore,
		MaxRounds:   100,
		AwardNobles: true,
		ReserveGold: true,
		Policy:      PolicyHalt,
		MaxRetries:  3,
	}
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	return o
}
