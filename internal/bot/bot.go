// Package bot provides computer strategies that play through game.Agent.
package bot

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/charmbracelet/log"
)

// Strategy names accepted by New
const (
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
)

// Strategies lists the registered strategy names
func Strategies() []string {
	return []string{StrategyGreedy, StrategyRandom}
}

// New builds the named strategy. Each bot owns rng, so give every seat its
// own source.
func New(strategy string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch strings.ToLower(strategy) {
	case StrategyRandom:
		return NewRandomBot(rng, logger), nil
	case StrategyGreedy:
		return NewGreedyBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", strategy, strings.Join(Strategies(), ", "))
	}
}

// IsStrategy reports whether name is a registered strategy
func IsStrategy(name string) bool {
	return slices.Contains(Strategies(), strings.ToLower(name))
}
