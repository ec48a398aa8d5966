package game

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func testDefinitions(t *testing.T) card.Definitions {
	t.Helper()
	defs, err := card.Default()
	require.NoError(t, err)
	return defs
}

// firstAction always plays the first legal action
var firstAction = AgentFunc(func(s Snapshot) Action {
	actions := ValidActions(s)
	if len(actions) == 0 {
		return Action{}
	}
	return actions[0]
})

// randomAgent plays a uniformly random legal action
func randomAgent(rng *rand.Rand) Agent {
	return AgentFunc(func(s Snapshot) Action {
		actions := ValidActions(s)
		if len(actions) == 0 {
			return Action{}
		}
		return actions[rng.IntN(len(actions))]
	})
}

func seats(n int, agent Agent) []Seat {
	names := []string{"alice", "bob", "carol", "dave", "erin"}
	out := make([]Seat, n)
	for i := range out {
		out[i] = Seat{Name: names[i%len(names)], Agent: agent}
	}
	return out
}

func newTestGame(t *testing.T, players int, configure ...func(*Options)) *Game {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = 42
	opts.Logger = testLogger()
	for _, fn := range configure {
		fn(&opts)
	}
	g, err := New(seats(players, firstAction), testDefinitions(t), opts)
	require.NoError(t, err)
	return g
}

// give moves n tokens of color c from the bank to player p, keeping
// conservation intact
func give(g *Game, p int, c gem.Color, n int) {
	g.bank.Colors[c] -= n
	g.players[p].Tokens.Colors[c] += n
}

func giveGold(g *Game, p int, n int) {
	g.bank.Gold -= n
	g.players[p].Tokens.Gold += n
}

// place puts c into the first slot of its tier on the board
func place(g *Game, c card.Card) {
	g.board.Tiers[c.Tier.Index()][0] = c
}

func boardIDs(g *Game) []card.ID {
	var ids []card.ID
	for _, tier := range g.board.Tiers {
		for _, c := range tier {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

