package game

import (
	"testing"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countTypes(actions []Action) map[ActionType]int {
	counts := make(map[ActionType]int)
	for _, a := range actions {
		counts[a.Type]++
	}
	return counts
}

func TestValidActionsAtSetup(t *testing.T) {
	g := newTestGame(t, 4)
	actions := ValidActions(g.Snapshot())

	counts := countTypes(actions)
	assert.Equal(t, 10+5, counts[ActionTake], "ten color triples and five pairs")
	assert.Zero(t, counts[ActionBuy])
	assert.Equal(t, 3*CardsPerTier, counts[ActionReserve])

	// Every listed action is accepted by the engine
	for _, a := range actions {
		fresh := newTestGame(t, 4)
		require.NoError(t, fresh.Apply(a), a.String())
	}
}

func TestValidActionsTracksBank(t *testing.T) {
	g := newTestGame(t, 2)
	give(g, 1, gem.Red, 4)
	give(g, 1, gem.Blue, 1)

	actions := ValidActions(g.Snapshot())
	for _, a := range actions {
		if a.Type != ActionTake {
			continue
		}
		assert.NotContains(t, a.Colors, gem.Red, "red is exhausted")
		if len(a.Colors) == 2 {
			assert.NotEqual(t, gem.Blue, a.Colors[0], "blue has fewer than four left")
		}
	}
	counts := countTypes(actions)
	assert.Equal(t, 4+3, counts[ActionTake])
}

func TestValidActionsIncludesAffordableBuys(t *testing.T) {
	g := newTestGame(t, 2)
	cheap := card.Card{ID: 1000, Tier: 1, Color: gem.Red, Cost: gem.Cost{gem.White: 1}}
	place(g, cheap)
	giveGold(g, 0, 1)

	actions := ValidActions(g.Snapshot())
	assert.Contains(t, actions, Buy(cheap.ID))
	for _, a := range actions {
		if a.Type == ActionBuy {
			c, ok := g.Snapshot().FindCard(a.Card)
			require.True(t, ok)
			_, affordable := Payment(c.Cost, gem.Cost{}, g.players[0].Tokens)
			assert.True(t, affordable)
		}
	}
}

func TestValidActionsRespectsReservationLimit(t *testing.T) {
	g := newTestGame(t, 2)
	for i := 0; i < MaxReserved; i++ {
		require.NoError(t, g.Apply(Reserve(g.board.Tiers[i][0].ID)))
	}

	counts := countTypes(ValidActions(g.Snapshot()))
	assert.Zero(t, counts[ActionReserve])
}

func TestValidActionsWhenFinished(t *testing.T) {
	s := newTestGame(t, 2).Snapshot()
	s.Phase = PhaseFinished
	assert.Empty(t, ValidActions(s))
}
