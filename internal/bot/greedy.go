package bot

import (
	"math/rand/v2"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/charmbracelet/log"
)

// GreedyBot buys the most valuable card it can afford and otherwise saves
// toward the card closest to affordable
type GreedyBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewGreedyBot creates a new GreedyBot instance. rng breaks ties between
// equally good token takes.
func NewGreedyBot(rng *rand.Rand, logger *log.Logger) *GreedyBot {
	return &GreedyBot{rng: rng, logger: logger}
}

func (g *GreedyBot) MakeDecision(state game.Snapshot) game.Action {
	actions := game.ValidActions(state)
	if len(actions) == 0 {
		return game.Action{Reasoning: "greedy-bot no valid actions"}
	}
	me := state.CurrentPlayer()

	action := g.choose(state, me, actions)
	g.logger.Debug("Greedy decision",
		"player", me.Name,
		"round", state.Round,
		"action", action,
		"reasoning", action.Reasoning)
	return action
}

func (g *GreedyBot) choose(state game.Snapshot, me game.PlayerState, actions []game.Action) game.Action {
	if buy, ok := bestBuy(state, me, actions); ok {
		return buy
	}

	if target, need, ok := closestCard(state, me); ok {
		if take, ok := g.bestTake(need, actions); ok {
			return take.Because("saving for #%d (%s)", target.ID, need)
		}
	}

	if len(me.Reserved) < game.MaxReserved {
		if reserve, ok := bestReserve(state, actions); ok {
			return reserve
		}
	}

	return actions[0].Because("greedy-bot fallback")
}

// bestBuy picks the affordable card with the most points, then the one
// costing the fewest tokens
func bestBuy(state game.Snapshot, me game.PlayerState, actions []game.Action) (game.Action, bool) {
	var (
		best     game.Action
		bestCard card.Card
		bestPaid int
		found    bool
	)
	for _, a := range actions {
		if a.Type != game.ActionBuy {
			continue
		}
		c, ok := state.FindCard(a.Card)
		if !ok {
			continue
		}
		pay, _ := game.Payment(c.Cost, me.Discounts, me.Tokens)
		paid := pay.Total()
		if !found || c.Points > bestCard.Points || (c.Points == bestCard.Points && paid < bestPaid) {
			best, bestCard, bestPaid, found = a, c, paid, true
		}
	}
	if !found {
		return game.Action{}, false
	}
	return best.Because("buy %s for %d points", bestCard, bestCard.Points), true
}

// closestCard returns the visible card with the smallest remaining
// shortfall after discounts, tokens and gold, preferring more points
func closestCard(state game.Snapshot, me game.PlayerState) (card.Card, gem.Cost, bool) {
	var (
		best     card.Card
		bestNeed gem.Cost
		bestGap  int
		found    bool
	)
	for _, c := range state.Cards() {
		need := c.Cost.Sub(me.Discounts).Sub(me.Tokens.Colors)
		gap := need.Total() - me.Tokens.Gold
		if gap <= 0 {
			continue
		}
		if !found || gap < bestGap || (gap == bestGap && c.Points > best.Points) {
			best, bestNeed, bestGap, found = c, need, gap, true
		}
	}
	return best, bestNeed, found
}

// bestTake picks the token take covering most of need. Equal takes are
// broken at random.
func (g *GreedyBot) bestTake(need gem.Cost, actions []game.Action) (game.Action, bool) {
	var (
		candidates []game.Action
		bestGain   int
	)
	for _, a := range actions {
		if a.Type != game.ActionTake {
			continue
		}
		gain := takeGain(need, a.Colors)
		switch {
		case gain > bestGain:
			bestGain = gain
			candidates = []game.Action{a}
		case gain == bestGain && gain > 0:
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return game.Action{}, false
	}
	return candidates[g.rng.IntN(len(candidates))], true
}

func takeGain(need gem.Cost, colors []gem.Color) int {
	var taken gem.Cost
	for _, c := range colors {
		taken[c]++
	}
	gain := 0
	for _, c := range gem.Colors {
		gain += min(taken[c], need[c])
	}
	return gain
}

// bestReserve picks the visible card with the most points
func bestReserve(state game.Snapshot, actions []game.Action) (game.Action, bool) {
	var (
		best     game.Action
		bestCard card.Card
		found    bool
	)
	for _, a := range actions {
		if a.Type != game.ActionReserve {
			continue
		}
		c, ok := state.FindCard(a.Card)
		if !ok {
			continue
		}
		if !found || c.Points > bestCard.Points {
			best, bestCard, found = a, c, true
		}
	}
	if !found {
		return game.Action{}, false
	}
	return best.Because("reserve %s", bestCard), true
}
