package game

import (
	"slices"

	"github.com/CodingPenguin1/Splendor/internal/card"
)

// CardsPerTier is the number of visible cards per tier while the deck lasts
const CardsPerTier = 4

// Board holds the visible cards of each tier and the visible nobles
type Board struct {
	Tiers  [card.NumTiers][]card.Card
	Nobles []card.Noble
}

// Find locates a visible card by ID
func (b *Board) Find(id card.ID) (tier card.Tier, index int, ok bool) {
	for i, cards := range b.Tiers {
		if j := slices.IndexFunc(cards, func(c card.Card) bool { return c.ID == id }); j >= 0 {
			return card.Tiers[i], j, true
		}
	}
	return 0, -1, false
}

// take removes the card at index from tier. When replacement is present it
// fills the same slot; otherwise the tier shrinks by one.
func (b *Board) take(tier card.Tier, index int, replacement card.Card, refill bool) card.Card {
	cards := b.Tiers[tier.Index()]
	taken := cards[index]
	if refill {
		cards[index] = replacement
		return taken
	}
	b.Tiers[tier.Index()] = slices.Delete(cards, index, index+1)
	return taken
}

func (b *Board) clone() Board {
	var out Board
	for i := range b.Tiers {
		out.Tiers[i] = slices.Clone(b.Tiers[i])
	}
	out.Nobles = slices.Clone(b.Nobles)
	return out
}
