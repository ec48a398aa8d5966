package game

import (
	"slices"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/gem"
)

// PlayerState is the read-only public state of one player
type PlayerState struct {
	Index     int          `json:"index"`
	Name      string       `json:"name"`
	Tokens    gem.Purse    `json:"tokens"`
	Purchased []card.Card  `json:"purchased"`
	Reserved  []card.Card  `json:"reserved"`
	Nobles    []card.Noble `json:"nobles"`
	Discounts gem.Cost     `json:"discounts"`
	Score     int          `json:"score"`
}

// BuyingPower returns tokens plus discounts per color
func (p PlayerState) BuyingPower() gem.Purse {
	power := p.Tokens
	for _, c := range gem.Colors {
		power.Colors[c] += p.Discounts[c]
	}
	return power
}

// CanAfford reports whether the player could pay for c right now
func (p PlayerState) CanAfford(c card.Card) bool {
	_, ok := Payment(c.Cost, p.Discounts, p.Tokens)
	return ok
}

// TierView is one tier row as seen on the board
type TierView struct {
	Tier          card.Tier   `json:"tier"`
	Cards         []card.Card `json:"cards"`
	DeckRemaining int         `json:"deck_remaining"`
}

// Snapshot is a deep copy of the game state handed to agents and renderers.
// Modifying a Snapshot never affects the game.
type Snapshot struct {
	Round       int                     `json:"round"`
	Phase       Phase                   `json:"phase"`
	Bank        gem.Purse               `json:"bank"`
	Tiers       [card.NumTiers]TierView `json:"tiers"`
	Nobles      []card.Noble            `json:"nobles"`
	NoblesLeft  int                     `json:"nobles_left"`
	Players     []PlayerState           `json:"players"`
	Current     int                     `json:"current"`
	TargetScore int                     `json:"target_score"`
}

// CurrentPlayer returns the state of the player to act
func (s Snapshot) CurrentPlayer() PlayerState {
	return s.Players[s.Current]
}

// Cards returns every visible card, tier 1 first
func (s Snapshot) Cards() []card.Card {
	var out []card.Card
	for _, tv := range s.Tiers {
		out = append(out, tv.Cards...)
	}
	return out
}

// FindCard looks up a visible card by ID
func (s Snapshot) FindCard(id card.ID) (card.Card, bool) {
	for _, tv := range s.Tiers {
		for _, c := range tv.Cards {
			if c.ID == id {
				return c, true
			}
		}
	}
	return card.Card{}, false
}

// Clone returns a deep copy of s
func (s Snapshot) Clone() Snapshot {
	out := s
	for i := range s.Tiers {
		out.Tiers[i].Cards = slices.Clone(s.Tiers[i].Cards)
	}
	out.Nobles = slices.Clone(s.Nobles)
	out.Players = make([]PlayerState, len(s.Players))
	for i, p := range s.Players {
		p.Purchased = slices.Clone(p.Purchased)
		p.Reserved = slices.Clone(p.Reserved)
		p.Nobles = slices.Clone(p.Nobles)
		out.Players[i] = p
	}
	return out
}
