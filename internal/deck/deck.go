// Package deck implements draw piles for card tiers and the noble pool.
package deck

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/CodingPenguin1/Splendor/internal/card"
)

// Kind identifies what a deck holds. It is fixed when the deck is built.
type Kind struct {
	tier  card.Tier
	noble bool
}

// TierKind is the kind of a development-card deck for tier t
func TierKind(t card.Tier) Kind {
	return Kind{tier: t}
}

// NobleKind is the kind of the noble pool
func NobleKind() Kind {
	return Kind{noble: true}
}

// Tier returns the deck's tier; ok is false for the noble pool
func (k Kind) Tier() (card.Tier, bool) {
	return k.tier, !k.noble
}

func (k Kind) String() string {
	if k.noble {
		return "nobles"
	}
	return k.tier.String()
}

// Deck is a draw pile of cards or nobles. Entries are drawn from the top.
type Deck[T any] struct {
	kind  Kind
	defs  []T
	cards []T
	rng   *rand.Rand
}

// NewTierDeck builds and shuffles the deck for one tier. cards must all
// belong to that tier.
func NewTierDeck(tier card.Tier, cards []card.Card, rng *rand.Rand) (*Deck[card.Card], error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("invalid tier %d", tier)
	}
	for _, c := range cards {
		if c.Tier != tier {
			return nil, fmt.Errorf("card %d belongs to %s, not %s", c.ID, c.Tier, tier)
		}
	}
	return newDeck(TierKind(tier), cards, rng), nil
}

// NewNobleDeck builds and shuffles the noble pool
func NewNobleDeck(nobles []card.Noble, rng *rand.Rand) *Deck[card.Noble] {
	return newDeck(NobleKind(), nobles, rng)
}

func newDeck[T any](kind Kind, defs []T, rng *rand.Rand) *Deck[T] {
	d := &Deck[T]{
		kind: kind,
		defs: append([]T(nil), defs...),
		rng:  rng,
	}
	d.Reset()
	return d
}

// Kind returns what the deck holds
func (d *Deck[T]) Kind() Kind {
	return d.kind
}

// Shuffle randomizes the remaining entries using Fisher-Yates
func (d *Deck[T]) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top entry. ok is false when the deck is
// empty; that is a normal state, not an error.
func (d *Deck[T]) Draw() (entry T, ok bool) {
	if len(d.cards) == 0 {
		return entry, false
	}
	last := len(d.cards) - 1
	entry = d.cards[last]
	d.cards = d.cards[:last]
	return entry, true
}

// DrawN draws up to n entries, fewer if the deck runs out
func (d *Deck[T]) DrawN(n int) []T {
	out := make([]T, 0, n)
	for range n {
		entry, ok := d.Draw()
		if !ok {
			break
		}
		out = append(out, entry)
	}
	return out
}

// Remaining returns the number of entries left
func (d *Deck[T]) Remaining() int {
	return len(d.cards)
}

// Reset restores the full definition set and reshuffles. It is meant for
// starting a new match, not for recovering mid-match.
func (d *Deck[T]) Reset() {
	d.cards = append(d.cards[:0], d.defs...)
	d.Shuffle()
}
