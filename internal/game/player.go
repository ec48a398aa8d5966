package game

import (
	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/gem"
)

// MaxReserved is the number of cards a player may hold in reserve
const MaxReserved = 3

// Player is a participant's wallet and collections. It is a passive record:
// only Game mutates it, and it never validates rules itself.
type Player struct {
	Name      string
	Tokens    gem.Purse
	Purchased []card.Card // in purchase order
	Reserved  []card.Card
	Nobles    []card.Noble
}

// NewPlayer creates a player with an empty wallet
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// Discount returns the number of purchased cards of color c
func (p *Player) Discount(c gem.Color) int {
	n := 0
	for _, owned := range p.Purchased {
		if owned.Color == c {
			n++
		}
	}
	return n
}

// Discounts returns the discount for every color
func (p *Player) Discounts() gem.Cost {
	return discounts(p.Purchased)
}

// BuyingPower returns tokens plus discounts per color; gold is tokens only
func (p *Player) BuyingPower() gem.Purse {
	power := p.Tokens
	d := p.Discounts()
	for _, c := range gem.Colors {
		power.Colors[c] += d[c]
	}
	return power
}

// Score is the sum of purchased card points and noble points
func (p *Player) Score() int {
	return score(p.Purchased, p.Nobles)
}

// State returns a deep copy of the player's public state
func (p *Player) State(index int) PlayerState {
	return PlayerState{
		Index:     index,
		Name:      p.Name,
		Tokens:    p.Tokens,
		Purchased: append([]card.Card(nil), p.Purchased...),
		Reserved:  append([]card.Card(nil), p.Reserved...),
		Nobles:    append([]card.Noble(nil), p.Nobles...),
		Discounts: p.Discounts(),
		Score:     p.Score(),
	}
}

func discounts(cards []card.Card) gem.Cost {
	var d gem.Cost
	for _, c := range cards {
		d[c.Color]++
	}
	return d
}

func score(cards []card.Card, nobles []card.Noble) int {
	total := 0
	for _, c := range cards {
		total += c.Points
	}
	for _, n := range nobles {
		total += n.Points()
	}
	return total
}

// Payment computes the tokens needed to buy a card costing cost. Discounts
// reduce the cost first, matching colored tokens cover what they can and
// gold covers the remaining shortfall unit for unit. ok is false when the
// player's gold cannot cover the shortfall.
func Payment(cost, discounts gem.Cost, tokens gem.Purse) (pay gem.Purse, ok bool) {
	net := cost.Sub(discounts)
	for _, c := range gem.Colors {
		colored := min(net[c], tokens.Colors[c])
		pay.Colors[c] = colored
		pay.Gold += net[c] - colored
	}
	return pay, pay.Gold <= tokens.Gold
}
