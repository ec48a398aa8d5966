package game

import (
	"fmt"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/gem"
)

// Outcome describes the side effects of a successfully applied action
type Outcome struct {
	Card     *card.Card  `json:"card,omitempty"`  // bought or reserved card
	Paid     gem.Purse   `json:"paid"`            // tokens returned to the bank by a buy
	Refilled bool        `json:"refilled"`        // the vacated slot was refilled from the deck
	Noble    *card.Noble `json:"noble,omitempty"` // noble awarded after a buy
	Gold     bool        `json:"gold"`            // gold awarded for a reservation
}

// apply validates a and, only if it is legal, mutates state. The current
// player is not advanced.
func (g *Game) apply(a Action) (Outcome, error) {
	p := g.players[g.current]

	var (
		out Outcome
		err error
	)
	switch a.Type {
	case ActionTake:
		err = g.takeTokens(p, a.Colors)
	case ActionBuy:
		out, err = g.buyCard(p, a.Card)
	case ActionReserve:
		out, err = g.reserveCard(p, a.Card)
	default:
		err = fmt.Errorf("%w: %s", ErrInvalidActionType, a.Type)
	}
	if err != nil {
		return Outcome{}, &RuleError{Player: p.Name, Action: a, Err: err}
	}
	return out, nil
}

func (g *Game) takeTokens(p *Player, colors []gem.Color) error {
	for _, c := range colors {
		if !c.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidTokenSelection, c)
		}
	}

	switch len(colors) {
	case 3:
		if colors[0] == colors[1] || colors[0] == colors[2] || colors[1] == colors[2] {
			return fmt.Errorf("%w: three tokens must be different colors", ErrInvalidTokenSelection)
		}
		for _, c := range colors {
			if g.bank.Colors[c] < 1 {
				return fmt.Errorf("%w: no %s tokens left", ErrInsufficientBankTokens, c)
			}
		}
		for _, c := range colors {
			g.bank.Colors[c]--
			p.Tokens.Colors[c]++
		}
	case 2:
		c := colors[0]
		if colors[1] != c {
			return fmt.Errorf("%w: two tokens must be the same color", ErrInvalidTokenSelection)
		}
		if g.bank.Colors[c] < 4 {
			return fmt.Errorf("%w: taking two %s needs 4 in the bank, have %d",
				ErrInsufficientBankTokens, c, g.bank.Colors[c])
		}
		g.bank.Colors[c] -= 2
		p.Tokens.Colors[c] += 2
	default:
		return fmt.Errorf("%w: must take 3 different or 2 of the same, got %d",
			ErrInvalidTokenSelection, len(colors))
	}
	return nil
}

func (g *Game) buyCard(p *Player, id card.ID) (Outcome, error) {
	tier, index, ok := g.board.Find(id)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: #%d", ErrCardNotOnBoard, id)
	}
	target := g.board.Tiers[tier.Index()][index]

	pay, ok := Payment(target.Cost, p.Discounts(), p.Tokens)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: #%d needs %d more gold", ErrInsufficientFunds, id, pay.Gold-p.Tokens.Gold)
	}

	for _, c := range gem.Colors {
		p.Tokens.Colors[c] -= pay.Colors[c]
		g.bank.Colors[c] += pay.Colors[c]
	}
	p.Tokens.Gold -= pay.Gold
	g.bank.Gold += pay.Gold

	bought, refilled := g.takeFromBoard(tier, index)
	p.Purchased = append(p.Purchased, bought)

	out := Outcome{Card: &bought, Paid: pay, Refilled: refilled}
	if g.opts.AwardNobles {
		out.Noble = g.awardNoble(p)
	}
	return out, nil
}

func (g *Game) reserveCard(p *Player, id card.ID) (Outcome, error) {
	if len(p.Reserved) >= MaxReserved {
		return Outcome{}, fmt.Errorf("%w: already holding %d", ErrReservationLimitExceeded, len(p.Reserved))
	}
	tier, index, ok := g.board.Find(id)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: #%d", ErrCardNotOnBoard, id)
	}

	reserved, refilled := g.takeFromBoard(tier, index)
	p.Reserved = append(p.Reserved, reserved)

	out := Outcome{Card: &reserved, Refilled: refilled}
	if g.opts.ReserveGold && g.bank.Gold > 0 {
		g.bank.Gold--
		p.Tokens.Gold++
		out.Gold = true
	}
	return out, nil
}

// takeFromBoard removes a card and refills its slot from the tier deck,
// leaving the slot vacant when the deck is exhausted.
func (g *Game) takeFromBoard(tier card.Tier, index int) (card.Card, bool) {
	replacement, ok := g.decks[tier.Index()].Draw()
	return g.board.take(tier, index, replacement, ok), ok
}

// awardNoble transfers the first visible noble whose cost the player's
// discounts dominate. At most one noble is awarded per turn.
func (g *Game) awardNoble(p *Player) *card.Noble {
	d := p.Discounts()
	for i, n := range g.board.Nobles {
		if d.Covers(n.Cost) {
			g.board.Nobles = append(g.board.Nobles[:i], g.board.Nobles[i+1:]...)
			p.Nobles = append(p.Nobles, n)
			return &n
		}
	}
	return nil
}
