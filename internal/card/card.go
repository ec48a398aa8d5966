// Package card defines the immutable development cards and noble tiles, and
// loads their definitions from the tabular data set.
package card

import (
	"fmt"

	"github.com/CodingPenguin1/Splendor/internal/gem"
)

// NoblePoints is the victory-point value of every noble tile
const NoblePoints = 3

// Tier is a card rank, 1 through 3
type Tier uint8

// NumTiers is the number of card tiers
const NumTiers = 3

// Tiers lists the tiers in ascending order
var Tiers = [NumTiers]Tier{1, 2, 3}

// Valid reports whether t is 1, 2 or 3
func (t Tier) Valid() bool {
	return t >= 1 && t <= NumTiers
}

// Index returns the zero-based slot for t
func (t Tier) Index() int {
	return int(t) - 1
}

func (t Tier) String() string {
	return fmt.Sprintf("T%d", uint8(t))
}

// ID uniquely identifies a card within a definition set. Two cards with the
// same color, points and cost still have different IDs.
type ID int

// Card is a purchasable development card
type Card struct {
	ID     ID        `json:"id"`
	Tier   Tier      `json:"tier"`
	Color  gem.Color `json:"color"`
	Points int       `json:"points"`
	Cost   gem.Cost  `json:"cost"`
}

func (c Card) String() string {
	return fmt.Sprintf("#%d %s %s %dpt [%s]", c.ID, c.Tier, c.Color, c.Points, c.Cost)
}

// NobleID uniquely identifies a noble tile within a definition set
type NobleID int

// Noble is a bonus tile awarded for reaching per-color discount thresholds
type Noble struct {
	ID   NobleID  `json:"id"`
	Cost gem.Cost `json:"cost"`
}

// Points returns the noble's victory-point value
func (n Noble) Points() int {
	return NoblePoints
}

func (n Noble) String() string {
	return fmt.Sprintf("N%d %dpt [%s]", n.ID, NoblePoints, n.Cost)
}

// Definitions is the full static data set handed to a game at setup
type Definitions struct {
	Cards  []Card
	Nobles []Noble
}

// Tier returns the cards belonging to tier t, in definition order
func (d Definitions) Tier(t Tier) []Card {
	var out []Card
	for _, c := range d.Cards {
		if c.Tier == t {
			out = append(out, c)
		}
	}
	return out
}

// Validate checks that IDs are unique, every card has a valid tier and
// color, and no points or cost are negative
func (d Definitions) Validate() error {
	seen := make(map[ID]bool, len(d.Cards))
	for _, c := range d.Cards {
		if seen[c.ID] {
			return fmt.Errorf("duplicate card id %d", c.ID)
		}
		seen[c.ID] = true
		if !c.Tier.Valid() {
			return fmt.Errorf("card %d: invalid tier %d", c.ID, c.Tier)
		}
		if !c.Color.Valid() {
			return fmt.Errorf("card %d: invalid color", c.ID)
		}
		if c.Points < 0 {
			return fmt.Errorf("card %d: negative points %d", c.ID, c.Points)
		}
		if err := checkCost(c.Cost); err != nil {
			return fmt.Errorf("card %d: %w", c.ID, err)
		}
	}
	nobles := make(map[NobleID]bool, len(d.Nobles))
	for _, n := range d.Nobles {
		if nobles[n.ID] {
			return fmt.Errorf("duplicate noble id %d", n.ID)
		}
		nobles[n.ID] = true
		if err := checkCost(n.Cost); err != nil {
			return fmt.Errorf("noble %d: %w", n.ID, err)
		}
	}
	return nil
}

func checkCost(cost gem.Cost) error {
	for _, c := range gem.Colors {
		if cost[c] < 0 {
			return fmt.Errorf("negative %s cost %d", c, cost[c])
		}
	}
	return nil
}
