package gem

import (
	"strconv"
	"strings"
)

// Cost is a per-color count, indexed by Color. It is used for card costs,
// noble requirements and purchased-card discounts.
type Cost [NumColors]int

// Get returns the count for color c
func (c Cost) Get(color Color) int {
	return c[color]
}

// Total returns the sum across all colors
func (c Cost) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Sub returns c - other per color, floored at zero
func (c Cost) Sub(other Cost) Cost {
	var out Cost
	for i := range c {
		if d := c[i] - other[i]; d > 0 {
			out[i] = d
		}
	}
	return out
}

// Covers reports whether c is at least other in every color
func (c Cost) Covers(other Cost) bool {
	for i := range c {
		if c[i] < other[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every color is zero
func (c Cost) IsZero() bool {
	return c == Cost{}
}

// String renders the non-zero entries, e.g. "2K 1U"
func (c Cost) String() string {
	var parts []string
	for _, color := range Colors {
		if c[color] > 0 {
			parts = append(parts, strconv.Itoa(c[color])+color.Short())
		}
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, " ")
}

// Purse holds colored tokens plus wildcard gold tokens. It is used for the
// bank and for player wallets.
type Purse struct {
	Colors Cost `json:"colors"`
	Gold   int  `json:"gold"`
}

// Total returns the number of tokens including gold
func (p Purse) Total() int {
	return p.Colors.Total() + p.Gold
}

// String renders the purse as "black:1 blue:0 ... gold:2"
func (p Purse) String() string {
	var sb strings.Builder
	for _, color := range Colors {
		sb.WriteString(color.String())
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(p.Colors[color]))
		sb.WriteByte(' ')
	}
	sb.WriteString("gold:")
	sb.WriteString(strconv.Itoa(p.Gold))
	return sb.String()
}
