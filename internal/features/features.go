// Package features encodes a game snapshot as a fixed-width integer vector
// for learned strategies. Encoding reads only the snapshot, so any number
// of goroutines may encode concurrently.
package features

import (
	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/gem"
)

// Component widths
const (
	CardSize  = gem.NumColors + 1 + gem.NumColors + card.NumTiers // color one-hot, points, cost, tier one-hot
	NobleSize = gem.NumColors

	BoardCards  = card.NumTiers * game.CardsPerTier
	BoardNobles = 5 // enough for a four-player board
	MaxPlayers  = 4

	// BoardSize is round, bank (5 colors then gold), visible cards and nobles
	BoardSize = 1 + gem.NumColors + 1 + BoardCards*CardSize + BoardNobles*NobleSize

	// PlayerSize is score, tokens, discounts, reserved cards and nobles
	PlayerSize = 1 + gem.NumColors + 1 + gem.NumColors + game.MaxReserved*CardSize + BoardNobles*NobleSize

	// Size is the flattened width with every seat present
	Size = BoardSize + MaxPlayers*PlayerSize
)

// Vector is an encoded snapshot. Players[0] is always the acting player,
// followed by the others in turn order.
type Vector struct {
	Board   []int   `json:"board"`
	Players [][]int `json:"players"`
}

// Flat concatenates the board and player parts, zero-padding missing seats
// up to MaxPlayers so every vector has length Size
func (v Vector) Flat() []int {
	out := make([]int, 0, Size)
	out = append(out, v.Board...)
	for _, p := range v.Players {
		out = append(out, p...)
	}
	return append(out, make([]int, Size-len(out))...)
}

// Encode builds the vector for the player to act in s. Empty board slots
// and missing nobles encode as zeros.
func Encode(s game.Snapshot) Vector {
	board := make([]int, 0, BoardSize)
	board = append(board, s.Round)
	board = appendPurse(board, s.Bank)

	for _, tv := range s.Tiers {
		for i := 0; i < game.CardsPerTier; i++ {
			if i < len(tv.Cards) {
				board = appendCard(board, tv.Cards[i])
			} else {
				board = pad(board, CardSize)
			}
		}
	}
	board = appendNobles(board, s.Nobles)

	v := Vector{Board: board}
	n := len(s.Players)
	for i := 0; i < n; i++ {
		v.Players = append(v.Players, encodePlayer(s.Players[(s.Current+i)%n]))
	}
	return v
}

func encodePlayer(p game.PlayerState) []int {
	out := make([]int, 0, PlayerSize)
	out = append(out, p.Score)
	out = appendPurse(out, p.Tokens)
	out = append(out, p.Discounts[:]...)

	for i := 0; i < game.MaxReserved; i++ {
		if i < len(p.Reserved) {
			out = appendCard(out, p.Reserved[i])
		} else {
			out = pad(out, CardSize)
		}
	}
	return appendNobles(out, p.Nobles)
}

func appendPurse(out []int, p gem.Purse) []int {
	out = append(out, p.Colors[:]...)
	return append(out, p.Gold)
}

func appendCard(out []int, c card.Card) []int {
	var color [gem.NumColors]int
	color[c.Color] = 1
	var tier [card.NumTiers]int
	tier[c.Tier.Index()] = 1

	out = append(out, color[:]...)
	out = append(out, c.Points)
	out = append(out, c.Cost[:]...)
	return append(out, tier[:]...)
}

func appendNobles(out []int, nobles []card.Noble) []int {
	for i := 0; i < BoardNobles; i++ {
		if i < len(nobles) {
			out = append(out, nobles[i].Cost[:]...)
		} else {
			out = pad(out, NobleSize)
		}
	}
	return out
}

func pad(out []int, n int) []int {
	return append(out, make([]int, n)...)
}
