package card

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	defs, err := Default()
	require.NoError(t, err)

	assert.Len(t, defs.Cards, 90)
	assert.Len(t, defs.Tier(1), 40)
	assert.Len(t, defs.Tier(2), 30)
	assert.Len(t, defs.Tier(3), 20)
	assert.Len(t, defs.Nobles, 10)

	for _, n := range defs.Nobles {
		assert.Equal(t, 3, n.Points())
		assert.False(t, n.Cost.IsZero(), "noble %d has no requirement", n.ID)
	}

	// Every color gets the same number of cards per tier
	for _, tier := range Tiers {
		counts := map[gem.Color]int{}
		for _, c := range defs.Tier(tier) {
			counts[c.Color]++
		}
		for _, color := range gem.Colors {
			assert.Equal(t, len(defs.Tier(tier))/gem.NumColors, counts[color], "tier %d color %s", tier, color)
		}
	}
}

func TestParseCardsColumnOrder(t *testing.T) {
	input := "color,points,tier,cost_white,cost_red,cost_green,cost_blue,cost_black\n" +
		"red,1,2,0,0,0,0,3\n" +
		"blue,0,1,1,1,1,0,1\n"

	cards, err := ParseCards(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, Card{ID: 1, Tier: 2, Color: gem.Red, Points: 1, Cost: gem.Cost{gem.Black: 3}}, cards[0])
	assert.Equal(t, ID(2), cards[1].ID)
	assert.Equal(t, gem.Cost{gem.Black: 1, gem.Green: 1, gem.Red: 1, gem.White: 1}, cards[1].Cost)
}

func TestParseCardsErrors(t *testing.T) {
	header := "tier,color,points,cost_black,cost_blue,cost_green,cost_red,cost_white\n"
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing column", "tier,color,points\n1,red,0\n", "missing column"},
		{"bad tier", header + "4,red,0,0,0,0,0,0\n", "invalid tier"},
		{"bad color", header + "1,gold,0,0,0,0,0,0\n", "line 2"},
		{"negative cost", header + "1,red,0,-1,0,0,0,0\n", "negative"},
		{"empty", "", "header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCards(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseNobles(t *testing.T) {
	input := "cost_black,cost_blue,cost_green,cost_red,cost_white\n4,0,0,4,0\n0,3,3,3,0\n"
	nobles, err := ParseNobles(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, nobles, 2)
	assert.Equal(t, Noble{ID: 1, Cost: gem.Cost{gem.Black: 4, gem.Red: 4}}, nobles[0])
	assert.Equal(t, NobleID(2), nobles[1].ID)
}

func TestWriteCardsRoundTrip(t *testing.T) {
	defs, err := Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCards(&buf, defs.Cards))

	parsed, err := ParseCards(&buf)
	require.NoError(t, err)
	assert.Equal(t, defs.Cards, parsed)
}

func TestDefinitionsValidate(t *testing.T) {
	defs := Definitions{Cards: []Card{{ID: 1, Tier: 1}, {ID: 1, Tier: 2}}}
	assert.ErrorContains(t, defs.Validate(), "duplicate card id")

	defs = Definitions{Cards: []Card{{ID: 1, Tier: 0}}}
	assert.ErrorContains(t, defs.Validate(), "invalid tier")

	defs = Definitions{Cards: []Card{{ID: 1, Tier: 1, Points: -1}}}
	assert.ErrorContains(t, defs.Validate(), "negative points")

	var cost gem.Cost
	cost[gem.Red] = -2
	defs = Definitions{Cards: []Card{{ID: 1, Tier: 1, Cost: cost}}}
	assert.ErrorContains(t, defs.Validate(), "negative red cost -2")

	defs = Definitions{Nobles: []Noble{{ID: 3, Cost: cost}}}
	assert.ErrorContains(t, defs.Validate(), "noble 3: negative red cost")
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	defs, err := Load("", "")
	require.NoError(t, err)
	assert.Len(t, defs.Cards, 90)

	_, err = Load("/nonexistent/cards.csv", "")
	assert.Error(t, err)
}
