package tui

import (
	"testing"

	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"take black blue green", Command{Action: game.Take(gem.Black, gem.Blue, gem.Green)}},
		{"  TAKE  Red red ", Command{Action: game.Take(gem.Red, gem.Red)}},
		{"t k u w", Command{Action: game.Take(gem.Black, gem.Blue, gem.White)}},
		{"buy 12", Command{Action: game.Buy(12)}},
		{"b #7", Command{Action: game.Buy(7)}},
		{"reserve 40", Command{Action: game.Reserve(40)}},
		{"res 3", Command{Action: game.Reserve(3)}},
		{"help", Command{Kind: CommandHelp}},
		{"?", Command{Kind: CommandHelp}},
		{"quit", Command{Kind: CommandQuit}},
		{"exit", Command{Kind: CommandQuit}},
		{"board", Command{Kind: CommandBoard}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{"", "empty command"},
		{"fold", "unknown command"},
		{"take", "needs colors"},
		{"take gold red blue", "gold is not a development color"},
		{"take purple", "unknown color"},
		{"buy", "exactly one card id"},
		{"buy 1 2", "exactly one card id"},
		{"buy abc", "invalid card id"},
		{"reserve -4", "invalid card id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseCommand(tt.input)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseCommandAllowsIllegalTakes(t *testing.T) {
	// Rule checks belong to the engine; the parser only reads the words
	cmd, err := ParseCommand("take red")
	require.NoError(t, err)
	assert.Equal(t, []gem.Color{gem.Red}, cmd.Action.Colors)
}
