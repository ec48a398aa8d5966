package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/config"
	"github.com/CodingPenguin1/Splendor/internal/features"
	"github.com/CodingPenguin1/Splendor/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGlobals(t *testing.T) *Globals {
	return &Globals{ConfigFile: filepath.Join(t.TempDir(), "missing.hcl")}
}

func TestPlaySeats(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := PlayCmd{Players: 3, Name: "ada"}
		seats, err := cmd.seats(config.DefaultConfig())
		require.NoError(t, err)
		require.Len(t, seats, 3)
		assert.Equal(t, config.SeatConfig{Name: "ada", Strategy: config.StrategyHuman}, seats[0])
		assert.Equal(t, "bot2", seats[2].Name)
		assert.Equal(t, "greedy", seats[2].Strategy)
	})

	t.Run("bad player count", func(t *testing.T) {
		cmd := PlayCmd{Players: 5}
		_, err := cmd.seats(config.DefaultConfig())
		assert.Error(t, err)
	})

	t.Run("configured seats need a human", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Seats = []config.SeatConfig{{Name: "a", Strategy: "greedy"}, {Name: "b", Strategy: "random"}}
		_, err := (&PlayCmd{Players: 2}).seats(cfg)
		assert.Error(t, err)

		cfg.Seats[0].Strategy = config.StrategyHuman
		seats, err := (&PlayCmd{Players: 2}).seats(cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.Seats, seats)
	})
}

func TestSimulateWritesReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	cmd := SimulateCmd{
		Matches:    3,
		Workers:    2,
		Seed:       7,
		Out:        out,
		Strategies: []string{"greedy", "Random"},
	}
	require.NoError(t, cmd.Run(testGlobals(t)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report simulator.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, int64(7), report.Seed)
	assert.Len(t, report.Matches, 3)
	assert.Equal(t, []simulator.Seat{
		{Name: "greedy1", Strategy: "greedy"},
		{Name: "random2", Strategy: "random"},
	}, report.Seats)
}

func TestSimulateRejectsHuman(t *testing.T) {
	cmd := SimulateCmd{Matches: 1, Strategies: []string{"human", "greedy"}}
	assert.Error(t, cmd.Run(testGlobals(t)))
}

func TestCardsTier(t *testing.T) {
	assert.NoError(t, (&CardsCmd{Tier: 2}).Run(testGlobals(t)))
	assert.Error(t, (&CardsCmd{Tier: 4}).Run(testGlobals(t)))
	assert.Error(t, (&CardsCmd{Tier: -1}).Run(testGlobals(t)))
}

func TestCardsWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tier1.csv")
	require.NoError(t, (&CardsCmd{Tier: 1, Out: out}).Run(testGlobals(t)))

	defs, err := card.Default()
	require.NoError(t, err)
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cards, err := card.ParseCards(f)
	require.NoError(t, err)
	assert.Len(t, cards, len(defs.Tier(1)))
}

func TestFeaturesDump(t *testing.T) {
	out := filepath.Join(t.TempDir(), "samples.jsonl")
	cmd := FeaturesCmd{Seed: 3, Strategies: []string{"greedy", "random"}, Out: out}
	require.NoError(t, cmd.Run(testGlobals(t)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)

	var first sample
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, 0, first.Player)
	assert.Len(t, first.Features, features.Size)
	assert.NotEmpty(t, first.Action)
}

func TestFeaturesRejectsUnknownStrategy(t *testing.T) {
	cmd := FeaturesCmd{Strategies: []string{"greedy", "oracle"}}
	assert.Error(t, cmd.Run(testGlobals(t)))
}
