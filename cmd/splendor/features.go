package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CodingPenguin1/Splendor/internal/bot"
	"github.com/CodingPenguin1/Splendor/internal/features"
	"github.com/CodingPenguin1/Splendor/internal/fileutil"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/randutil"
)

type FeaturesCmd struct {
	Seed       int64    `help:"Deck seed (0 for random)"`
	Strategies []string `default:"greedy,greedy" help:"Bot strategy per seat"`
	Out        string   `short:"o" type:"path" help:"Write JSON lines to this file instead of stdout"`
}

// sample is one decision point: the encoded state and the action taken from it
type sample struct {
	Round    int    `json:"round"`
	Player   int    `json:"player"`
	Action   string `json:"action"`
	Passed   bool   `json:"passed,omitempty"`
	Features []int  `json:"features"`
}

func (c *FeaturesCmd) Run(globals *Globals) error {
	logger := globals.logger(os.Stderr)

	cfg, err := globals.config()
	if err != nil {
		return err
	}
	defs, err := definitions(cfg)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Seed = randutil.Seed(c.Seed)
	opts.Logger = logger

	seats := make([]game.Seat, len(c.Strategies))
	for i, strategy := range c.Strategies {
		strategy = strings.ToLower(strings.TrimSpace(strategy))
		agent, err := bot.New(strategy, randutil.New(randutil.Derive(opts.Seed, 100+i)), logger)
		if err != nil {
			return err
		}
		seats[i] = game.Seat{Name: fmt.Sprintf("%s%d", strategy, i+1), Agent: agent}
	}
	g, err := game.New(seats, defs, opts)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	write := func(w io.Writer) error {
		return dumpFeatures(ctx, g, w)
	}
	if c.Out == "" {
		return write(os.Stdout)
	}
	if err := fileutil.WriteAtomic(c.Out, 0o644, write); err != nil {
		return err
	}
	logger.Info("Wrote feature samples", "path", c.Out, "seed", g.Seed(), "turns", g.Result().Turns)
	return nil
}

// dumpFeatures plays g to the end, writing one sample per turn
func dumpFeatures(ctx context.Context, g *game.Game, w io.Writer) error {
	enc := json.NewEncoder(w)
	for g.Phase() == game.PhaseInProgress {
		vec := features.Encode(g.Snapshot()).Flat()
		rec, err := g.Step(ctx)
		if err != nil {
			return err
		}
		s := sample{
			Round:    rec.Round,
			Player:   rec.Player,
			Passed:   rec.Passed,
			Features: vec,
		}
		if !rec.Forfeited {
			s.Action = rec.Action.String()
		}
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding sample: %w", err)
		}
	}
	return nil
}
