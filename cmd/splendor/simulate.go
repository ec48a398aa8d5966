package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/CodingPenguin1/Splendor/internal/config"
	"github.com/CodingPenguin1/Splendor/internal/fileutil"
	"github.com/CodingPenguin1/Splendor/internal/simulator"
)

type SimulateCmd struct {
	Matches    int           `short:"n" help:"Number of matches (overrides config)"`
	Workers    int           `short:"w" help:"Parallel workers, 0 uses every CPU (overrides config)"`
	Seed       int64         `help:"Base RNG seed, 0 for random (overrides config)"`
	Out        string        `short:"o" type:"path" help:"Write a JSON report to this file"`
	Strategies []string      `default:"greedy,random" help:"Seat strategies when no seats are configured"`
	Timeout    time.Duration `default:"1m" help:"Abort a single match after this long"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	logger := globals.logger(os.Stderr)

	cfg, err := globals.config()
	if err != nil {
		return err
	}
	if c.Matches != 0 {
		cfg.Simulate.Matches = c.Matches
	}
	if c.Workers != 0 {
		cfg.Simulate.Workers = c.Workers
	}
	if c.Seed != 0 {
		cfg.Simulate.Seed = c.Seed
	}
	if c.Out != "" {
		cfg.Simulate.Out = c.Out
	}
	if len(cfg.Seats) == 0 {
		for i, strategy := range c.Strategies {
			strategy = strings.ToLower(strings.TrimSpace(strategy))
			cfg.Seats = append(cfg.Seats, config.SeatConfig{
				Name:     fmt.Sprintf("%s%d", strategy, i+1),
				Strategy: strategy,
			})
		}
	}
	if cfg.HasHuman() {
		return fmt.Errorf("simulate runs bots only; remove the human seat")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	defs, err := definitions(cfg)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	seats := make([]simulator.Seat, len(cfg.Seats))
	for i, sc := range cfg.Seats {
		seats[i] = simulator.Seat{Name: sc.Name, Strategy: sc.Strategy}
	}

	sim := simulator.New(simulator.Config{
		Matches:     cfg.Simulate.Matches,
		Workers:     cfg.Simulate.Workers,
		Seed:        cfg.Simulate.Seed,
		Timeout:     c.Timeout,
		Seats:       seats,
		Options:     opts,
		Definitions: defs,
		Logger:      logger,
	})

	ctx, cancel := signalContext(logger)
	defer cancel()

	report, stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	simulator.PrintSummary(os.Stdout, stats, seats)
	fmt.Printf("\nSeed: %d\n", sim.Seed())

	if out := cfg.Simulate.Out; out != "" {
		if err := fileutil.WriteJSONAtomic(out, report, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Wrote report", "path", out, "matches", len(report.Matches))
	}
	return nil
}
