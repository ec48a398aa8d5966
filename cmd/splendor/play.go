package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CodingPenguin1/Splendor/internal/bot"
	"github.com/CodingPenguin1/Splendor/internal/config"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/randutil"
	"github.com/CodingPenguin1/Splendor/internal/render"
	"github.com/CodingPenguin1/Splendor/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

type PlayCmd struct {
	Players int    `short:"p" default:"2" help:"Number of players (2-4) when no seats are configured"`
	Name    string `default:"you" help:"Your display name when no seats are configured"`
	Seed    int64  `help:"Deck seed (0 for random)"`
	NoColor bool   `help:"Disable colors"`
	LogFile string `type:"path" help:"Write logs to this file while the board is shown"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	// The terminal belongs to the board while the match runs
	logOut := io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := globals.logger(logOut)

	cfg, err := globals.config()
	if err != nil {
		return err
	}
	seatConfigs, err := c.seats(cfg)
	if err != nil {
		return err
	}
	cfg.Seats = seatConfigs
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
	opts.Seed = randutil.Seed(c.Seed)
	opts.Logger = logger

	renderer := render.New(os.Stdout, c.NoColor)
	human := tui.NewHumanAgent(renderer, logger, tea.WithAltScreen())

	humanSeat := -1
	seats := make([]game.Seat, len(seatConfigs))
	for i, sc := range seatConfigs {
		if sc.Strategy == config.StrategyHuman {
			humanSeat = i
			seats[i] = game.Seat{Name: sc.Name, Agent: human}
			continue
		}
		agent, err := bot.New(sc.Strategy, randutil.New(randutil.Derive(opts.Seed, 100+i)), logger)
		if err != nil {
			return err
		}
		seats[i] = game.Seat{Name: sc.Name, Agent: agent}
	}

	g, err := game.New(seats, defs, opts)
	if err != nil {
		return err
	}
	logger.Info("Starting match", "seed", g.Seed(), "players", len(seats))

	ctx, cancel := signalContext(logger)
	defer cancel()

	human.Start()
	playErr := c.play(ctx, g, human, humanSeat)
	if err := human.Close(); err != nil {
		return err
	}

	if human.Quit() && g.Phase() != game.PhaseFinished {
		fmt.Println("Match abandoned.")
		return nil
	}
	if playErr != nil {
		return playErr
	}

	fmt.Print(renderer.Snapshot(g.Snapshot()))
	printResult(g.Result())
	return nil
}

// play steps the match, relaying every bot move to the human's event log
func (c *PlayCmd) play(ctx context.Context, g *game.Game, human *tui.HumanAgent, humanSeat int) error {
	for g.Phase() == game.PhaseInProgress {
		rec, err := g.Step(ctx)
		if human.Quit() {
			// The empty action left behind is rejected or forfeited
			return nil
		}
		if err != nil {
			return err
		}
		if rec.Player == humanSeat {
			if rec.Passed {
				human.Notify("You have no legal move; turn passed")
			}
			continue
		}
		switch {
		case rec.Passed:
			human.Notify("%s has no legal move and passes", rec.Name)
		case rec.TimedOut:
			human.Notify("%s ran out of time", rec.Name)
		case rec.Forfeited:
			human.Notify("%s forfeited the turn", rec.Name)
		default:
			human.Notify("%s: %s", rec.Name, describe(rec))
		}
	}
	return nil
}

// seats returns the configured seats, or the human plus greedy bots
func (c *PlayCmd) seats(cfg *config.Config) ([]config.SeatConfig, error) {
	if len(cfg.Seats) > 0 {
		if !cfg.HasHuman() {
			return nil, fmt.Errorf("no human seat configured; use simulate for bot-only matches")
		}
		return cfg.Seats, nil
	}
	if c.Players < 2 || c.Players > 4 {
		return nil, fmt.Errorf("%w: got %d", game.ErrPlayerCount, c.Players)
	}
	seats := []config.SeatConfig{{Name: c.Name, Strategy: config.StrategyHuman}}
	for i := 1; i < c.Players; i++ {
		seats = append(seats, config.SeatConfig{
			Name:     fmt.Sprintf("bot%d", i),
			Strategy: bot.StrategyGreedy,
		})
	}
	return seats, nil
}

func describe(rec game.TurnRecord) string {
	out := rec.Action.String()
	if n := rec.Outcome.Noble; n != nil {
		out += fmt.Sprintf(" and was visited by noble %s", n)
	}
	return out
}

func printResult(r *game.Result) {
	fmt.Printf("\nFinished after %d rounds\n", r.Rounds)
	for i, name := range r.Names {
		marker := " "
		for _, w := range r.Winners {
			if w == i {
				marker = "*"
			}
		}
		fmt.Printf("%s %-12s %2d points  %2d cards\n", marker, name, r.Scores[i], r.Cards[i])
	}
}

