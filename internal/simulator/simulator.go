// Package simulator plays many bot-only matches in parallel and aggregates
// the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"time"

	"github.com/CodingPenguin1/Splendor/internal/bot"
	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/gameid"
	"github.com/CodingPenguin1/Splendor/internal/randutil"
	"github.com/CodingPenguin1/Splendor/internal/statistics"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

const seatStream = card.NumTiers + 1

// Seat names a seat and the bot strategy playing it
type Seat struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
}

// Config holds configuration for running simulations
type Config struct {
	Matches     int
	Workers     int // 0 uses GOMAXPROCS
	Seed        int64
	Timeout     time.Duration // per match, 0 for none
	Seats       []Seat
	Options     game.Options
	Definitions card.Definitions
	Logger      *log.Logger
}

// MatchReport is the outcome of one simulated match. Scores and winners
// are indexed by configured seat, not by the rotated play order.
type MatchReport struct {
	ID       string `json:"id"`
	Index    int    `json:"index"`
	Seed     int64  `json:"seed"`
	First    int    `json:"first"` // configured seat that moved first
	Rounds   int    `json:"rounds"`
	Turns    int    `json:"turns"`
	Scores   []int  `json:"scores"`
	Cards    []int  `json:"cards"`
	Winners  []int  `json:"winners"`
	Reached  bool   `json:"reached"`
	Forfeits []int  `json:"forfeits"`
	Error    string `json:"error,omitempty"`
}

// Report is the full simulation output
type Report struct {
	Seed    int64         `json:"seed"`
	Seats   []Seat        `json:"seats"`
	Matches []MatchReport `json:"matches"`
}

// Simulator runs Splendor match simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	config.Seed = randutil.Seed(config.Seed)
	return &Simulator{config: config, logger: config.Logger.WithPrefix("simulator")}
}

// Seed returns the base seed every match seed derives from
func (s *Simulator) Seed() int64 {
	return s.config.Seed
}

// Run plays every match and returns the per-match report and aggregate
// statistics. Matches are independent: each owns its game and bot RNGs,
// so results depend only on the base seed, never on the worker count.
func (s *Simulator) Run(ctx context.Context) (*Report, *statistics.Statistics, error) {
	n := len(s.config.Seats)
	if n < 2 || n > 4 {
		return nil, nil, fmt.Errorf("%w: got %d seats", game.ErrPlayerCount, n)
	}
	for _, seat := range s.config.Seats {
		if !bot.IsStrategy(seat.Strategy) {
			return nil, nil, fmt.Errorf("seat %s: unknown strategy %q", seat.Name, seat.Strategy)
		}
	}
	if s.config.Matches < 1 {
		return nil, nil, fmt.Errorf("matches must be positive, got %d", s.config.Matches)
	}

	s.logger.Info("Starting simulation",
		"matches", s.config.Matches,
		"workers", s.config.Workers,
		"seats", n,
		"seed", s.config.Seed)
	start := time.Now()

	reports := make([]MatchReport, s.config.Matches)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range reports {
		g.Go(func() error {
			report, err := s.playMatch(ctx, i)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	names := make([]string, n)
	for i, seat := range s.config.Seats {
		names[i] = seat.Name
	}
	stats := statistics.New(names)
	for _, r := range reports {
		err := stats.Add(statistics.MatchResult{
			Seed:     r.Seed,
			Rounds:   r.Rounds,
			Scores:   r.Scores,
			Winners:  r.Winners,
			Reached:  r.Reached,
			Forfeits: r.Forfeits,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("match %d: %w", r.Index, err)
		}
	}
	if err := stats.Validate(); err != nil {
		return nil, nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "matches", stats.Matches, "elapsed", time.Since(start).Round(time.Millisecond))
	return &Report{Seed: s.config.Seed, Seats: s.config.Seats, Matches: reports}, stats, nil
}

// playMatch plays match i. The first player rotates with i so no seat
// keeps the opening move.
func (s *Simulator) playMatch(parent context.Context, i int) (MatchReport, error) {
	ctx := parent
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	n := len(s.config.Seats)
	matchSeed := randutil.Derive(s.config.Seed, i)
	first := i % n

	// order[k] is the configured seat playing k-th
	order := make([]int, n)
	seats := make([]game.Seat, n)
	for k := range order {
		idx := (first + k) % n
		order[k] = idx
		seat := s.config.Seats[idx]
		// streams 0-3 shuffle the decks inside game.New
		rng := randutil.New(randutil.Derive(matchSeed, seatStream+idx))
		agent, err := bot.New(seat.Strategy, rng, s.config.Logger)
		if err != nil {
			return MatchReport{}, err
		}
		seats[k] = game.Seat{Name: seat.Name, Agent: agent}
	}

	opts := s.config.Options
	opts.Seed = matchSeed
	opts.Logger = s.config.Logger
	g, err := game.New(seats, s.config.Definitions, opts)
	if err != nil {
		return MatchReport{}, err
	}

	report := MatchReport{
		ID:       gameid.Generate(),
		Index:    i,
		Seed:     matchSeed,
		First:    first,
		Forfeits: make([]int, n),
	}

	for g.Phase() == game.PhaseInProgress {
		rec, err := g.Step(ctx)
		var ruleErr *game.RuleError
		if errors.As(err, &ruleErr) {
			// A halting violation ends this match but not the batch
			report.Error = err.Error()
			s.logger.Warn("Match halted", "id", report.ID, "error", err)
			break
		}
		if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
			// Only this match ran out of time
			report.Error = fmt.Sprintf("match timed out after %s", s.config.Timeout)
			s.logger.Warn("Match timed out", "id", report.ID, "timeout", s.config.Timeout)
			break
		}
		if err != nil {
			return MatchReport{}, err
		}
		if rec.Forfeited {
			report.Forfeits[order[rec.Player]]++
		}
	}

	res := g.Result()
	report.Rounds = res.Rounds
	report.Turns = res.Turns
	report.Reached = res.Reached
	report.Scores = make([]int, n)
	report.Cards = make([]int, n)
	for k, idx := range order {
		report.Scores[idx] = res.Scores[k]
		report.Cards[idx] = res.Cards[k]
	}
	for _, w := range res.Winners {
		report.Winners = append(report.Winners, order[w])
	}
	slices.Sort(report.Winners)

	s.logger.Debug("Match complete",
		"id", report.ID,
		"seed", matchSeed,
		"rounds", report.Rounds,
		"scores", report.Scores,
		"winners", report.Winners)
	return report, nil
}

// PrintSummary prints a summary table of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, seats []Seat) {
	low, high := stats.Rounds.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS over %d matches ===\n", stats.Matches)
	fmt.Fprintf(w, "Target reached: %d (%.1f%%)\n", stats.Reached, pct(stats.Reached, stats.Matches))
	fmt.Fprintf(w, "Rounds: mean %.2f, median %.1f, 95%% CI [%.2f, %.2f]\n",
		stats.Rounds.Mean(), stats.Rounds.Median(), low, high)

	fmt.Fprintf(w, "\n%-12s %-8s %8s %8s %10s %8s %9s\n", "SEAT", "STRATEGY", "WINS", "WIN%", "SOLE WINS", "SCORE", "FORFEITS")
	for i, seat := range stats.Seats {
		strategy := ""
		if i < len(seats) {
			strategy = seats[i].Strategy
		}
		fmt.Fprintf(w, "%-12s %-8s %8.1f %7.1f%% %10d %8.2f %9d\n",
			seat.Name, strategy, seat.Wins, seat.WinRate()*100, seat.Outright, seat.Score.Mean(), seat.Forfeits)
	}
	if leader := stats.Leader(); leader >= 0 {
		fmt.Fprintf(w, "\nLeader: %s\n", stats.Seats[leader].Name)
	}
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
