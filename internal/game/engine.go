package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/deck"
	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/CodingPenguin1/Splendor/internal/randutil"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// GoldTokens is the number of gold tokens in every match
const GoldTokens = 5

// TokensPerColor returns the bank's starting count per color for a player
// count, or zero for an unsupported count.
func TokensPerColor(players int) int {
	switch players {
	case 2:
		return 4
	case 3:
		return 5
	case 4:
		return 7
	default:
		return 0
	}
}

// Game is the authoritative match state and turn engine
type Game struct {
	opts   Options
	logger *log.Logger
	clock  quartz.Clock
	seed   int64

	phase   Phase
	round   int
	turns   int
	bank    gem.Purse
	totals  gem.Purse // bank plus wallets, fixed at setup
	board   Board
	decks   [card.NumTiers]*deck.Deck[card.Card]
	nobles  *deck.Deck[card.Noble]
	players []*Player
	agents  []Agent
	current int

	previous *Snapshot
}

// New sets up a match: bank by player count, one shuffled deck per tier,
// four cards dealt per tier and playerCount+1 nobles. The returned game is
// in progress.
func New(seats []Seat, defs card.Definitions, opts Options) (*Game, error) {
	if len(seats) < 2 || len(seats) > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, len(seats))
	}
	if err := defs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}

	opts = opts.withDefaults()
	g := &Game{
		opts:   opts,
		logger: opts.Logger.WithPrefix("game"),
		clock:  opts.Clock,
		seed:   randutil.Seed(opts.Seed),
		phase:  PhaseSetup,
	}

	for _, seat := range seats {
		g.players = append(g.players, NewPlayer(seat.Name))
		g.agents = append(g.agents, seat.Agent)
	}

	perColor := TokensPerColor(len(seats))
	for _, c := range gem.Colors {
		g.bank.Colors[c] = perColor
	}
	g.bank.Gold = GoldTokens
	g.totals = g.bank

	for i, tier := range card.Tiers {
		d, err := deck.NewTierDeck(tier, defs.Tier(tier), randutil.New(randutil.Derive(g.seed, i)))
		if err != nil {
			return nil, err
		}
		g.decks[i] = d
		g.board.Tiers[i] = d.DrawN(CardsPerTier)
	}
	g.nobles = deck.NewNobleDeck(defs.Nobles, randutil.New(randutil.Derive(g.seed, card.NumTiers)))
	g.board.Nobles = g.nobles.DrawN(len(seats) + 1)

	g.phase = PhaseInProgress
	g.logger.Debug("Match set up",
		"players", len(seats),
		"seed", g.seed,
		"tokensPerColor", perColor,
		"nobles", len(g.board.Nobles))
	return g, nil
}

// Seed returns the seed the decks were shuffled with
func (g *Game) Seed() int64 {
	return g.seed
}

// Phase returns the lifecycle state
func (g *Game) Phase() Phase {
	return g.phase
}

// Round returns the number of completed rounds
func (g *Game) Round() int {
	return g.round
}

// CurrentPlayer returns the index of the player to act
func (g *Game) CurrentPlayer() int {
	return g.current
}

// Players returns the number of seats
func (g *Game) Players() int {
	return len(g.players)
}

// Snapshot returns a deep copy of the current state
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Round:       g.round,
		Phase:       g.phase,
		Bank:        g.bank,
		NoblesLeft:  g.nobles.Remaining(),
		Current:     g.current,
		TargetScore: g.opts.TargetScore,
	}
	board := g.board.clone()
	for i, tier := range card.Tiers {
		s.Tiers[i] = TierView{
			Tier:          tier,
			Cards:         board.Tiers[i],
			DeckRemaining: g.decks[i].Remaining(),
		}
	}
	s.Nobles = board.Nobles
	s.Players = make([]PlayerState, len(g.players))
	for i, p := range g.players {
		s.Players[i] = p.State(i)
	}
	return s
}

// Previous returns the snapshot taken before the last completed turn
func (g *Game) Previous() (Snapshot, bool) {
	if g.previous == nil {
		return Snapshot{}, false
	}
	return g.previous.Clone(), true
}

// Apply validates and applies a for the current player. On error nothing
// changes. Apply does not advance the turn; see Advance and Step.
func (g *Game) Apply(a Action) error {
	if g.phase != PhaseInProgress {
		return ErrGameFinished
	}
	_, err := g.apply(a)
	return err
}

// Advance moves to the next player. When play wraps back to the first
// player the round counter increments and the end conditions are checked.
func (g *Game) Advance() {
	g.turns++
	g.current = (g.current + 1) % len(g.players)
	if g.current != 0 {
		return
	}
	g.round++

	switch {
	case g.opts.TargetScore > 0 && g.leaderScore() >= g.opts.TargetScore:
		g.phase = PhaseFinished
		g.logger.Debug("Target score reached", "round", g.round, "score", g.leaderScore())
	case g.opts.MaxRounds > 0 && g.round >= g.opts.MaxRounds:
		g.phase = PhaseFinished
		g.logger.Debug("Round limit reached", "round", g.round)
	}
}

// TurnRecord describes one completed turn
type TurnRecord struct {
	Round     int     `json:"round"`
	Player    int     `json:"player"`
	Name      string  `json:"name"`
	Action    Action  `json:"action"`
	Outcome   Outcome `json:"outcome"`
	Attempts  int     `json:"attempts"`
	Forfeited bool    `json:"forfeited"`
	TimedOut  bool    `json:"timed_out"`
	// Passed marks a turn with no legal action; the agent was not asked
	Passed    bool    `json:"passed"`
	Err       error   `json:"-"` // last rule violation, if any
}

// Step runs one turn cycle: snapshot, decision, validation and application,
// then advance. Under PolicyHalt a rule violation is returned and the turn
// does not advance; the other policies forfeit the turn instead. A player
// with no legal action passes: the turn is forfeited under every policy.
func (g *Game) Step(ctx context.Context) (TurnRecord, error) {
	if g.phase != PhaseInProgress {
		return TurnRecord{}, ErrGameFinished
	}
	if err := ctx.Err(); err != nil {
		return TurnRecord{}, err
	}

	snap := g.Snapshot()
	p := g.players[g.current]
	rec := TurnRecord{Round: g.round, Player: g.current, Name: p.Name}

	attempts := 1
	if g.opts.Policy == PolicyRetry {
		attempts += g.opts.MaxRetries
	}

	applied := false
	if len(ValidActions(snap)) == 0 {
		// Empty bank, nothing affordable and three reservations held
		g.logger.Warn("No legal action, passing turn", "player", p.Name, "round", g.round)
		rec.Passed = true
		attempts = 0
	}
	for !applied && rec.Attempts < attempts {
		rec.Attempts++
		action, timedOut, err := g.decide(ctx, snap)
		if err != nil {
			return rec, err
		}
		if timedOut {
			g.logger.Warn("Decision timeout, forfeiting turn", "player", p.Name, "timeout", g.opts.DecisionTimeout)
			rec.TimedOut = true
			break
		}

		rec.Action = action
		outcome, err := g.apply(action)
		if err != nil {
			rec.Err = err
			g.logger.Warn("Rejected action", "player", p.Name, "action", action, "error", err, "attempt", rec.Attempts)
			if g.opts.Policy == PolicyHalt {
				return rec, err
			}
			if g.opts.Policy == PolicyForfeit {
				break
			}
			continue
		}
		rec.Outcome = outcome
		rec.Err = nil
		applied = true
	}
	rec.Forfeited = !applied

	if err := g.ValidateConservation(); err != nil {
		g.logger.Error("Token conservation violation detected!", "error", err)
		return rec, err
	}

	g.logger.Debug("Turn complete",
		"round", rec.Round,
		"player", p.Name,
		"action", rec.Action,
		"forfeited", rec.Forfeited,
		"score", p.Score(),
		"reasoning", rec.Action.Reasoning)

	g.previous = &snap
	g.Advance()
	return rec, nil
}

// decide obtains an action from the current agent on a private copy of snap.
// The timeout timer is armed before the agent starts.
func (g *Game) decide(ctx context.Context, snap Snapshot) (Action, bool, error) {
	agent := g.agents[g.current]
	if agent == nil {
		return Action{}, false, fmt.Errorf("seat %d has no agent", g.current)
	}
	if g.opts.DecisionTimeout <= 0 {
		return agent.MakeDecision(snap.Clone()), false, nil
	}

	timeoutFired := make(chan struct{})
	timer := g.clock.AfterFunc(g.opts.DecisionTimeout, func() {
		close(timeoutFired)
	})
	defer timer.Stop()

	decided := make(chan Action, 1)
	view := snap.Clone()
	go func() {
		decided <- agent.MakeDecision(view)
	}()

	select {
	case a := <-decided:
		return a, false, nil
	case <-timeoutFired:
		return Action{}, true, nil
	case <-ctx.Done():
		return Action{}, false, ctx.Err()
	}
}

// Result summarises a match
type Result struct {
	Rounds  int      `json:"rounds"`
	Turns   int      `json:"turns"`
	Seed    int64    `json:"seed"`
	Names   []string `json:"names"`
	Scores  []int    `json:"scores"`
	Cards   []int    `json:"cards"`
	Winners []int    `json:"winners"`
	Reached bool     `json:"reached"` // someone reached the target score
}

// Run plays turns until the match finishes, a rule violation halts it, or
// ctx is cancelled.
func (g *Game) Run(ctx context.Context) (*Result, error) {
	for g.phase == PhaseInProgress {
		if _, err := g.Step(ctx); err != nil {
			return g.Result(), err
		}
	}
	return g.Result(), nil
}

// Result returns the current standings
func (g *Game) Result() *Result {
	r := &Result{
		Rounds:  g.round,
		Turns:   g.turns,
		Seed:    g.seed,
		Winners: g.Winners(),
	}
	for _, p := range g.players {
		r.Names = append(r.Names, p.Name)
		r.Scores = append(r.Scores, p.Score())
		r.Cards = append(r.Cards, len(p.Purchased))
	}
	r.Reached = g.opts.TargetScore > 0 && g.leaderScore() >= g.opts.TargetScore
	return r
}

// Winners returns the indices of the leading players: highest score, then
// fewest purchased cards. More than one index means a shared win.
func (g *Game) Winners() []int {
	best := g.leaderScore()
	fewest := -1
	for _, p := range g.players {
		if p.Score() == best && (fewest < 0 || len(p.Purchased) < fewest) {
			fewest = len(p.Purchased)
		}
	}
	var winners []int
	for i, p := range g.players {
		if p.Score() == best && len(p.Purchased) == fewest {
			winners = append(winners, i)
		}
	}
	return winners
}

func (g *Game) leaderScore() int {
	best := 0
	for _, p := range g.players {
		best = max(best, p.Score())
	}
	return best
}

// ValidateConservation checks that bank plus wallets still equals the setup
// totals for every color and for gold, and that no count is negative.
func (g *Game) ValidateConservation() error {
	var errs []error
	sum := g.bank
	for _, p := range g.players {
		for _, c := range gem.Colors {
			sum.Colors[c] += p.Tokens.Colors[c]
			if p.Tokens.Colors[c] < 0 {
				errs = append(errs, fmt.Errorf("%s holds %d %s", p.Name, p.Tokens.Colors[c], c))
			}
		}
		sum.Gold += p.Tokens.Gold
		if p.Tokens.Gold < 0 {
			errs = append(errs, fmt.Errorf("%s holds %d gold", p.Name, p.Tokens.Gold))
		}
	}
	if g.bank.Gold < 0 {
		errs = append(errs, fmt.Errorf("bank holds %d gold", g.bank.Gold))
	}
	for _, c := range gem.Colors {
		if sum.Colors[c] != g.totals.Colors[c] {
			errs = append(errs, fmt.Errorf("%s total %d, expected %d", c, sum.Colors[c], g.totals.Colors[c]))
		}
		if g.bank.Colors[c] < 0 {
			errs = append(errs, fmt.Errorf("bank holds %d %s", g.bank.Colors[c], c))
		}
	}
	if sum.Gold != g.totals.Gold {
		errs = append(errs, fmt.Errorf("gold total %d, expected %d", sum.Gold, g.totals.Gold))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConservation, errors.Join(errs...))
	}
	return nil
}
