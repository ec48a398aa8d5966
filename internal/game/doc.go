// Package game implements the Splendor rules engine and turn state machine.
//
// The main type is Game, which owns the token bank, the visible board, the
// three tier decks, the noble pool and the ordered players. Game is the only
// writer of that state: agents receive deep-copied Snapshots and return a
// single Action per turn.
//
// # Basic Usage
//
//	defs, _ := card.Default()
//	g, err := game.New([]game.Seat{
//	    {Name: "alice", Agent: bot.NewGreedyBot(rng, logger)},
//	    {Name: "bob", Agent: bot.NewRandomBot(rng, logger)},
//	}, defs, game.DefaultOptions())
//	result, err := g.Run(ctx)
//
// Apply can be used directly to drive the rules without agents:
//
//	err := g.Apply(game.Take(gem.Black, gem.Blue, gem.Green))
//	if errors.Is(err, game.ErrInsufficientBankTokens) { ... }
//	g.Advance()
//
// # Rule Options
//
// Noble awards, the gold token on reservation and the score target are
// switched by Options. The turn policy decides what happens when an agent
// returns an illegal action: halt the match (the default), re-request a
// bounded number of times, or forfeit the turn. A decision timeout can be
// set together with a quartz.Clock so tests can drive it with a mock clock.
package game
