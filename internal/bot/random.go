package bot

import (
	"math/rand/v2"

	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/charmbracelet/log"
)

// RandomBot makes uniform random legal actions
type RandomBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandomBot creates a new RandomBot instance
func NewRandomBot(rng *rand.Rand, logger *log.Logger) *RandomBot {
	return &RandomBot{rng: rng, logger: logger}
}

func (r *RandomBot) MakeDecision(state game.Snapshot) game.Action {
	actions := game.ValidActions(state)
	if len(actions) == 0 {
		return game.Action{Reasoning: "random-bot no valid actions"}
	}
	return actions[r.rng.IntN(len(actions))].Because("random-bot random action")
}
