package game

import "github.com/CodingPenguin1/Splendor/internal/gem"

// ValidActions lists every legal action for the current player in s, in a
// stable order: three-color takes, two-color takes, buys, then reservations.
// It reads only the snapshot, so it is safe to call from concurrent searches.
func ValidActions(s Snapshot) []Action {
	if s.Phase != PhaseInProgress || len(s.Players) == 0 {
		return nil
	}
	me := s.CurrentPlayer()
	var actions []Action

	var available []gem.Color
	for _, c := range gem.Colors {
		if s.Bank.Colors[c] >= 1 {
			available = append(available, c)
		}
	}
	for i := 0; i < len(available); i++ {
		for j := i + 1; j < len(available); j++ {
			for k := j + 1; k < len(available); k++ {
				actions = append(actions, Take(available[i], available[j], available[k]))
			}
		}
	}
	for _, c := range gem.Colors {
		if s.Bank.Colors[c] >= 4 {
			actions = append(actions, Take(c, c))
		}
	}

	for _, c := range s.Cards() {
		if me.CanAfford(c) {
			actions = append(actions, Buy(c.ID))
		}
	}
	if len(me.Reserved) < MaxReserved {
		for _, c := range s.Cards() {
			actions = append(actions, Reserve(c.ID))
		}
	}
	return actions
}
