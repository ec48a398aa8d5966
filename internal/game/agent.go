package game

// Agent represents any entity (human, heuristic bot or learned model) that
// decides for a player. Agents receive an immutable snapshot and return one
// action; they never mutate game state.
type Agent interface {
	MakeDecision(state Snapshot) Action
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(state Snapshot) Action

// MakeDecision calls f(state)
func (f AgentFunc) MakeDecision(state Snapshot) Action {
	return f(state)
}

// Seat pairs a player name with the agent deciding for it
type Seat struct {
	Name  string
	Agent Agent
}
