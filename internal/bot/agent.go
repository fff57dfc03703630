package bot

import "bigtwo/internal/domain"

// Agent is an autonomous seat: a named strategy bound to a seat index.
type Agent struct {
	Seat     int
	Name     string
	Strategy Brain
}

// NewAgent binds the default strategy to a seat.
func NewAgent(seat int, name string) *Agent {
	return &Agent{Seat: seat, Name: name, Strategy: Greedy{}}
}

// Play asks the agent's strategy for a move from the current snapshot.
func (a *Agent) Play(snap domain.Snapshot, hand []domain.Card) (Move, error) {
	return a.Strategy.CalculateMove(snap, hand)
}
