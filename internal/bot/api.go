package bot

import "bigtwo/internal/domain"

// Move is the decision a strategy submits on its turn.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is the interface a bot strategy implements: given a read-only
// game snapshot and the seat's current hand, decide a move. The engine
// validates the move again on submission; a Brain returning an illegal
// move is a bug, not a crash.
type Brain interface {
	CalculateMove(snap domain.Snapshot, hand []domain.Card) (Move, error)
}
