package bot

import (
	"sort"

	"bigtwo/internal/bot/internal"
	"bigtwo/internal/domain"
)

// Greedy is the built-in single strategy: always shed the weakest legal
// hand, and pass when nothing beats the incumbent. Bombs are held back
// until no ordinary play exists.
type Greedy struct{}

func (Greedy) CalculateMove(snap domain.Snapshot, hand []domain.Card) (Move, error) {
	if snap.Turn < 0 || len(hand) == 0 {
		return Move{Pass: true}, nil
	}

	moves := internal.ValidMoves(snap, hand)
	if len(moves) == 0 {
		return Move{Pass: true}, nil
	}

	sort.Slice(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.Bomb != b.Bomb {
			return !a.Bomb
		}
		if a.Size() != b.Size() {
			return a.Size() < b.Size()
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Key < b.Key
	})

	return Move{Cards: moves[0].Cards}, nil
}
