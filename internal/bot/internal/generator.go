package internal

import "bigtwo/internal/domain"

// handSizes are the selection sizes worth enumerating: the legal hand
// sizes plus four for the quad bomb.
var handSizes = [...]int{1, 2, 3, 4, 5}

// ValidMoves enumerates every legal play for hand under the trick context
// in snap, by running each candidate selection through the engine's own
// classifier and comparator. When snap requires the opening Three of
// Clubs only hands containing it are returned.
func ValidMoves(snap domain.Snapshot, hand []domain.Card) []domain.Hand {
	var out []domain.Hand
	for _, size := range handSizes {
		if size > len(hand) {
			break
		}
		forEachSubset(hand, size, func(cards []domain.Card) {
			h, err := domain.Classify(cards)
			if err != nil {
				return
			}
			if snap.OpeningThree && !h.Contains(domain.ThreeOfClubs) {
				return
			}
			if domain.CheckPlay(h, snap.Incumbent) != nil {
				return
			}
			out = append(out, h)
		})
	}
	return out
}

// forEachSubset visits every size-k subset of cards. The slice passed to
// fn is reused between calls; fn must not retain it.
func forEachSubset(cards []domain.Card, k int, fn func([]domain.Card)) {
	subset := make([]domain.Card, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			fn(subset)
			return
		}
		for i := start; i <= len(cards)-(k-depth); i++ {
			subset[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}
