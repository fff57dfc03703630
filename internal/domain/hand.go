package domain

import "strings"

// Category identifies the legal hand families.
type Category int32

const (
	Invalid Category = iota
	Lone
	Pair
	Trip
	Quad
	Straight
	Flush
	FullHouse
	FourPlusKicker
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case Lone:
		return "lone"
	case Pair:
		return "pair"
	case Trip:
		return "trip"
	case Quad:
		return "quad"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourPlusKicker:
		return "four plus kicker"
	case StraightFlush:
		return "straight flush"
	}
	return "invalid"
}

// Hand is a classified play: the cards sorted ascending by power, the
// detected category, and the key used for same-category comparison.
// Bomb marks hands exempt from cardinality matching against non-lone
// incumbents: a quad played as four cards, a four plus kicker, or a
// straight flush.
type Hand struct {
	Category Category
	Cards    []Card
	Key      int32
	Bomb     bool
}

// Size returns the number of cards in the hand.
func (h Hand) Size() int { return len(h.Cards) }

// Contains reports whether the hand includes the given card.
func (h Hand) Contains(c Card) bool {
	for _, hc := range h.Cards {
		if hc == c {
			return true
		}
	}
	return false
}

func (h Hand) String() string {
	out := make([]string, 0, len(h.Cards))
	for _, c := range h.Cards {
		out = append(out, c.String())
	}
	return strings.Join(out, " ")
}

// Classify determines the category and ranking key of a card selection.
// Cards are assumed distinct; ownership is checked by the trick engine.
// Classification is total and deterministic: the same set of cards always
// yields the same hand.
func Classify(cards []Card) (Hand, error) {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	SortCards(sorted)

	switch len(sorted) {
	case 1:
		return Hand{Category: Lone, Cards: sorted, Key: sorted[0].Power()}, nil
	case 2:
		if sorted[0].Rank != sorted[1].Rank {
			return Hand{}, ErrMismatchedRanks
		}
		// Key is the higher suit of the two.
		return Hand{Category: Pair, Cards: sorted, Key: sorted[1].Power()}, nil
	case 3:
		if sorted[0].Rank != sorted[2].Rank {
			return Hand{}, ErrMismatchedRanks
		}
		return Hand{Category: Trip, Cards: sorted, Key: int32(sorted[0].Rank)}, nil
	case 4:
		// Four cards are only legal as a four-of-a-kind bomb.
		if sorted[0].Rank != sorted[3].Rank {
			return Hand{}, ErrWrongCardCount
		}
		return Hand{Category: Quad, Cards: sorted, Key: int32(sorted[0].Rank), Bomb: true}, nil
	case 5:
		return classifyFiver(sorted)
	default:
		return Hand{}, ErrWrongCardCount
	}
}

// classifyFiver matches five sorted cards against the five-card categories
// in priority order, rarest first.
func classifyFiver(sorted []Card) (Hand, error) {
	flush := allSameSuit(sorted)
	straight := consecutiveRanks(sorted)
	top := sorted[4].Power()

	if flush && straight {
		return Hand{Category: StraightFlush, Cards: sorted, Key: top, Bomb: true}, nil
	}
	if rank, ok := quadRank(sorted); ok {
		return Hand{Category: FourPlusKicker, Cards: sorted, Key: int32(rank), Bomb: true}, nil
	}
	if rank, ok := fullHouseTripRank(sorted); ok {
		return Hand{Category: FullHouse, Cards: sorted, Key: int32(rank)}, nil
	}
	if flush {
		return Hand{Category: Flush, Cards: sorted, Key: top}, nil
	}
	if straight {
		return Hand{Category: Straight, Cards: sorted, Key: top}, nil
	}
	return Hand{}, ErrNoMatchingFiverPattern
}

func allSameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// consecutiveRanks reports whether sorted cards form a run of adjacent
// ranks in Big Two order. There is no wraparound from Two back to Three.
func consecutiveRanks(sorted []Card) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank != sorted[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// quadRank finds the rank shared by four of five sorted cards.
func quadRank(sorted []Card) (Rank, bool) {
	if sorted[0].Rank == sorted[3].Rank {
		return sorted[0].Rank, true
	}
	if sorted[1].Rank == sorted[4].Rank {
		return sorted[1].Rank, true
	}
	return 0, false
}

// fullHouseTripRank finds the rank of the trip in an AAABB or AABBB shape.
func fullHouseTripRank(sorted []Card) (Rank, bool) {
	low, high := sorted[0].Rank, sorted[4].Rank
	if sorted[0].Rank == sorted[2].Rank && sorted[3].Rank == high && low != high {
		return low, true
	}
	if sorted[2].Rank == sorted[4].Rank && sorted[1].Rank == low && low != high {
		return high, true
	}
	return 0, false
}
