package domain

import "fmt"

// HandSize is the number of cards dealt to each seat.
const HandSize = DeckSize / NumPlayers

// Game owns the four seats' hands and drives tricks until one seat
// empties its hand. All state transitions are synchronous; any wait for a
// player decision happens in the caller.
type Game struct {
	hands  [NumPlayers][]Card
	trick  *Trick
	winner int
}

// NewGame deals the supplied deck round-robin into four hands and seats
// the holder of the Three of Clubs as the opener of the first trick. The
// deck must be a permutation of the standard 52 cards; the caller owns
// the shuffling algorithm.
func NewGame(deck []Card) (*Game, error) {
	if len(deck) != DeckSize {
		return nil, fmt.Errorf("deal: got %d cards, want %d", len(deck), DeckSize)
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		if seen[c] {
			return nil, fmt.Errorf("deal: duplicate card %s", c)
		}
		seen[c] = true
	}

	g := &Game{winner: -1}
	for i, c := range deck {
		seat := i % NumPlayers
		g.hands[seat] = append(g.hands[seat], c)
	}
	for seat := range g.hands {
		SortCards(g.hands[seat])
	}

	opener := g.holderOf(ThreeOfClubs)
	g.trick = NewTrick(opener, true)
	return g, nil
}

func (g *Game) holderOf(card Card) int {
	for seat, hand := range g.hands {
		for _, c := range hand {
			if c == card {
				return seat
			}
		}
	}
	return 0
}

// PlayResult reports what a successful action did to the game.
type PlayResult struct {
	Seat          int
	Hand          Hand // zero value on a pass
	TrickResolved bool
	TrickWinner   int // -1 unless TrickResolved
	GameOver      bool
	Winner        int // -1 unless GameOver
}

// Play validates and applies seat's card selection. On success the cards
// leave the seat's hand; if that empties the hand, trick and game resolve
// immediately with that seat as winner. On error nothing changes.
func (g *Game) Play(seat int, cards []Card) (PlayResult, error) {
	if g.winner >= 0 {
		return PlayResult{}, ErrNotPlayersTurn
	}

	hand, err := g.trick.Play(seat, cards, g.hands[seat])
	if err != nil {
		return PlayResult{}, err
	}
	g.hands[seat] = removeCards(g.hands[seat], hand.Cards)

	res := PlayResult{Seat: seat, Hand: hand, TrickWinner: -1, Winner: -1}
	if len(g.hands[seat]) == 0 {
		g.winner = seat
		g.trick.state = Resolved
		g.trick.turn = seat
		res.TrickResolved = true
		res.TrickWinner = seat
		res.GameOver = true
		res.Winner = seat
	}
	return res, nil
}

// Pass marks seat inactive for the current trick. When the trick resolves
// the winner opens the next trick with a fresh pass slate and no incumbent.
func (g *Game) Pass(seat int) (PlayResult, error) {
	if g.winner >= 0 {
		return PlayResult{}, ErrNotPlayersTurn
	}
	if err := g.trick.Pass(seat); err != nil {
		return PlayResult{}, err
	}

	res := PlayResult{Seat: seat, TrickWinner: -1, Winner: -1}
	if w, ok := g.trick.Winner(); ok {
		res.TrickResolved = true
		res.TrickWinner = w
		g.trick = NewTrick(w, false)
	}
	return res, nil
}

// Turn returns the seat whose decision is pending.
func (g *Game) Turn() int { return g.trick.Turn() }

// Over reports whether a seat has emptied its hand.
func (g *Game) Over() bool { return g.winner >= 0 }

// Winner returns the winning seat once the game is over.
func (g *Game) Winner() (int, bool) {
	if g.winner < 0 {
		return -1, false
	}
	return g.winner, true
}

// HandOf returns a copy of the seat's current hand, sorted ascending.
func (g *Game) HandOf(seat int) []Card {
	return append([]Card(nil), g.hands[seat]...)
}

// CardsLeft returns the per-seat remaining card counts.
func (g *Game) CardsLeft() [NumPlayers]int {
	var out [NumPlayers]int
	for seat, hand := range g.hands {
		out[seat] = len(hand)
	}
	return out
}

// Snapshot is a read-only view of the game for presentation and AI
// layers; it shares no mutable state with the engine.
type Snapshot struct {
	Turn          int
	TrickState    TrickState
	Incumbent     *Hand
	IncumbentSeat int
	Passed        [NumPlayers]bool
	CardsLeft     [NumPlayers]int
	OpeningThree  bool
	Over          bool
	Winner        int
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:          g.trick.Turn(),
		TrickState:    g.trick.State(),
		Incumbent:     g.trick.Incumbent(),
		IncumbentSeat: g.trick.IncumbentSeat(),
		CardsLeft:     g.CardsLeft(),
		OpeningThree:  g.trick.NeedsOpeningThree(),
		Over:          g.Over(),
		Winner:        g.winner,
	}
	for seat := 0; seat < NumPlayers; seat++ {
		snap.Passed[seat] = g.trick.HasPassed(seat)
	}
	return snap
}

// ScoreOptions configures end-of-game penalty scoring.
type ScoreOptions struct {
	// PointsPerCard is the penalty per unplayed card.
	PointsPerCard int
	// DeuceMultiplier scales the penalty for each unplayed Two. Values
	// below 1 are treated as 1.
	DeuceMultiplier int
}

// Scores computes per-seat penalty points from cards still held at game
// end; the winner holds zero cards and scores zero. Lower is better.
func (g *Game) Scores(opts ScoreOptions) [NumPlayers]int {
	perCard := opts.PointsPerCard
	deuce := opts.DeuceMultiplier
	if deuce < 1 {
		deuce = 1
	}

	var out [NumPlayers]int
	for seat, hand := range g.hands {
		for _, c := range hand {
			pts := perCard
			if c.Rank == Two {
				pts *= deuce
			}
			out[seat] += pts
		}
	}
	return out
}

// removeCards returns hand minus the played cards, counting multiplicity.
func removeCards(hand, played []Card) []Card {
	counts := make(map[Card]int, len(played))
	for _, c := range played {
		counts[c]++
	}
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if counts[c] > 0 {
			counts[c]--
			continue
		}
		out = append(out, c)
	}
	return out
}
