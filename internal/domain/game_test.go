package domain

import (
	"errors"
	"math/rand"
	"testing"
)

// suitOrderedDeck builds a deck whose round-robin deal gives each seat a
// single suit: seat 0 spades, seat 1 diamonds, seat 2 clubs, seat 3 hearts.
func suitOrderedDeck() []Card {
	suits := []Suit{Spades, Diamonds, Clubs, Hearts}
	deck := make([]Card, 0, DeckSize)
	for r := Three; r <= Two; r++ {
		for _, s := range suits {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

func TestNewGameDealsFullPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	game, err := NewGame(ShuffleDeck(rng, NewDeck()))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	seen := make(map[Card]int)
	total := 0
	for seat := 0; seat < NumPlayers; seat++ {
		hand := game.HandOf(seat)
		if len(hand) != HandSize {
			t.Errorf("seat %d dealt %d cards, want %d", seat, len(hand), HandSize)
		}
		total += len(hand)
		for _, c := range hand {
			seen[c]++
		}
	}
	if total != DeckSize {
		t.Fatalf("dealt %d cards, want %d", total, DeckSize)
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("card %s dealt %d times", c, n)
		}
	}
}

func TestNewGameRejectsBadDecks(t *testing.T) {
	if _, err := NewGame(NewDeck()[:51]); err == nil {
		t.Error("short deck accepted")
	}

	deck := NewDeck()
	deck[0] = deck[1]
	if _, err := NewGame(deck); err == nil {
		t.Error("duplicate card accepted")
	}
}

func TestGameOpeningScenario(t *testing.T) {
	// Seat 2 is dealt all clubs and must open with the Three of Clubs.
	game, err := NewGame(suitOrderedDeck())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if game.Turn() != 2 {
		t.Fatalf("opener = %d, want seat 2 (holds 3C)", game.Turn())
	}

	// Out-of-turn attempt changes nothing.
	if _, err := game.Play(0, mustCards(t, "3S")); !errors.Is(err, ErrNotPlayersTurn) {
		t.Fatalf("out of turn: %v", err)
	}

	// 3C+4C as a pair is malformed.
	if _, err := game.Play(2, mustCards(t, "3C 4C")); !errors.Is(err, ErrMismatchedRanks) {
		t.Fatalf("3C 4C pair: %v", err)
	}

	res, err := game.Play(2, mustCards(t, "3C"))
	if err != nil {
		t.Fatalf("open with 3C: %v", err)
	}
	if res.Hand.Category != Lone || res.TrickResolved || res.GameOver {
		t.Errorf("unexpected result %+v", res)
	}
	if game.Turn() != 3 {
		t.Errorf("turn = %d, want 3", game.Turn())
	}
	if left := game.CardsLeft(); left[2] != HandSize-1 {
		t.Errorf("seat 2 cards left = %d", left[2])
	}
}

func TestGameTrickRotation(t *testing.T) {
	game, err := NewGame(suitOrderedDeck())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	if _, err := game.Play(2, mustCards(t, "3C")); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := game.Play(3, mustCards(t, "3H")); err != nil {
		t.Fatalf("seat 3: %v", err)
	}
	if _, err := game.Play(0, mustCards(t, "3S")); err != nil {
		t.Fatalf("seat 0: %v", err)
	}
	// Seat 1 holds only diamonds; 3D cannot beat 3S.
	if _, err := game.Play(1, mustCards(t, "3D")); !errors.Is(err, ErrDoesNotBeat) {
		t.Fatalf("3D over 3S: %v", err)
	}
	if _, err := game.Play(1, mustCards(t, "4D")); err != nil {
		t.Fatalf("seat 1: %v", err)
	}

	// Everyone passes back to seat 1, who wins the trick and leads next.
	for _, seat := range []int{2, 3} {
		res, err := game.Pass(seat)
		if err != nil {
			t.Fatalf("pass seat %d: %v", seat, err)
		}
		if res.TrickResolved {
			t.Fatalf("trick resolved early at seat %d", seat)
		}
	}
	res, err := game.Pass(0)
	if err != nil {
		t.Fatalf("pass seat 0: %v", err)
	}
	if !res.TrickResolved || res.TrickWinner != 1 {
		t.Fatalf("trick result %+v, want winner 1", res)
	}
	if game.Turn() != 1 {
		t.Errorf("next trick opener = %d, want 1", game.Turn())
	}

	// New trick: incumbent cleared, passes reset, any hand may open.
	snap := game.Snapshot()
	if snap.Incumbent != nil || snap.TrickState != AwaitingOpen {
		t.Errorf("next trick not reset: %+v", snap)
	}
	for seat, passed := range snap.Passed {
		if passed {
			t.Errorf("seat %d still marked passed", seat)
		}
	}
}

func TestGameEndsOnFinalCard(t *testing.T) {
	game := &Game{winner: -1}
	game.hands[0] = mustCards(t, "AS")
	game.hands[1] = mustCards(t, "3D 4H")
	game.hands[2] = mustCards(t, "3H 4D")
	game.hands[3] = mustCards(t, "7D 4S")
	game.trick = NewTrick(0, false)

	res, err := game.Play(0, mustCards(t, "AS"))
	if err != nil {
		t.Fatalf("final play: %v", err)
	}
	if !res.GameOver || res.Winner != 0 {
		t.Fatalf("result %+v, want game over with winner 0", res)
	}
	if winner, ok := game.Winner(); !ok || winner != 0 {
		t.Errorf("Winner() = %d,%v", winner, ok)
	}

	// No further plays are processed.
	if _, err := game.Play(1, mustCards(t, "3D")); !errors.Is(err, ErrNotPlayersTurn) {
		t.Errorf("play after game over: %v", err)
	}
	if _, err := game.Pass(1); !errors.Is(err, ErrNotPlayersTurn) {
		t.Errorf("pass after game over: %v", err)
	}
}

func TestGameScores(t *testing.T) {
	game := &Game{winner: 0}
	game.hands[1] = mustCards(t, "3D 4H")
	game.hands[2] = mustCards(t, "2H 2S")
	game.hands[3] = mustCards(t, "7D")
	game.trick = NewTrick(0, false)

	scores := game.Scores(ScoreOptions{PointsPerCard: 1, DeuceMultiplier: 2})
	want := [NumPlayers]int{0, 2, 4, 1}
	if scores != want {
		t.Errorf("scores = %v, want %v", scores, want)
	}

	// Multiplier below one falls back to plain per-card scoring.
	scores = game.Scores(ScoreOptions{PointsPerCard: 1})
	want = [NumPlayers]int{0, 2, 2, 1}
	if scores != want {
		t.Errorf("scores = %v, want %v", scores, want)
	}
}

func TestSnapshotSharesNoState(t *testing.T) {
	game, err := NewGame(suitOrderedDeck())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, err := game.Play(2, mustCards(t, "3C")); err != nil {
		t.Fatalf("open: %v", err)
	}

	snap := game.Snapshot()
	snap.Incumbent.Cards[0] = Card{Rank: Two, Suit: Spades}
	if got := game.Snapshot().Incumbent.Cards[0]; got != ThreeOfClubs {
		t.Errorf("snapshot mutation leaked into engine: %s", got)
	}
}
