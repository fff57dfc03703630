package domain

import (
	"math/rand"
	"testing"
)

func TestCardStringRoundTrip(t *testing.T) {
	good := []string{"3D", "3C", "7H", "TS", "JD", "QC", "KH", "AS", "2S"}
	for _, want := range good {
		c, err := ParseCard(want)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", want, err)
		}
		if got := c.String(); got != want {
			t.Errorf("round trip %q: got %q", want, got)
		}
	}
}

func TestParseCardRejectsBadInput(t *testing.T) {
	bad := []string{"", "3", "3CC", "RC", "3K", "10D"}
	for _, s := range bad {
		if _, err := ParseCard(s); err == nil {
			t.Errorf("ParseCard(%q): expected error", s)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("3C 4d 5H")
	if err != nil {
		t.Fatalf("ParseCards: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}
	if cards[1] != (Card{Rank: Four, Suit: Diamonds}) {
		t.Errorf("lowercase suit not accepted: %v", cards[1])
	}

	cards, err = ParseCards("   ")
	if err != nil || cards != nil {
		t.Errorf("blank input: got %v, %v", cards, err)
	}
}

func TestCardOrder(t *testing.T) {
	tests := []struct {
		lower, higher string
	}{
		{"3D", "3C"}, // suit tie-break, diamonds lowest
		{"3S", "4D"}, // rank dominates suit
		{"AS", "2D"}, // two is the highest rank
		{"KH", "KS"},
	}
	for _, tt := range tests {
		lo, _ := ParseCard(tt.lower)
		hi, _ := ParseCard(tt.higher)
		if lo.Power() >= hi.Power() {
			t.Errorf("want %s < %s", tt.lower, tt.higher)
		}
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}
}

func TestShuffleDeckPreservesCards(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := NewDeck()
	shuffled := ShuffleDeck(rng, deck)
	if len(shuffled) != DeckSize {
		t.Fatalf("shuffled size = %d", len(shuffled))
	}
	seen := make(map[Card]bool)
	for _, c := range shuffled {
		seen[c] = true
	}
	for _, c := range deck {
		if !seen[c] {
			t.Fatalf("card %s lost in shuffle", c)
		}
	}
}
