package domain

import (
	"fmt"
	"strings"
)

// Rank is a card rank in Big Two order: Three is lowest, Two is highest.
type Rank int32

const (
	Three Rank = iota
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

// Suit is a card suit, ordered low to high for tie-breaks.
type Suit int32

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
)

// Card is an immutable playing card value.
type Card struct {
	Rank Rank
	Suit Suit
}

// ThreeOfClubs must be part of the very first hand played in a game.
var ThreeOfClubs = Card{Rank: Three, Suit: Clubs}

// Power maps a card to its absolute strength: rank first, suit as tie-break.
func (c Card) Power() int32 {
	return int32(c.Rank)*4 + int32(c.Suit)
}

var rankNames = [13]string{"3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A", "2"}
var suitNames = [4]string{"D", "C", "H", "S"}

func (r Rank) String() string {
	if r < Three || r > Two {
		return "?"
	}
	return rankNames[r]
}

func (s Suit) String() string {
	if s < Diamonds || s > Spades {
		return "?"
	}
	return suitNames[s]
}

// String renders the card in compact notation, e.g. "3C", "TD", "2S".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses compact card notation such as "3C" or "QS".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("parse card %q: want 2 characters", s)
	}

	rank := Rank(-1)
	for i, name := range rankNames {
		if string(s[0]) == name {
			rank = Rank(i)
			break
		}
	}
	if rank < 0 {
		return Card{}, fmt.Errorf("parse card %q: unknown rank %q", s, s[0])
	}

	suit := Suit(-1)
	for i, name := range suitNames {
		if string(s[1]) == name {
			suit = Suit(i)
			break
		}
	}
	if suit < 0 {
		return Card{}, fmt.Errorf("parse card %q: unknown suit %q", s, s[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a space-separated list of cards, e.g. "3C 4D 5H".
// An empty or all-whitespace string yields no cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(strings.ToUpper(f))
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
