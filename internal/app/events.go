package app

import "bigtwo/internal/domain"

// EventKind identifies emitted game events for presentation or transport
// layers.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventHandDealt   EventKind = "hand_dealt"
	EventCardPlayed  EventKind = "card_played"
	EventTurnPassed  EventKind = "turn_passed"
	EventTrickWon    EventKind = "trick_won"
	EventGameEnded   EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seat indices; empty means broadcast
}

type GameStartedPayload struct {
	MatchID      string
	OpenerSeat   int
	CardsPerSeat int
}

type HandDealtPayload struct {
	Seat int
	Hand []domain.Card
}

type CardPlayedPayload struct {
	Seat     int
	Hand     domain.Hand
	NextTurn int
}

type TurnPassedPayload struct {
	Seat     int
	NextTurn int
}

type TrickWonPayload struct {
	Seat     int
	NextTurn int
}

type GameEndedPayload struct {
	Winner int
	Scores [domain.NumPlayers]int
}
