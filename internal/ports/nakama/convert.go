package nakama

import (
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"bigtwo/internal/app"
	"bigtwo/internal/domain"
	"bigtwo/internal/ports"
)

// Wire payloads. Cards travel as card codes ("3C", "KS") so clients
// never depend on internal numeric encodings.

type playerJoinedWire struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
	Owner  bool   `json:"owner"`
}

type playerLeftWire struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
}

type playCardsWire struct {
	Cards string `json:"cards"` // space-separated card codes
}

type moveRejectedWire struct {
	Seat  int    `json:"seat"`
	Error string `json:"error"`
}

type gameStartedWire struct {
	MatchID      string `json:"match_id"`
	OpenerSeat   int    `json:"opener_seat"`
	CardsPerSeat int    `json:"cards_per_seat"`
}

type handDealtWire struct {
	Seat int      `json:"seat"`
	Hand []string `json:"hand"`
}

type cardPlayedWire struct {
	Seat     int      `json:"seat"`
	Cards    []string `json:"cards"`
	Category string   `json:"category"`
	NextTurn int      `json:"next_turn"`
}

type turnPassedWire struct {
	Seat     int `json:"seat"`
	NextTurn int `json:"next_turn"`
}

type trickWonWire struct {
	Seat     int `json:"seat"`
	NextTurn int `json:"next_turn"`
}

type gameEndedWire struct {
	Winner int                    `json:"winner"`
	Scores [domain.NumPlayers]int `json:"scores"`
}

func cardCodes(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// eventWire maps an app event onto its opcode and wire payload.
func eventWire(evt app.Event) (int64, any, error) {
	switch p := evt.Payload.(type) {
	case app.GameStartedPayload:
		return OpGameStarted, gameStartedWire{MatchID: p.MatchID, OpenerSeat: p.OpenerSeat, CardsPerSeat: p.CardsPerSeat}, nil
	case app.HandDealtPayload:
		return OpHandDealt, handDealtWire{Seat: p.Seat, Hand: cardCodes(p.Hand)}, nil
	case app.CardPlayedPayload:
		return OpCardPlayed, cardPlayedWire{Seat: p.Seat, Cards: cardCodes(p.Hand.Cards), Category: p.Hand.Category.String(), NextTurn: p.NextTurn}, nil
	case app.TurnPassedPayload:
		return OpTurnPassed, turnPassedWire{Seat: p.Seat, NextTurn: p.NextTurn}, nil
	case app.TrickWonPayload:
		return OpTrickWon, trickWonWire{Seat: p.Seat, NextTurn: p.NextTurn}, nil
	case app.GameEndedPayload:
		return OpGameEnded, gameEndedWire{Winner: p.Winner, Scores: p.Scores}, nil
	default:
		return 0, nil, fmt.Errorf("no wire mapping for event %q", evt.Kind)
	}
}

// dispatcherSink delivers app events over a Nakama match dispatcher.
// Events targeted at bot seats are dropped, everything else is either
// broadcast or sent to the addressed presences only.
type dispatcherSink struct {
	state      *MatchState
	dispatcher runtime.MatchDispatcher
}

var _ ports.EventSink = dispatcherSink{}

func (d dispatcherSink) Deliver(evt app.Event) error {
	op, wire, err := eventWire(evt)
	if err != nil {
		return err
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return err
	}

	var targets []runtime.Presence
	if len(evt.Recipients) > 0 {
		for _, seat := range evt.Recipients {
			uid := d.state.Seats[seat]
			if p, ok := d.state.Presences[uid]; ok {
				targets = append(targets, p)
			}
		}
		if len(targets) == 0 {
			return nil // all recipients are bots
		}
	}
	return d.dispatcher.BroadcastMessage(op, data, targets, nil, true)
}

func deliver(dispatcher runtime.MatchDispatcher, s *MatchState, events []app.Event) {
	sink := dispatcherSink{state: s, dispatcher: dispatcher}
	for _, evt := range events {
		_ = sink.Deliver(evt)
	}
}
