package app

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"bigtwo/internal/domain"
)

// Service runs Big Two use-cases on top of the domain engine: it deals
// matches and translates caller actions into engine calls, emitting
// events for whatever presentation or transport layer is attached.
type Service struct {
	rng   *rand.Rand
	log   zerolog.Logger
	score domain.ScoreOptions
}

// NewService constructs a Service with the provided rng, logger and
// scoring options. A nil rng falls back to a time-seeded default.
func NewService(rng *rand.Rand, log zerolog.Logger, score domain.ScoreOptions) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, log: log, score: score}
}

// Match binds a running game to a stable identifier.
type Match struct {
	ID   string
	Game *domain.Game
}

// NewMatch shuffles a fresh deck, deals a game and emits the dealt hands
// (targeted per seat) followed by the game-started broadcast.
func (s *Service) NewMatch() (*Match, []Event, error) {
	deck := domain.ShuffleDeck(s.rng, domain.NewDeck())
	game, err := domain.NewGame(deck)
	if err != nil {
		return nil, nil, err
	}

	m := &Match{ID: uuid.NewV4().String(), Game: game}

	events := make([]Event, 0, domain.NumPlayers+1)
	for seat := 0; seat < domain.NumPlayers; seat++ {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: game.HandOf(seat)},
			Recipients: []int{seat},
		})
	}
	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			MatchID:      m.ID,
			OpenerSeat:   game.Turn(),
			CardsPerSeat: domain.HandSize,
		},
	})

	s.log.Info().Str("match_id", m.ID).Int("opener", game.Turn()).Msg("match started")
	return m, events, nil
}

// Play submits seat's card selection to the engine. Engine rejections are
// returned unchanged for the caller to retry; nothing is emitted for them.
func (s *Service) Play(m *Match, seat int, cards []domain.Card) ([]Event, error) {
	res, err := m.Game.Play(seat, cards)
	if err != nil {
		s.log.Debug().Str("match_id", m.ID).Int("seat", seat).Err(err).Msg("play rejected")
		return nil, err
	}

	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: seat, Hand: res.Hand, NextTurn: m.Game.Turn()},
	}}
	if res.GameOver {
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winner: res.Winner, Scores: m.Game.Scores(s.score)},
		})
		s.log.Info().Str("match_id", m.ID).Int("winner", res.Winner).Msg("game over")
	}
	return events, nil
}

// Pass submits seat's pass. A pass that resolves the trick additionally
// emits the trick-won event naming the next opener.
func (s *Service) Pass(m *Match, seat int) ([]Event, error) {
	res, err := m.Game.Pass(seat)
	if err != nil {
		s.log.Debug().Str("match_id", m.ID).Int("seat", seat).Err(err).Msg("pass rejected")
		return nil, err
	}

	events := []Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{Seat: seat, NextTurn: m.Game.Turn()},
	}}
	if res.TrickResolved {
		events = append(events, Event{
			Kind:    EventTrickWon,
			Payload: TrickWonPayload{Seat: res.TrickWinner, NextTurn: m.Game.Turn()},
		})
	}
	return events, nil
}
