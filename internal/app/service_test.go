package app

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigtwo/internal/domain"
)

func newTestService(seed int64) *Service {
	rng := rand.New(rand.NewSource(seed))
	return NewService(rng, zerolog.Nop(), domain.ScoreOptions{PointsPerCard: 1, DeuceMultiplier: 2})
}

func TestNewMatchDealsAndAnnounces(t *testing.T) {
	svc := newTestService(11)
	m, events, err := svc.NewMatch()
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	require.Len(t, events, domain.NumPlayers+1)

	seen := map[domain.Card]int{}
	for seat := 0; seat < domain.NumPlayers; seat++ {
		evt := events[seat]
		assert.Equal(t, EventHandDealt, evt.Kind)
		assert.Equal(t, []int{seat}, evt.Recipients, "hands must be targeted, not broadcast")
		payload := evt.Payload.(HandDealtPayload)
		assert.Len(t, payload.Hand, domain.HandSize)
		for _, c := range payload.Hand {
			seen[c]++
		}
	}
	assert.Len(t, seen, domain.DeckSize, "deal must cover the full deck")

	started := events[domain.NumPlayers]
	require.Equal(t, EventGameStarted, started.Kind)
	payload := started.Payload.(GameStartedPayload)
	assert.Equal(t, m.ID, payload.MatchID)
	assert.Equal(t, m.Game.Turn(), payload.OpenerSeat)
}

func TestServiceRejectionsEmitNothing(t *testing.T) {
	svc := newTestService(11)
	m, _, err := svc.NewMatch()
	require.NoError(t, err)

	wrongSeat := (m.Game.Turn() + 1) % domain.NumPlayers
	events, err := svc.Play(m, wrongSeat, m.Game.HandOf(wrongSeat)[:1])
	assert.True(t, errors.Is(err, domain.ErrNotPlayersTurn))
	assert.Empty(t, events)
}

func TestServiceFullGameWithGreedyTurns(t *testing.T) {
	svc := newTestService(3)
	m, _, err := svc.NewMatch()
	require.NoError(t, err)

	// Drive the match with the simplest legal policy: lowest single that
	// beats, otherwise pass.
	var ended *GameEndedPayload
	for turns := 0; !m.Game.Over() && turns < 2000; turns++ {
		seat := m.Game.Turn()
		snap := m.Game.Snapshot()
		cards := pickLowestLegalSingle(t, snap, m.Game.HandOf(seat))
		if cards == nil {
			_, err := svc.Pass(m, seat)
			require.NoError(t, err)
			continue
		}
		events, err := svc.Play(m, seat, cards)
		require.NoError(t, err)
		for _, evt := range events {
			if evt.Kind == EventGameEnded {
				payload := evt.Payload.(GameEndedPayload)
				ended = &payload
			}
		}
	}

	require.NotNil(t, ended, "game must end")
	assert.Zero(t, ended.Scores[ended.Winner], "winner scores zero")
}

// pickLowestLegalSingle returns a one-card play satisfying the trick
// context, or nil to pass.
func pickLowestLegalSingle(t *testing.T, snap domain.Snapshot, hand []domain.Card) []domain.Card {
	t.Helper()
	for _, c := range hand {
		h, err := domain.Classify([]domain.Card{c})
		if err != nil {
			continue
		}
		if snap.OpeningThree && c != domain.ThreeOfClubs {
			continue
		}
		if domain.CheckPlay(h, snap.Incumbent) == nil {
			return []domain.Card{c}
		}
	}
	return nil
}
