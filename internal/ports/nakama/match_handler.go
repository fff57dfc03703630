package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/rs/zerolog"

	"bigtwo/internal/app"
	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
)

const tickRate = 10

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseLobby is the pre-game state where players can join.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active game state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a game concludes.
	PhaseEnded Phase = "ended"
)

// Label is the match label advertised for quick-match queries.
type Label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// MatchState holds the authoritative runtime state for the match handler.
type MatchState struct {
	Phase Phase

	Seats       [domain.NumPlayers]string   // seat index -> userId, "" when empty
	Presences   map[string]runtime.Presence // userId -> presence for targeted messaging
	OwnerUserID string

	Svc   *app.Service
	Match *app.Match

	Bots     map[int]*bot.Agent // seat index -> agent for bot-held seats
	BotActAt int64              // tick when the pending bot move fires, 0 when idle

	TurnExpiresAt int64 // tick when the human holding the turn is timed out, 0 when idle
}

func (s *MatchState) seatOf(userID string) int {
	for i, uid := range s.Seats {
		if uid == userID {
			return i
		}
	}
	return -1
}

func (s *MatchState) humanCount() int {
	n := 0
	for _, uid := range s.Seats {
		if uid != "" && !isBotUserID(uid) {
			n++
		}
	}
	return n
}

func isBotUserID(userID string) bool {
	return len(userID) > 4 && userID[:4] == "bot:"
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit boots a new match in the lobby phase.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	gc := config.GetGameConfig()
	score := domain.ScoreOptions{
		PointsPerCard:   gc.PointsPerCard,
		DeuceMultiplier: gc.DeuceMultiplier,
	}

	state := &MatchState{
		Phase:     PhaseLobby,
		Presences: map[string]runtime.Presence{},
		Svc:       app.NewService(nil, zerolog.Nop(), score),
		Bots:      map[int]*bot.Agent{},
	}

	labelBytes, _ := json.Marshal(Label{Open: true, Game: "bigtwo", Phase: string(PhaseLobby)})
	return state, tickRate, string(labelBytes)
}

// MatchJoinAttempt validates whether a presence may join.
func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {

	s := state.(*MatchState)

	// Allow rejoin; disallow new joins once playing.
	if s.Phase != PhaseLobby {
		if s.seatOf(presence.GetUserId()) >= 0 {
			return state, true, ""
		}
		return state, false, "match_in_progress"
	}

	if s.humanCount() >= domain.NumPlayers {
		return state, false, "match_full"
	}

	return state, true, ""
}

// MatchJoin assigns seats and owner as presences arrive.
func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*MatchState)

	for _, p := range presences {
		uid := p.GetUserId()

		// Rejoin only refreshes the presence.
		if s.seatOf(uid) >= 0 {
			s.Presences[uid] = p
			continue
		}

		seat := lowestEmptySeat(&s.Seats)
		if seat < 0 {
			continue
		}
		s.Seats[seat] = uid
		s.Presences[uid] = p

		isOwner := false
		if s.OwnerUserID == "" {
			s.OwnerUserID = uid
			isOwner = true
		}

		evt, _ := json.Marshal(playerJoinedWire{UserID: uid, Seat: seat, Owner: isOwner})
		_ = dispatcher.BroadcastMessage(OpPlayerJoined, evt, nil, nil, true)
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

// MatchLeave frees seats and reassigns ownership when presences leave.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*MatchState)

	for _, p := range presences {
		uid := p.GetUserId()

		seat := s.seatOf(uid)
		if seat < 0 {
			continue
		}
		delete(s.Presences, uid)
		if s.Phase == PhaseLobby {
			s.Seats[seat] = ""
		} else {
			// The game must keep moving without them, a bot takes over
			// the seat.
			s.Seats[seat] = fmt.Sprintf("bot:%d", seat)
			s.Bots[seat] = bot.NewAgent(seat, botName(seat))
			s.BotActAt = 0
			s.TurnExpiresAt = 0
		}

		evt, _ := json.Marshal(playerLeftWire{UserID: uid, Seat: seat})
		_ = dispatcher.BroadcastMessage(OpPlayerLeft, evt, nil, nil, true)

		if s.OwnerUserID == uid {
			s.OwnerUserID = ""
			for _, other := range s.Seats {
				if other != "" && !isBotUserID(other) && other != uid {
					s.OwnerUserID = other
					break
				}
			}
		}
	}

	if s.humanCount() == 0 {
		return nil // no humans left, end the match
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

// MatchLoop processes client messages and drives bot turns.
func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {

	s := state.(*MatchState)

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(logger, dispatcher, s, msg)
		case OpPlayCards:
			mh.handlePlayCards(logger, dispatcher, s, msg)
		case OpPassTurn:
			mh.handlePass(logger, dispatcher, s, msg)
		case OpRequestNewGame:
			mh.handleRequestNewGame(logger, dispatcher, s, msg)
		}
	}

	mh.driveBots(logger, dispatcher, s, tick)
	mh.driveTurnTimer(logger, dispatcher, s, tick)

	return state
}

// MatchTerminate runs on match shutdown.
func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	return state
}

// MatchSignal handles out-of-band signals; unused.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

/* ---- message handlers ---- */

func (mh *matchHandler) handleStartGame(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData) {
	if s.Phase != PhaseLobby {
		return
	}
	if msg.GetUserId() != s.OwnerUserID {
		return
	}

	// Empty seats are taken by bots so a game always has four players.
	for seat, uid := range s.Seats {
		if uid == "" {
			s.Seats[seat] = fmt.Sprintf("bot:%d", seat)
			s.Bots[seat] = bot.NewAgent(seat, botName(seat))
		}
	}

	m, events, err := s.Svc.NewMatch()
	if err != nil {
		logger.Error("failed to start game: %v", err)
		return
	}
	s.Match = m
	s.Phase = PhasePlaying
	s.BotActAt = 0

	deliver(dispatcher, s, events)
	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
}

func (mh *matchHandler) handlePlayCards(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData) {
	if s.Phase != PhasePlaying {
		return
	}
	seat := s.seatOf(msg.GetUserId())
	if seat < 0 {
		return
	}

	var payload playCardsWire
	if err := json.Unmarshal(msg.GetData(), &payload); err != nil {
		mh.reject(dispatcher, s, seat, err)
		return
	}
	cards, err := domain.ParseCards(payload.Cards)
	if err != nil {
		mh.reject(dispatcher, s, seat, err)
		return
	}

	events, err := s.Svc.Play(s.Match, seat, cards)
	if err != nil {
		mh.reject(dispatcher, s, seat, err)
		return
	}
	deliver(dispatcher, s, events)
	mh.afterMove(dispatcher, s)
}

func (mh *matchHandler) handlePass(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData) {
	if s.Phase != PhasePlaying {
		return
	}
	seat := s.seatOf(msg.GetUserId())
	if seat < 0 {
		return
	}

	events, err := s.Svc.Pass(s.Match, seat)
	if err != nil {
		mh.reject(dispatcher, s, seat, err)
		return
	}
	deliver(dispatcher, s, events)
	mh.afterMove(dispatcher, s)
}

func (mh *matchHandler) handleRequestNewGame(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData) {
	if s.Phase != PhaseEnded {
		return
	}
	if msg.GetUserId() != s.OwnerUserID {
		return
	}

	m, events, err := s.Svc.NewMatch()
	if err != nil {
		logger.Error("failed to start new game: %v", err)
		return
	}
	s.Match = m
	s.Phase = PhasePlaying
	s.BotActAt = 0

	deliver(dispatcher, s, events)
	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
}

// reject sends the engine's verdict privately to the offending seat.
// Rejections never mutate state, so the client simply retries.
func (mh *matchHandler) reject(dispatcher runtime.MatchDispatcher, s *MatchState, seat int, err error) {
	p, ok := s.Presences[s.Seats[seat]]
	if !ok {
		return
	}
	evt, _ := json.Marshal(moveRejectedWire{Seat: seat, Error: err.Error()})
	_ = dispatcher.BroadcastMessage(OpMoveRejected, evt, []runtime.Presence{p}, nil, true)
}

func (mh *matchHandler) afterMove(dispatcher runtime.MatchDispatcher, s *MatchState) {
	s.BotActAt = 0
	s.TurnExpiresAt = 0
	if s.Match.Game.Over() {
		s.Phase = PhaseEnded
		_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	}
}

/* ---- bots ---- */

// driveBots acts for the bot holding the current turn, after a short
// think delay so humans can follow the table.
func (mh *matchHandler) driveBots(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, tick int64) {
	if s.Phase != PhasePlaying || s.Match == nil || s.Match.Game.Over() {
		return
	}

	seat := s.Match.Game.Turn()
	agent, ok := s.Bots[seat]
	if !ok {
		return
	}

	if s.BotActAt == 0 {
		delayTicks := int64(config.GetGameConfig().BotThinkDelayMs) * tickRate / 1000
		s.BotActAt = tick + delayTicks
		return
	}
	if tick < s.BotActAt {
		return
	}
	s.BotActAt = 0

	move, err := agent.Play(s.Match.Game.Snapshot(), s.Match.Game.HandOf(seat))
	if err != nil {
		logger.Error("bot seat %d failed to move: %v", seat, err)
		move = bot.Move{Pass: true}
	}

	var events []app.Event
	if move.Pass {
		events, err = s.Svc.Pass(s.Match, seat)
	} else {
		events, err = s.Svc.Play(s.Match, seat, move.Cards)
	}
	if err != nil {
		logger.Error("bot seat %d move rejected: %v", seat, err)
		return
	}
	deliver(dispatcher, s, events)
	mh.afterMove(dispatcher, s)
}

// driveTurnTimer bounds how long a human seat may hold the turn. On
// expiry the seat passes; the opener cannot pass, so that case sheds the
// weakest legal hand instead.
func (mh *matchHandler) driveTurnTimer(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, tick int64) {
	if s.Phase != PhasePlaying || s.Match == nil || s.Match.Game.Over() {
		s.TurnExpiresAt = 0
		return
	}

	seat := s.Match.Game.Turn()
	if _, isBot := s.Bots[seat]; isBot {
		s.TurnExpiresAt = 0
		return
	}

	if s.TurnExpiresAt == 0 {
		s.TurnExpiresAt = tick + int64(config.GetGameConfig().TurnDurationSeconds)*tickRate
		return
	}
	if tick < s.TurnExpiresAt {
		return
	}

	events, err := s.Svc.Pass(s.Match, seat)
	if err != nil {
		move, merr := bot.Greedy{}.CalculateMove(s.Match.Game.Snapshot(), s.Match.Game.HandOf(seat))
		if merr != nil || move.Pass {
			logger.Error("turn timeout for seat %d could not act: %v", seat, err)
			return
		}
		events, err = s.Svc.Play(s.Match, seat, move.Cards)
		if err != nil {
			logger.Error("turn timeout play for seat %d rejected: %v", seat, err)
			return
		}
	}

	logger.Info("seat %d timed out, acted automatically", seat)
	deliver(dispatcher, s, events)
	mh.afterMove(dispatcher, s)
}

var botNames = [domain.NumPlayers]string{"Minh", "Lan", "Huy", "Thao"}

func botName(seat int) string {
	return botNames[seat%domain.NumPlayers]
}

/* ---- helpers ---- */

func lowestEmptySeat(seats *[domain.NumPlayers]string) int {
	for i := range seats {
		if seats[i] == "" {
			return i
		}
	}
	return -1
}

func buildLabel(s *MatchState) string {
	open := s.Phase == PhaseLobby && s.humanCount() < domain.NumPlayers
	b, _ := json.Marshal(Label{Open: open, Game: "bigtwo", Phase: string(s.Phase)})
	return string(b)
}
