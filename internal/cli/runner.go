package cli

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"bigtwo/internal/app"
	"bigtwo/internal/bot"
	"bigtwo/internal/domain"
)

var opponentNames = [domain.NumPlayers]string{"Minh", "Lan", "Huy", "Thao"}

// Runner drives one console match: a human seat against bot opponents.
type Runner struct {
	svc        *app.Service
	view       *Presenter
	bots       map[int]*bot.Agent
	humanSeat  int
	thinkDelay time.Duration
	prompt     PromptFunc
	log        zerolog.Logger
}

// NewRunner seats the named player at seat 0 and fills the remaining
// seats with bot opponents.
func NewRunner(svc *app.Service, playerName string, thinkDelay time.Duration, prompt PromptFunc, log zerolog.Logger) *Runner {
	const humanSeat = 0

	view := &Presenter{HumanSeat: humanSeat}
	bots := map[int]*bot.Agent{}
	for seat := 0; seat < domain.NumPlayers; seat++ {
		if seat == humanSeat {
			view.Names[seat] = playerName
			continue
		}
		agent := bot.NewAgent(seat, opponentNames[seat])
		bots[seat] = agent
		view.Names[seat] = agent.Name
	}

	return &Runner{
		svc:        svc,
		view:       view,
		bots:       bots,
		humanSeat:  humanSeat,
		thinkDelay: thinkDelay,
		prompt:     prompt,
		log:        log,
	}
}

// Run plays one full game and returns the winning seat.
func (r *Runner) Run() (int, error) {
	m, events, err := r.svc.NewMatch()
	if err != nil {
		return -1, err
	}
	r.deliver(events)

	for !m.Game.Over() {
		seat := m.Game.Turn()
		if seat == r.humanSeat {
			if err := r.humanTurn(m); err != nil {
				return -1, err
			}
			continue
		}
		if err := r.botTurn(m, seat); err != nil {
			return -1, err
		}
	}
	winner, _ := m.Game.Winner()
	return winner, nil
}

// humanTurn prompts until the engine accepts a move. Rejections are
// surfaced as warnings and the prompt repeats.
func (r *Runner) humanTurn(m *app.Match) error {
	r.view.RenderTable(m.Game.Snapshot(), m.Game.HandOf(r.humanSeat))

	for {
		line, err := r.prompt("Your move (cards like \"3C 4D\", or \"pass\")")
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		move, err := ParseMove(line)
		if err != nil {
			pterm.Warning.Printfln("%v", err)
			continue
		}

		var events []app.Event
		if move.Pass {
			events, err = r.svc.Pass(m, r.humanSeat)
		} else {
			events, err = r.svc.Play(m, r.humanSeat, move.Cards)
		}
		if err != nil {
			pterm.Warning.Printfln("%v", err)
			continue
		}
		r.deliver(events)
		return nil
	}
}

// botTurn lets the seat's agent act after a short pause so the table
// stays readable.
func (r *Runner) botTurn(m *app.Match, seat int) error {
	agent, ok := r.bots[seat]
	if !ok {
		return fmt.Errorf("no agent for seat %d", seat)
	}
	time.Sleep(r.thinkDelay)

	move, err := agent.Play(m.Game.Snapshot(), m.Game.HandOf(seat))
	if err != nil {
		return fmt.Errorf("agent for seat %d failed: %w", seat, err)
	}

	var events []app.Event
	if move.Pass {
		events, err = r.svc.Pass(m, seat)
	} else {
		events, err = r.svc.Play(m, seat, move.Cards)
	}
	if err != nil {
		// The engine validates every agent move; a rejection here is a
		// strategy bug worth stopping on.
		return fmt.Errorf("engine rejected agent move for seat %d: %w", seat, err)
	}
	r.deliver(events)
	return nil
}

func (r *Runner) deliver(events []app.Event) {
	for _, evt := range events {
		if len(evt.Recipients) > 0 && !containsSeat(evt.Recipients, r.humanSeat) {
			continue
		}
		if err := r.view.Deliver(evt); err != nil {
			r.log.Warn().Err(err).Msg("failed to render event")
		}
	}
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}
