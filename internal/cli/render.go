package cli

import (
	"strings"

	"github.com/pterm/pterm"

	"bigtwo/internal/app"
	"bigtwo/internal/domain"
	"bigtwo/internal/ports"
)

// Presenter renders app events on the terminal. It implements
// ports.EventSink so the console front end consumes the same event
// stream a network transport would.
type Presenter struct {
	Names     [domain.NumPlayers]string
	HumanSeat int
}

var _ ports.EventSink = (*Presenter)(nil)

func (p *Presenter) name(seat int) string {
	if seat < 0 || seat >= domain.NumPlayers || p.Names[seat] == "" {
		return "?"
	}
	return p.Names[seat]
}

// Deliver renders one event. Hands addressed to other seats are dropped,
// the console only ever shows the human player's cards.
func (p *Presenter) Deliver(evt app.Event) error {
	switch pl := evt.Payload.(type) {
	case app.GameStartedPayload:
		pterm.Info.Printfln("New game. %s holds the Three of Clubs and opens.", p.name(pl.OpenerSeat))
	case app.HandDealtPayload:
		if pl.Seat != p.HumanSeat {
			return nil
		}
		pterm.Printfln("Your hand: %s", cardLine(pl.Hand))
	case app.CardPlayedPayload:
		pterm.Printfln("%s plays %s  %s", p.name(pl.Seat), cardLine(pl.Hand.Cards), pterm.FgDarkGray.Sprint(pl.Hand.Category.String()))
	case app.TurnPassedPayload:
		pterm.Printfln("%s passes", p.name(pl.Seat))
	case app.TrickWonPayload:
		pterm.Success.Printfln("%s takes the trick and leads the next one", p.name(pl.Seat))
	case app.GameEndedPayload:
		p.renderGameEnd(pl)
	}
	return nil
}

func (p *Presenter) renderGameEnd(pl app.GameEndedPayload) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	lines := pterm.Sprintfln("%s wins!", pterm.LightCyan(p.name(pl.Winner)))
	for seat := 0; seat < domain.NumPlayers; seat++ {
		lines += pterm.Sprintfln("%s: %d points", p.name(seat), pl.Scores[seat])
	}
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Sprintf(lines))
}

// RenderTable draws the table from the human seat's point of view:
// opponent panels on top, the incumbent hand in the middle, the human's
// cards at the bottom.
func (p *Presenter) RenderTable(snap domain.Snapshot, hand []domain.Card) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	var opponents []pterm.Panel
	for seat := 0; seat < domain.NumPlayers; seat++ {
		if seat == p.HumanSeat {
			continue
		}
		status := pterm.LightGreen("waiting")
		if snap.Passed[seat] {
			status = pterm.LightRed("passed")
		}
		if snap.Turn == seat {
			status = pterm.LightYellow("to act")
		}
		info := pterm.Sprintf("%s\n%d cards left", status, snap.CardsLeft[seat])
		opponents = append(opponents, pterm.Panel{Data: pbox.WithTitle(p.name(seat)).WithTitleTopLeft().Sprintf(info)})
	}

	middle := "table is open, any hand may lead"
	if snap.Incumbent != nil {
		middle = pterm.Sprintf("%s  %s\nplayed by %s", cardLine(snap.Incumbent.Cards), pterm.FgDarkGray.Sprint(snap.Incumbent.Category.String()), p.name(snap.IncumbentSeat))
	}
	if snap.OpeningThree {
		middle += "\nthe opening play must include the Three of Clubs"
	}
	board := pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprintf(middle)}

	own := pterm.Panel{Data: pbox.WithTitle(p.name(p.HumanSeat)).WithTitleTopLeft().Sprintf("%s", cardLine(hand))}

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		opponents,
		{board},
		{own},
	}).Render()
}

// cardLine formats cards with red suits colored, the way they look on a
// real table.
func cardLine(cards []domain.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		switch c.Suit {
		case domain.Diamonds, domain.Hearts:
			parts[i] = pterm.LightRed(c.String())
		default:
			parts[i] = c.String()
		}
	}
	return strings.Join(parts, " ")
}
