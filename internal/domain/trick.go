package domain

// NumPlayers is the fixed seat count. Turn order wraps counter-clockwise
// through seat indices 0..3.
const NumPlayers = 4

// TrickState tracks the lifecycle of a single trick.
type TrickState int32

const (
	// AwaitingOpen means no cards have been played this trick.
	AwaitingOpen TrickState = iota
	// InProgress means at least one play was made and two or more seats
	// remain active.
	InProgress
	// Resolved means exactly one active seat remains, or the leading seat
	// emptied its hand.
	Resolved
)

func (s TrickState) String() string {
	switch s {
	case AwaitingOpen:
		return "awaiting open"
	case InProgress:
		return "in progress"
	case Resolved:
		return "resolved"
	}
	return "unknown"
}

// Trick is the state machine for one trick: the incumbent hand and its
// owner, which seats have passed, and whose turn it is. A passed seat
// never re-enters the trick.
type Trick struct {
	state         TrickState
	turn          int
	incumbent     *Hand
	incumbentSeat int
	passed        [NumPlayers]bool
	openWithThree bool
}

// NewTrick starts a trick with the given opening seat. openWithThree is
// set only for the first trick of a game, forcing the opening hand to
// contain the Three of Clubs.
func NewTrick(opener int, openWithThree bool) *Trick {
	return &Trick{turn: opener, incumbentSeat: -1, openWithThree: openWithThree}
}

// State returns the trick's lifecycle state.
func (t *Trick) State() TrickState { return t.state }

// Turn returns the seat whose decision is pending.
func (t *Trick) Turn() int { return t.turn }

// HasPassed reports whether the seat is out of this trick.
func (t *Trick) HasPassed(seat int) bool { return t.passed[seat] }

// Incumbent returns a copy of the currently winning hand, or nil before
// the trick's first play.
func (t *Trick) Incumbent() *Hand {
	if t.incumbent == nil {
		return nil
	}
	h := *t.incumbent
	h.Cards = append([]Card(nil), t.incumbent.Cards...)
	return &h
}

// IncumbentSeat returns the seat holding the incumbent hand, or -1.
func (t *Trick) IncumbentSeat() int { return t.incumbentSeat }

// NeedsOpeningThree reports whether the next play must contain the Three
// of Clubs.
func (t *Trick) NeedsOpeningThree() bool {
	return t.openWithThree && t.state == AwaitingOpen
}

// Play validates seat's attempt to play cards out of holding and, if
// legal, installs it as the new incumbent and advances the turn. On any
// error the trick is unchanged and the caller may retry.
func (t *Trick) Play(seat int, cards, holding []Card) (Hand, error) {
	if t.state == Resolved || seat != t.turn {
		return Hand{}, ErrNotPlayersTurn
	}

	hand, err := Classify(cards)
	if err != nil {
		return Hand{}, err
	}
	if !holdsAll(holding, hand.Cards) {
		return Hand{}, ErrCardsNotInHand
	}
	if t.NeedsOpeningThree() && !hand.Contains(ThreeOfClubs) {
		return Hand{}, ErrMissingOpeningThree
	}
	if err := CheckPlay(hand, t.incumbent); err != nil {
		return Hand{}, err
	}

	t.incumbent = &hand
	t.incumbentSeat = seat
	t.state = InProgress
	t.turn = t.nextSeat(seat)
	return hand, nil
}

// Pass marks the seat inactive for the rest of the trick. A trick opener
// cannot pass. When exactly one active seat remains the trick resolves
// with that seat as winner.
func (t *Trick) Pass(seat int) error {
	if t.state == Resolved || seat != t.turn {
		return ErrNotPlayersTurn
	}
	if t.state == AwaitingOpen {
		return ErrOpenerMustPlay
	}

	t.passed[seat] = true
	if t.activeCount() == 1 {
		t.state = Resolved
		t.turn = t.incumbentSeat
		return nil
	}
	t.turn = t.nextSeat(seat)
	return nil
}

// Winner returns the trick winner once the trick has resolved.
func (t *Trick) Winner() (int, bool) {
	if t.state != Resolved {
		return -1, false
	}
	return t.incumbentSeat, true
}

// nextSeat advances counter-clockwise, skipping seats that have passed.
func (t *Trick) nextSeat(seat int) int {
	for i := 1; i < NumPlayers; i++ {
		next := (seat + i) % NumPlayers
		if !t.passed[next] {
			return next
		}
	}
	return seat
}

func (t *Trick) activeCount() int {
	n := 0
	for _, passed := range t.passed {
		if !passed {
			n++
		}
	}
	return n
}

// holdsAll reports whether holding covers every card in cards, counting
// multiplicity so a card cannot be played twice in one selection.
func holdsAll(holding, cards []Card) bool {
	counts := make(map[Card]int, len(holding))
	for _, c := range holding {
		counts[c]++
	}
	for _, c := range cards {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}
