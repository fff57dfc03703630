package domain

import "errors"

// Classification errors: the selected cards do not form a legal hand.
var (
	ErrWrongCardCount         = errors.New("selection must be 1, 2, 3 or 5 cards")
	ErrMismatchedRanks        = errors.New("cards do not share a rank")
	ErrNoMatchingFiverPattern = errors.New("five cards match no hand category")
)

// Play errors: the hand is well formed but cannot be played right now.
// All of these leave game state untouched; the caller retries with new input.
var (
	ErrNotPlayersTurn      = errors.New("not this player's turn")
	ErrCardsNotInHand      = errors.New("player does not hold these cards")
	ErrWrongHandShape      = errors.New("card count does not match the incumbent hand")
	ErrDoesNotBeat         = errors.New("hand does not beat the incumbent")
	ErrMissingOpeningThree = errors.New("first play of the game must include the three of clubs")
	ErrBombOnLone          = errors.New("a bomb cannot be played against a lone card")
	ErrOpenerMustPlay      = errors.New("the trick opener cannot pass")
)
