package cli

import (
	"errors"
	"strings"

	"github.com/pterm/pterm"

	"bigtwo/internal/bot"
	"bigtwo/internal/domain"
)

// ErrEmptyMove is returned when the input holds no move at all.
var ErrEmptyMove = errors.New("empty move")

// ParseMove interprets console input as a move: "pass" (or "p") passes,
// anything else is read as space-separated card codes like "3C 4D 5H".
func ParseMove(input string) (bot.Move, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return bot.Move{}, ErrEmptyMove
	}
	switch strings.ToLower(s) {
	case "pass", "p":
		return bot.Move{Pass: true}, nil
	}
	cards, err := domain.ParseCards(s)
	if err != nil {
		return bot.Move{}, err
	}
	return bot.Move{Cards: cards}, nil
}

// PromptFunc asks the player for a line of input.
type PromptFunc func(label string) (string, error)

// TerminalPrompt reads a move from an interactive terminal.
func TerminalPrompt(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(label).Show()
}
