package internal

import (
	"testing"

	"bigtwo/internal/domain"
)

func cards(t *testing.T, s string) []domain.Card {
	t.Helper()
	out, err := domain.ParseCards(s)
	if err != nil {
		t.Fatalf("bad test cards %q: %v", s, err)
	}
	return out
}

func classified(t *testing.T, s string) domain.Hand {
	t.Helper()
	h, err := domain.Classify(cards(t, s))
	if err != nil {
		t.Fatalf("classify %q: %v", s, err)
	}
	return h
}

func TestValidMovesLeading(t *testing.T) {
	hand := cards(t, "3C 3D 5H 6S 7D")
	moves := ValidMoves(domain.Snapshot{}, hand)

	if len(moves) == 0 {
		t.Fatal("no moves when leading")
	}
	// 5 singles + the pair of threes are among the options.
	singles, pairs := 0, 0
	for _, m := range moves {
		switch m.Category {
		case domain.Lone:
			singles++
		case domain.Pair:
			pairs++
		}
	}
	if singles != 5 || pairs != 1 {
		t.Errorf("singles=%d pairs=%d, want 5 and 1", singles, pairs)
	}
}

func TestValidMovesAllLegal(t *testing.T) {
	incumbent := classified(t, "8D 8S")
	snap := domain.Snapshot{Incumbent: &incumbent}
	hand := cards(t, "3C 5H 8C 8H 9D 9S QC QD QH 2S")

	moves := ValidMoves(snap, hand)
	if len(moves) == 0 {
		t.Fatal("expected pair answers")
	}
	for _, m := range moves {
		if err := domain.CheckPlay(m, snap.Incumbent); err != nil {
			t.Errorf("generator produced illegal move %s: %v", m, err)
		}
	}
	// 8C 8H is suit-inferior to the incumbent 8D 8S and must be absent.
	for _, m := range moves {
		if m.Category == domain.Pair && m.Key <= incumbent.Key {
			t.Errorf("losing pair generated: %s", m)
		}
	}
}

func TestValidMovesRespectsOpeningThree(t *testing.T) {
	snap := domain.Snapshot{OpeningThree: true}
	hand := cards(t, "3C 4D 5H 9S")

	moves := ValidMoves(snap, hand)
	if len(moves) == 0 {
		t.Fatal("no opening moves")
	}
	for _, m := range moves {
		if !m.Contains(domain.ThreeOfClubs) {
			t.Errorf("opening move without 3C: %s", m)
		}
	}
}

func TestValidMovesIncludesBombAnswers(t *testing.T) {
	incumbent := classified(t, "2H 2S")
	snap := domain.Snapshot{Incumbent: &incumbent}
	hand := cards(t, "6C 6D 6H 6S 9D")

	moves := ValidMoves(snap, hand)
	foundQuad := false
	for _, m := range moves {
		if m.Category == domain.Quad {
			foundQuad = true
		}
	}
	if !foundQuad {
		t.Error("quad bomb not offered against pair of twos")
	}
}

func TestValidMovesNoneWhenOutgunned(t *testing.T) {
	incumbent := classified(t, "2S")
	snap := domain.Snapshot{Incumbent: &incumbent}
	hand := cards(t, "3D 4H 5S")

	if moves := ValidMoves(snap, hand); len(moves) != 0 {
		t.Errorf("expected no legal moves, got %d", len(moves))
	}
}
