package domain

// fiverStrength is the fixed ordering of the five-card categories. A higher
// category beats a lower one outright, regardless of ranking key.
func fiverStrength(c Category) (int, bool) {
	switch c {
	case Straight:
		return 0, true
	case Flush:
		return 1, true
	case FullHouse:
		return 2, true
	case FourPlusKicker:
		return 3, true
	case StraightFlush:
		return 4, true
	}
	return 0, false
}

// bombStrength orders the bomb families against one another.
func bombStrength(c Category) int {
	switch c {
	case Quad:
		return 0
	case FourPlusKicker:
		return 1
	case StraightFlush:
		return 2
	}
	return -1
}

// CheckPlay decides whether challenger may legally be played over incumbent.
// A nil incumbent means the challenger opens the trick, which is always
// legal. A non-nil error says specifically why the play is rejected.
func CheckPlay(challenger Hand, incumbent *Hand) error {
	if incumbent == nil {
		return nil
	}

	if challenger.Bomb {
		return checkBomb(challenger, incumbent)
	}

	if challenger.Size() != incumbent.Size() {
		return ErrWrongHandShape
	}

	cs, cok := fiverStrength(challenger.Category)
	is, iok := fiverStrength(incumbent.Category)
	if cok && iok && cs != is {
		if cs > is {
			return nil
		}
		return ErrDoesNotBeat
	}
	if challenger.Category != incumbent.Category {
		return ErrWrongHandShape
	}

	if challenger.Key > incumbent.Key {
		return nil
	}
	return ErrDoesNotBeat
}

// checkBomb applies the bomb exceptions: a bomb never plays against a lone
// card, beats any non-bomb holding no more cards than it, and settles
// bomb-versus-bomb by bomb family then key.
func checkBomb(challenger Hand, incumbent *Hand) error {
	if incumbent.Category == Lone {
		return ErrBombOnLone
	}

	if incumbent.Bomb {
		cb, ib := bombStrength(challenger.Category), bombStrength(incumbent.Category)
		if cb != ib {
			if cb > ib {
				return nil
			}
			return ErrDoesNotBeat
		}
		if challenger.Key > incumbent.Key {
			return nil
		}
		return ErrDoesNotBeat
	}

	if incumbent.Size() > challenger.Size() {
		return ErrWrongHandShape
	}
	return nil
}

// Beats reports whether challenger legally beats incumbent.
func Beats(challenger Hand, incumbent *Hand) bool {
	return CheckPlay(challenger, incumbent) == nil
}
