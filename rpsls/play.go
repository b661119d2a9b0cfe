package rpsls

// Outcome is the result of a throw from the first hand's perspective.
type Outcome uint8

const (
	Win Outcome = iota
	Lose
	Draw
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Invert returns the outcome as seen from the other side.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Lose
	case Lose:
		return Win
	default:
		return o
	}
}

// Play resolves own against other. Draw only happens when both hands are
// the same.
func Play(own, other Hand) Outcome {
	switch {
	case own.Defeats(other):
		return Win
	case other.Defeats(own):
		return Lose
	default:
		return Draw
	}
}

// Describe renders a throw with the winner first, e.g. "Paper covers Rock".
// Equal hands render as "Rock ties Rock".
func Describe(own, other Hand) string {
	switch Play(own, other) {
	case Win:
		return own.String() + " " + Verb(own, other) + " " + other.String()
	case Lose:
		return other.String() + " " + Verb(other, own) + " " + own.String()
	default:
		return own.String() + " ties " + other.String()
	}
}
