package rpsls

import (
	"errors"
	"fmt"
	"strings"
)

// Hand is one of the five playable symbols. Values are ordered by
// enumeration position only; the order carries no strength.
type Hand uint8

const (
	Rock Hand = iota
	Paper
	Scissors
	Lizard
	Spock
)

// NumHands is the size of the closed enumeration.
const NumHands = 5

// ErrUnknownHand is returned when a name does not match any hand.
var ErrUnknownHand = errors.New("unknown hand")

var (
	allHands = [NumHands]Hand{Rock, Paper, Scissors, Lizard, Spock}

	handNames = [NumHands]string{
		Rock:     "Rock",
		Paper:    "Paper",
		Scissors: "Scissors",
		Lizard:   "Lizard",
		Spock:    "Spock",
	}

	// beatsTable lists the two hands each hand defeats. The relation is a
	// tournament: every distinct pair has exactly one winner.
	beatsTable = [NumHands][2]Hand{
		Rock:     {Lizard, Scissors},
		Paper:    {Spock, Rock},
		Scissors: {Paper, Lizard},
		Lizard:   {Spock, Paper},
		Spock:    {Rock, Scissors},
	}

	// verbs[winner][loser], empty where winner does not beat loser.
	verbs = [NumHands][NumHands]string{
		Rock:     {Lizard: "crushes", Scissors: "crushes"},
		Paper:    {Spock: "disproves", Rock: "covers"},
		Scissors: {Paper: "cuts", Lizard: "decapitates"},
		Lizard:   {Spock: "poisons", Paper: "eats"},
		Spock:    {Rock: "vaporizes", Scissors: "smashes"},
	}
)

// Hands returns every hand in enumeration order.
func Hands() []Hand {
	out := make([]Hand, NumHands)
	copy(out, allHands[:])
	return out
}

// Names returns the display names aligned index-for-index with Hands.
func Names() []string {
	out := make([]string, NumHands)
	copy(out, handNames[:])
	return out
}

// Valid reports whether h is one of the five hands.
func (h Hand) Valid() bool {
	return h < NumHands
}

// String returns the display name of the hand.
func (h Hand) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Hand(%d)", uint8(h))
	}
	return handNames[h]
}

// Beats returns the two hands h defeats.
func (h Hand) Beats() [2]Hand {
	return beatsTable[h]
}

// LosesTo returns the two hands that defeat h, in enumeration order.
func (h Hand) LosesTo() [2]Hand {
	var out [2]Hand
	n := 0
	for _, other := range allHands {
		if other.Defeats(h) {
			out[n] = other
			n++
		}
	}
	return out
}

// Defeats reports whether other is in h's beats-set.
func (h Hand) Defeats(other Hand) bool {
	b := beatsTable[h]
	return b[0] == other || b[1] == other
}

// Verb returns the action word for winner defeating loser, e.g. "crushes"
// for Rock over Scissors. It returns "" when winner does not beat loser.
func Verb(winner, loser Hand) string {
	if !winner.Valid() || !loser.Valid() {
		return ""
	}
	return verbs[winner][loser]
}

// ParseHand looks up a hand by display name, ignoring case and surrounding
// whitespace.
func ParseHand(name string) (Hand, error) {
	s := strings.TrimSpace(name)
	for _, h := range allHands {
		if strings.EqualFold(s, handNames[h]) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHand, name)
}

// MustParseHand is like ParseHand but panics on error. Intended for tests
// and static tables.
func MustParseHand(name string) Hand {
	h, err := ParseHand(name)
	if err != nil {
		panic(err)
	}
	return h
}
