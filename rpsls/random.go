package rpsls

// Source is the entropy a caller hands to RandomHand. *math/rand/v2.Rand
// satisfies it. Concurrent use of a single Source is governed by that
// Source's own contract.
type Source interface {
	IntN(n int) int
}

// RandomHand picks one of the five hands with equal probability.
func RandomHand(rng Source) Hand {
	return allHands[rng.IntN(NumHands)]
}
