// Package rpsls implements the rule engine for rock-paper-scissors-lizard-spock.
//
// The five hands form a tournament: each hand beats exactly two others,
// loses to the remaining two and ties itself. Play resolves a pair of hands
// to an Outcome and RandomHand draws a hand from a caller-supplied Source.
// All tables are fixed at compile time and safe for concurrent use.
package rpsls
