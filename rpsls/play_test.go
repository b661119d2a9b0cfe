package rpsls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		own, other Hand
		want       Outcome
	}{
		{Rock, Scissors, Win},
		{Rock, Paper, Lose},
		{Rock, Rock, Draw},
		{Rock, Lizard, Win},
		{Rock, Spock, Lose},

		{Paper, Rock, Win},
		{Paper, Scissors, Lose},
		{Paper, Paper, Draw},
		{Paper, Lizard, Lose},
		{Paper, Spock, Win},

		{Scissors, Paper, Win},
		{Scissors, Rock, Lose},
		{Scissors, Scissors, Draw},
		{Scissors, Lizard, Win},
		{Scissors, Spock, Lose},

		{Lizard, Paper, Win},
		{Lizard, Spock, Win},
		{Lizard, Rock, Lose},
		{Lizard, Scissors, Lose},
		{Lizard, Lizard, Draw},

		{Spock, Paper, Lose},
		{Spock, Rock, Win},
		{Spock, Lizard, Lose},
		{Spock, Spock, Draw},
		{Spock, Scissors, Win},
	}

	for _, tt := range tests {
		t.Run(tt.own.String()+"_vs_"+tt.other.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Play(tt.own, tt.other))
		})
	}
}

func TestPlayReflexiveDraw(t *testing.T) {
	t.Parallel()
	for _, h := range Hands() {
		assert.Equal(t, Draw, Play(h, h), "%v vs itself", h)
	}
}

func TestPlaySymmetry(t *testing.T) {
	t.Parallel()
	for _, a := range Hands() {
		for _, b := range Hands() {
			if a == b {
				continue
			}
			ab, ba := Play(a, b), Play(b, a)
			assert.NotEqual(t, Draw, ab, "%v vs %v", a, b)
			assert.Equal(t, ab == Win, ba == Lose, "%v vs %v", a, b)
			assert.Equal(t, ab.Invert(), ba, "%v vs %v", a, b)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Win", Win.String())
	assert.Equal(t, "Lose", Lose.String())
	assert.Equal(t, "Draw", Draw.String())
	assert.Equal(t, "Unknown", Outcome(9).String())
	assert.Equal(t, Draw, Draw.Invert())
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Rock crushes Scissors", Describe(Rock, Scissors))
	assert.Equal(t, "Paper covers Rock", Describe(Rock, Paper))
	assert.Equal(t, "Spock vaporizes Rock", Describe(Spock, Rock))
	assert.Equal(t, "Lizard poisons Spock", Describe(Spock, Lizard))
	assert.Equal(t, "Lizard ties Lizard", Describe(Lizard, Lizard))
}

func BenchmarkPlay(b *testing.B) {
	hands := Hands()
	for i := 0; i < b.N; i++ {
		_ = Play(hands[i%NumHands], hands[(i/NumHands)%NumHands])
	}
}
