// Package runid generates time-ordered identifiers for simulation runs.
package runid

import (
	crand "crypto/rand"
	"fmt"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// RandSource supplies the random bits. *math/rand/v2.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generator builds UUIDv7 run IDs from an injected clock and source.
type Generator struct {
	clock quartz.Clock
	rng   RandSource
}

// NewGenerator returns a generator. A nil clock uses wall time and a nil
// source uses crypto/rand.
func NewGenerator(clock quartz.Clock, rng RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate returns a new run ID in canonical UUID form.
func (g *Generator) Generate() string {
	return g.uuid().String()
}

// uuid lays out 48 bits of Unix milliseconds followed by 74 random bits,
// with the version 7 and RFC 4122 variant bits set.
func (g *Generator) uuid() uuid.UUID {
	var id uuid.UUID

	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.rng != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rng.IntN(256))
		}
	} else if _, err := crand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}

// Validate checks that id parses as a version 7 UUID.
func Validate(id string) error {
	u, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid run ID %q: %w", id, err)
	}
	if u.Version() != 7 {
		return fmt.Errorf("run ID %q has version %d, want 7", id, u.Version())
	}
	return nil
}
