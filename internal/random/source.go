package random

import (
	"math/rand/v2"
	"time"
)

// Source yields integers in an inclusive range. Implementations are not safe
// for concurrent use; construct one per analysis.
type Source interface {
	Next(min, max int) int
}

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Seeded is a linear-congruential source keyed by an identifier, so the same
// identifier always replays the same sequence.
type Seeded struct {
	seed int64
}

// NewSeeded derives the seed from the sum of the identifier's character codes.
func NewSeeded(identifier string) *Seeded {
	var seed int64
	for _, r := range identifier {
		seed += int64(r)
	}
	return &Seeded{seed: seed % lcgModulus}
}

// Next advances the generator and scales the result into [min, max].
func (s *Seeded) Next(min, max int) int {
	if min > max {
		min, max = max, min
	}
	s.seed = (s.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	frac := float64(s.seed) / lcgModulus
	return int(frac*float64(max-min+1)) + min
}

// Live is an unconstrained source for estimates layered on real product facts.
type Live struct {
	rng *rand.Rand
}

// NewLive returns a Live source seeded from the clock.
func NewLive() *Live {
	now := uint64(time.Now().UnixNano())
	return &Live{rng: rand.New(rand.NewPCG(now, now>>17|1))}
}

func (l *Live) Next(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return l.rng.IntN(max-min+1) + min
}
