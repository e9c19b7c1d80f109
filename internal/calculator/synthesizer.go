package calculator

import (
	"time"

	"ListingSentinel/internal/random"
)

// Synthesizer expands baseline figures into monthly histories. The random
// source decides whether output is reproducible (random.Seeded) or not
// (random.Live).
type Synthesizer struct {
	Rand random.Source
	Now  time.Time
}

// NewSynthesizer creates a Synthesizer whose month window ends at now.
func NewSynthesizer(src random.Source, now time.Time) *Synthesizer {
	return &Synthesizer{Rand: src, Now: now}
}

// fraction draws a value in [minBP, maxBP] basis points and returns it as a fraction.
func (s *Synthesizer) fraction(minBP, maxBP int) float64 {
	return float64(s.Rand.Next(minBP, maxBP)) / 10000
}
