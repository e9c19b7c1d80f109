package calculator

import (
	"fmt"
	"math"

	"ListingSentinel/internal/model"
)

const (
	rankSwing     = 0.2  // delta drawn within ±20% of the current rank
	promoRankPull = 0.15 // promotional months improve rank by 15%
)

// RankHistory synthesizes monthly ranks around the current rank. Promotional
// months pull the rank down (better). Every rank is at least 1.
func (s *Synthesizer) RankHistory(rank int, months int) ([]model.RankPoint, error) {
	if rank < 1 {
		return nil, fmt.Errorf("%w: rank %d must be >= 1", model.ErrInvalidInput, rank)
	}
	n, err := resolveMonths(months)
	if err != nil {
		return nil, err
	}

	swing := int(math.Floor(float64(rank) * rankSwing))
	pull := int(math.Floor(float64(rank) * promoRankPull))

	history := make([]model.RankPoint, 0, n)
	for _, m := range TrailingMonths(s.Now, n) {
		r := rank + s.Rand.Next(-swing, swing)
		if SeasonalMultiplier(m.Month()) > PromoThreshold {
			r -= pull
		}
		if r < 1 {
			r = 1
		}
		history = append(history, model.RankPoint{
			Date: m.Format("2006-01-02"),
			Rank: r,
		})
	}
	return history, nil
}
