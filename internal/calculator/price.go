package calculator

import (
	"fmt"
	"math"

	"ListingSentinel/internal/model"
)

const (
	priceDownBP      = -1500 // up to 15% below reference
	priceUpBP        = 500   // up to 5% above reference
	markdownMonths   = 2
	markdownFactor   = 0.85
	priceFloorFactor = 0.7
)

// PriceHistory synthesizes monthly prices around a reference price. The last
// two months carry a holiday markdown; no price falls below 70% of the reference.
func (s *Synthesizer) PriceHistory(referencePrice float64, months int) ([]model.PricePoint, error) {
	if math.IsNaN(referencePrice) || math.IsInf(referencePrice, 0) || referencePrice <= 0 {
		return nil, fmt.Errorf("%w: reference price %v", model.ErrInvalidInput, referencePrice)
	}
	n, err := resolveMonths(months)
	if err != nil {
		return nil, err
	}

	floor := referencePrice * priceFloorFactor
	history := make([]model.PricePoint, 0, n)
	for i, m := range TrailingMonths(s.Now, n) {
		price := referencePrice * (1 + s.fraction(priceDownBP, priceUpBP))
		if i >= n-markdownMonths {
			price *= markdownFactor
		}
		price = math.Round(price*100) / 100
		if price < floor {
			price = floor
		}
		history = append(history, model.PricePoint{
			Date:  m.Format("2006-01-02"),
			Price: price,
		})
	}
	return history, nil
}
