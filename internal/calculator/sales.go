package calculator

import (
	"fmt"
	"math"

	"ListingSentinel/internal/model"
)

const (
	salesVarianceBP = 1500 // ±15%
	trendPerMonth   = 0.02
)

// SalesHistory synthesizes monthly unit sales around the rank-derived baseline.
// Revenue is left at zero; see ApplyRevenue.
func (s *Synthesizer) SalesHistory(rank int, category model.Category, months int) ([]model.MonthlySalesPoint, error) {
	n, err := resolveMonths(months)
	if err != nil {
		return nil, err
	}
	baseline := float64(EstimateDemand(rank, category))

	history := make([]model.MonthlySalesPoint, 0, n)
	for i, m := range TrailingMonths(s.Now, n) {
		variance := s.fraction(-salesVarianceBP, salesVarianceBP)
		seasonal := SeasonalMultiplier(m.Month())
		trend := 1 + (float64(i)-float64(n)/2)*trendPerMonth

		units := math.Round(baseline * (1 + variance) * seasonal * trend)
		if units < 0 {
			units = 0
		}
		history = append(history, model.MonthlySalesPoint{
			Month: m.Format("2006-01"),
			Units: int(units),
		})
	}
	return history, nil
}

// ApplyRevenue returns a copy of history with Revenue = Units × unitPrice.
func ApplyRevenue(history []model.MonthlySalesPoint, unitPrice float64) ([]model.MonthlySalesPoint, error) {
	if math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) || unitPrice < 0 {
		return nil, fmt.Errorf("%w: unit price %v", model.ErrInvalidInput, unitPrice)
	}
	out := make([]model.MonthlySalesPoint, len(history))
	for i, p := range history {
		p.Revenue = float64(p.Units) * unitPrice
		out[i] = p
	}
	return out, nil
}
