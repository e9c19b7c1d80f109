package calculator

import (
	"fmt"
	"time"

	"ListingSentinel/internal/model"
)

// DefaultMonths is the history length used when a caller passes 0.
const DefaultMonths = 12

// TrailingMonths returns the first day of each of the n calendar months ending
// with now's month, oldest first.
func TrailingMonths(now time.Time, n int) []time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		out[i] = first.AddDate(0, i-(n-1), 0)
	}
	return out
}

func resolveMonths(months int) (int, error) {
	if months < 0 {
		return 0, fmt.Errorf("%w: month count %d is negative", model.ErrInvalidInput, months)
	}
	if months == 0 {
		return DefaultMonths, nil
	}
	return months, nil
}
