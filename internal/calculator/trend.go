package calculator

import (
	"errors"
	"fmt"

	"ListingSentinel/internal/model"
)

// TrendWindow is the number of months compared by DemandTrend.
const TrendWindow = 3

// SMA computes the simple moving average of the last period values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// DemandTrend compares average units of the last window months with the window
// before it and returns the relative change (0.1 means 10% up).
func DemandTrend(history []model.MonthlySalesPoint, window int) (float64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("%w: window must be positive", model.ErrInvalidInput)
	}
	if len(history) < 2*window {
		return 0, fmt.Errorf("need %d months of history, have %d", 2*window, len(history))
	}
	units := make([]float64, len(history))
	for i, p := range history {
		units[i] = float64(p.Units)
	}
	recent, err := SMA(units, window)
	if err != nil {
		return 0, err
	}
	prior, err := SMA(units[:len(units)-window], window)
	if err != nil {
		return 0, err
	}
	if prior == 0 {
		return 0, errors.New("no units in prior window")
	}
	return recent/prior - 1, nil
}

// PriceRange returns the lowest and highest price in the history.
func PriceRange(history []model.PricePoint) (low, high float64, err error) {
	if len(history) == 0 {
		return 0, 0, errors.New("no price points provided")
	}
	low, high = history[0].Price, history[0].Price
	for _, p := range history[1:] {
		low = min(low, p.Price)
		high = max(high, p.Price)
	}
	return low, high, nil
}

// RangePosition returns where current sits within [low, high] (0.0~1.0).
func RangePosition(current, low, high float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
