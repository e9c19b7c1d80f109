package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ListingSentinel/internal/model"
)

func salesOf(units ...int) []model.MonthlySalesPoint {
	out := make([]model.MonthlySalesPoint, len(units))
	for i, u := range units {
		out[i] = model.MonthlySalesPoint{Units: u}
	}
	return out
}

func TestSMA(t *testing.T) {
	v, err := SMA([]float64{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = SMA([]float64{1}, 2)
	assert.Error(t, err)
	_, err = SMA([]float64{1}, 0)
	assert.Error(t, err)
}

func TestDemandTrend(t *testing.T) {
	trend, err := DemandTrend(salesOf(50, 100, 100, 100, 110, 120, 130), 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, trend, 1e-9)

	trend, err = DemandTrend(salesOf(200, 200, 100, 100), 2)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, trend, 1e-9)

	_, err = DemandTrend(salesOf(1, 2, 3), 2)
	assert.Error(t, err)
	_, err = DemandTrend(salesOf(0, 0, 5, 5), 2)
	assert.Error(t, err)
	_, err = DemandTrend(salesOf(1, 2), 0)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestPriceRangeAndPosition(t *testing.T) {
	lo, hi, err := PriceRange([]model.PricePoint{{Price: 20}, {Price: 15}, {Price: 25}})
	require.NoError(t, err)
	assert.Equal(t, 15.0, lo)
	assert.Equal(t, 25.0, hi)

	_, _, err = PriceRange(nil)
	assert.Error(t, err)

	tests := []struct {
		current, low, high, want float64
	}{
		{20, 15, 25, 0.5},
		{10, 15, 25, 0},
		{30, 15, 25, 1},
		{15, 15, 15, 0.5},
	}
	for _, tt := range tests {
		got, err := RangePosition(tt.current, tt.low, tt.high)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	_, err = RangePosition(1, 5, 2)
	assert.Error(t, err)
}
