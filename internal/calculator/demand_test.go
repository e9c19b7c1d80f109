package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ListingSentinel/internal/model"
)

func TestEstimateDemand_Bands(t *testing.T) {
	tests := []struct {
		rank     int
		category model.Category
		want     int
	}{
		{3, model.CategoryElectronics, 144000},
		{3, model.CategoryUnknown, 120000},
		{10, model.CategoryUnknown, 50000},
		{11, model.CategoryUnknown, 45600},
		{100, model.CategoryUnknown, 10000},
		{101, model.CategoryUnknown, 9192},
		{1000, model.CategoryUnknown, 2000},
		{1001, model.CategoryUnknown, 1850},
		{10000, model.CategoryUnknown, 500},
		{10001, model.CategoryUnknown, 400},
		{50000, model.CategoryUnknown, 100},
		{5000000, model.CategoryUnknown, 100},
		{500, model.CategoryBooks, 4200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateDemand(tt.rank, tt.category), "rank %d %s", tt.rank, tt.category)
	}
}

func TestEstimateDemand_UnknownRank(t *testing.T) {
	assert.Equal(t, 0, EstimateDemand(0, model.CategoryElectronics))
	assert.Equal(t, 0, EstimateDemand(-7, model.CategoryElectronics))
}

func TestEstimateDemand_MonotoneInRank(t *testing.T) {
	for _, c := range append(model.KnownCategories, model.CategoryUnknown) {
		prev := EstimateDemand(1, c)
		for rank := 2; rank <= 30000; rank++ {
			cur := EstimateDemand(rank, c)
			if cur > prev {
				t.Fatalf("%s: demand rose from %d to %d at rank %d", c, prev, cur, rank)
			}
			prev = cur
		}
	}
}

func TestCategoryMultiplier_Default(t *testing.T) {
	assert.Equal(t, 1.2, CategoryMultiplier(model.CategoryElectronics))
	assert.Equal(t, DefaultCategoryMultiplier, CategoryMultiplier(model.CategoryUnknown))
	assert.Equal(t, DefaultCategoryMultiplier, CategoryMultiplier(model.Category("Garden")))
}
