package calculator

import (
	"math"

	"ListingSentinel/internal/model"
)

// CategoryMultipliers scales rank-derived demand per category.
var CategoryMultipliers = map[model.Category]float64{
	model.CategoryElectronics:    1.2,
	model.CategoryCellPhones:     1.1,
	model.CategoryHomeKitchen:    0.9,
	model.CategoryBooks:          0.7,
	model.CategoryToysGames:      1.0,
	model.CategorySportsOutdoors: 0.8,
	model.CategoryBeauty:         1.0,
	model.CategoryClothing:       0.9,
	model.CategoryHealth:         0.95,
	model.CategoryOffice:         0.85,
}

// DefaultCategoryMultiplier applies to CategoryUnknown and anything unlisted.
const DefaultCategoryMultiplier = 1.0

// CategoryMultiplier returns the demand multiplier for a category.
func CategoryMultiplier(c model.Category) float64 {
	if m, ok := CategoryMultipliers[c]; ok {
		return m
	}
	return DefaultCategoryMultiplier
}

// EstimateDemand converts a sales rank into estimated monthly units.
// A rank <= 0 means the rank is unknown and yields 0.
func EstimateDemand(rank int, category model.Category) int {
	if rank <= 0 {
		return 0
	}
	units := math.Round(baseDemand(rank) * CategoryMultiplier(category))
	if units < 0 {
		return 0
	}
	return int(units)
}

// baseDemand is piecewise linear in rank, each band steeper than the next.
func baseDemand(rank int) float64 {
	r := float64(rank)
	switch {
	case rank <= 10:
		return 150000 - r*10000
	case rank <= 100:
		return 50000 - r*400
	case rank <= 1000:
		return 10000 - r*8
	case rank <= 10000:
		return 2000 - r*0.15
	default:
		return math.Max(100, 500-r*0.01)
	}
}
