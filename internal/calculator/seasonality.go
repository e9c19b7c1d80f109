package calculator

import "time"

// SeasonalMultipliers models recurring marketplace demand by calendar month:
// New Year bump, post-holiday dip, summer and autumn sale events, holiday peak.
var SeasonalMultipliers = map[time.Month]float64{
	time.January:   1.15,
	time.February:  0.95,
	time.March:     1.0,
	time.April:     1.0,
	time.May:       1.05,
	time.June:      1.1,
	time.July:      1.2,
	time.August:    1.05,
	time.September: 0.95,
	time.October:   1.1,
	time.November:  1.35,
	time.December:  1.5,
}

// PromoThreshold marks months whose seasonal multiplier counts as a promotional peak.
const PromoThreshold = 1.2

// SeasonalMultiplier returns the multiplier for a calendar month.
func SeasonalMultiplier(m time.Month) float64 {
	if v, ok := SeasonalMultipliers[m]; ok {
		return v
	}
	return 1.0
}
