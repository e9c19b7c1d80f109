package sentiment

import "ListingSentinel/internal/model"

// typicalStarShares is the share of reviews per star for an established listing.
var typicalStarShares = map[int]float64{5: 0.71, 4: 0.21, 3: 0.05, 2: 0.02, 1: 0.01}

// EstimateFromTotals builds an analysis from a headline review count when no
// review text is available. Counts are floored per star.
func EstimateFromTotals(totalReviews int) model.ReviewAnalysis {
	if totalReviews <= 0 {
		return DefaultAnalysis()
	}
	dist := model.NewRatingDistribution()
	for star, share := range typicalStarShares {
		dist[star] = int(float64(totalReviews) * share)
	}
	return model.ReviewAnalysis{
		Distribution: dist,
		Sentiment: model.SentimentSummary{
			PositivePct:    78,
			NeutralPct:     15,
			NegativePct:    7,
			ThemesPositive: []string{"Sound quality", "Comfort", "Battery life", "Build quality"},
			ThemesNegative: []string{"Price", "Fit issues"},
		},
		FakeReviewRisk: model.FakeReviewAssessment{Score: 12, Level: model.RiskLow},
		ReviewCount:    totalReviews,
		Estimated:      true,
	}
}
