package sentiment

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"ListingSentinel/internal/model"
)

// Analyze derives rating distribution, sentiment split, themes and fake-review
// risk from raw reviews. An empty list yields DefaultAnalysis.
func Analyze(reviews []model.ReviewRecord) model.ReviewAnalysis {
	if len(reviews) == 0 {
		return DefaultAnalysis()
	}

	var pos, neg int
	for _, r := range reviews {
		switch s := ScoreReview(r); {
		case s > 0:
			pos++
		case s < 0:
			neg++
		}
	}
	positivePct, neutralPct, negativePct := splitPercent(pos, neg, len(reviews))
	themesPos, themesNeg := ExtractThemes(reviews)

	score := FakeReviewScore(reviews)
	return model.ReviewAnalysis{
		Distribution: Distribution(reviews),
		Sentiment: model.SentimentSummary{
			PositivePct:    positivePct,
			NeutralPct:     neutralPct,
			NegativePct:    negativePct,
			ThemesPositive: themesPos,
			ThemesNegative: themesNeg,
		},
		FakeReviewRisk: model.FakeReviewAssessment{Score: score, Level: RiskLevelFor(score)},
		ReviewCount:    len(reviews),
	}
}

// DefaultAnalysis is the advisory baseline used when no reviews are available.
func DefaultAnalysis() model.ReviewAnalysis {
	return model.ReviewAnalysis{
		Distribution: model.NewRatingDistribution(),
		Sentiment: model.SentimentSummary{
			PositivePct:    75,
			NeutralPct:     15,
			NegativePct:    10,
			ThemesPositive: []string{"Quality", "Value", "Performance"},
			ThemesNegative: []string{"Price", "Packaging"},
		},
		FakeReviewRisk: model.FakeReviewAssessment{Score: 15, Level: model.RiskLow},
	}
}

// Distribution tallies rounded ratings; anything outside 1-5 is dropped.
func Distribution(reviews []model.ReviewRecord) model.RatingDistribution {
	dist := model.NewRatingDistribution()
	for _, r := range reviews {
		star := int(math.Round(r.Rating))
		if star >= 1 && star <= 5 {
			dist[star]++
		}
	}
	return dist
}

// ScoreReview returns the lexicon score of a review, weighted by its rating.
func ScoreReview(r model.ReviewRecord) int {
	text := strings.ToLower(reviewText(r))
	score := 0
	for _, re := range positivePatterns {
		score += len(re.FindAllStringIndex(text, -1))
	}
	for _, re := range negativePatterns {
		score -= len(re.FindAllStringIndex(text, -1))
	}
	switch {
	case r.Rating >= positiveRating:
		score += ratingBonus
	case r.Rating <= negativeRating:
		score -= ratingBonus
	}
	return score
}

// splitPercent rounds the positive and negative shares and leaves neutral as
// the remainder, so the three always total 100.
func splitPercent(pos, neg, total int) (positive, neutral, negative int) {
	positive = int(math.Round(float64(pos) / float64(total) * 100))
	negative = int(math.Round(float64(neg) / float64(total) * 100))
	if over := positive + negative - 100; over > 0 {
		if positive >= negative {
			positive -= over
		} else {
			negative -= over
		}
	}
	return positive, 100 - positive - negative, negative
}

type themeCount struct {
	label string
	count int
}

// ExtractThemes counts theme mentions, using the positive table for reviews
// rated 4+ and the negative table otherwise. Ties keep table order.
func ExtractThemes(reviews []model.ReviewRecord) (positive, negative []string) {
	posCounts := make([]int, len(PositiveThemes))
	negCounts := make([]int, len(NegativeThemes))

	for _, r := range reviews {
		text := strings.ToLower(reviewText(r))
		themes, counts := NegativeThemes, negCounts
		if r.Rating >= positiveRating {
			themes, counts = PositiveThemes, posCounts
		}
		for i, theme := range themes {
			if strings.Contains(text, theme) {
				counts[i]++
			}
		}
	}
	return topThemes(PositiveThemes, posCounts, MaxPositiveThemes),
		topThemes(NegativeThemes, negCounts, MaxNegativeThemes)
}

func topThemes(labels []string, counts []int, limit int) []string {
	var seen []themeCount
	for i, c := range counts {
		if c > 0 {
			seen = append(seen, themeCount{labels[i], c})
		}
	}
	sort.SliceStable(seen, func(i, j int) bool {
		return seen[i].count > seen[j].count
	})
	if len(seen) > limit {
		seen = seen[:limit]
	}
	out := make([]string, len(seen))
	for i, tc := range seen {
		out[i] = tc.label
	}
	return out
}

// FakeReviewScore averages per-review suspicion over the list, scaled to 0-100.
func FakeReviewScore(reviews []model.ReviewRecord) int {
	if len(reviews) == 0 {
		return 0
	}
	var weight float64
	for _, r := range reviews {
		weight += suspicion(r)
	}
	score := math.Round(weight / float64(len(reviews)) * 100)
	return int(math.Min(100, score))
}

func suspicion(r model.ReviewRecord) float64 {
	text := reviewText(r)
	length := utf8.RuneCountInString(text)

	var w float64
	if r.Rating == 5 && length < shortFiveStarLen {
		w += WeightShortFiveStar
	}
	if length < genericPraiseLen && strings.Contains(strings.ToLower(text), genericPraise) {
		w += WeightGenericPraise
	}
	if strings.Count(text, "!") > maxExclamations {
		w += WeightExclamations
	}
	if length > allCapsMinLen && text == strings.ToUpper(text) {
		w += WeightAllCaps
	}
	return w
}

// RiskLevelFor buckets a fake-review score.
func RiskLevelFor(score int) model.RiskLevel {
	switch {
	case score < 20:
		return model.RiskLow
	case score < 50:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

func reviewText(r model.ReviewRecord) string {
	return r.Title + " " + r.Text
}
