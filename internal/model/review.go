package model

// ReviewRecord is a single customer review as supplied by a product source.
type ReviewRecord struct {
	Rating       float64 `json:"rating" yaml:"rating"`
	Title        string  `json:"title" yaml:"title"`
	Text         string  `json:"text" yaml:"text"`
	Date         string  `json:"date" yaml:"date"`
	Verified     bool    `json:"verified" yaml:"verified"`
	HelpfulVotes int     `json:"helpful_votes" yaml:"helpful_votes"`
}

// RatingDistribution maps a star value (1-5) to a review count.
type RatingDistribution map[int]int

// NewRatingDistribution returns a distribution with all five stars at zero.
func NewRatingDistribution() RatingDistribution {
	return RatingDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
}

// Total returns the number of counted reviews.
func (d RatingDistribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// SentimentSummary is the three-way sentiment split plus top themes.
// The three percentages always sum to 100.
type SentimentSummary struct {
	PositivePct    int      `json:"positive"`
	NeutralPct     int      `json:"neutral"`
	NegativePct    int      `json:"negative"`
	ThemesPositive []string `json:"themes_positive"`
	ThemesNegative []string `json:"themes_negative"`
}

// RiskLevel buckets a fake-review score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// FakeReviewAssessment is a heuristic suspicion score, not a verified classification.
type FakeReviewAssessment struct {
	Score int       `json:"score"`
	Level RiskLevel `json:"level"`
}

// ReviewAnalysis is the output of the review analyzer.
type ReviewAnalysis struct {
	Distribution   RatingDistribution   `json:"distribution"`
	Sentiment      SentimentSummary     `json:"sentiment"`
	FakeReviewRisk FakeReviewAssessment `json:"fake_review_risk"`
	ReviewCount    int                  `json:"review_count"`
	// Estimated is set when the analysis was derived from headline totals
	// rather than review text.
	Estimated bool `json:"estimated"`
}
