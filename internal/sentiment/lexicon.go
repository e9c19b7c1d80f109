package sentiment

import "regexp"

// PositiveWords each add +1 per whole-word occurrence.
var PositiveWords = []string{
	"excellent", "amazing", "great", "love", "perfect", "best", "awesome",
	"fantastic", "wonderful", "superb", "outstanding", "impressive", "quality",
	"recommend", "satisfied", "happy", "good", "nice", "comfortable", "easy",
}

// NegativeWords each add -1 per whole-word occurrence.
var NegativeWords = []string{
	"bad", "terrible", "awful", "poor", "worst", "horrible", "disappointing",
	"useless", "waste", "broken", "defective", "cheap", "fail", "problem",
	"issue", "difficult", "uncomfortable", "hate", "regret", "returned",
}

// PositiveThemes are counted in reviews rated 4 stars or more.
var PositiveThemes = []string{
	"quality", "value", "price", "shipping", "packaging", "design",
	"performance", "durability", "comfort", "ease of use", "features",
	"battery life", "sound quality", "build quality", "customer service",
}

// NegativeThemes are counted in reviews rated below 4 stars.
var NegativeThemes = []string{
	"price", "quality", "durability", "fit", "size", "delivery",
	"packaging", "instructions", "customer service", "defects",
	"compatibility", "battery life", "noise", "smell",
}

const (
	MaxPositiveThemes = 5
	MaxNegativeThemes = 4

	ratingBonus    = 2
	positiveRating = 4
	negativeRating = 2
)

// Suspicion weights for the fake-review heuristic.
const (
	WeightShortFiveStar = 0.5
	WeightGenericPraise = 0.3
	WeightExclamations  = 0.2
	WeightAllCaps       = 0.4

	shortFiveStarLen = 50
	genericPraiseLen = 100
	genericPraise    = "highly recommend"
	maxExclamations  = 3
	allCapsMinLen    = 20
)

var (
	positivePatterns = compileWords(PositiveWords)
	negativePatterns = compileWords(NegativeWords)
)

func compileWords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}
