package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ListingSentinel/internal/model"
)

const testCatalog = `
products:
  - asin: CAT0000001
    title: Stainless Steel Insulated Water Bottle, 32 oz, Leak Proof Lid, Keeps Drinks Cold for 24 Hours
    brand: HydraPeak
    price: 24.99
    rating: 4.4
    total_reviews: 1520
    image_url: https://example.com/bottle.jpg
    category: Sports & Outdoors > Water Bottles
    rank: 850
    rank_category: Sports & Outdoors
    features: [Double wall, Leak proof, BPA free]
    description: Keeps drinks cold.
    reviews:
      - rating: 5
        title: Love it
        text: Great quality, keeps water cold all day
      - rating: 1
        title: Leaks
        text: The lid is broken and the size is wrong
  - asin: CAT0000002
    title: ""
    price: 0
`

func newCatalogCollector(t *testing.T) *Collector {
	t.Helper()
	cat, err := parseCatalog("test.yaml", []byte(testCatalog))
	require.NoError(t, err)
	c := NewCollector(cat, 12, false)
	c.Now = func() time.Time { return time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestAnalyze_CatalogProductUsesReviewText(t *testing.T) {
	c := newCatalogCollector(t)
	r, err := c.Analyze("CAT0000001")
	require.NoError(t, err)

	assert.Equal(t, model.SourceCatalog, r.DataSource)
	assert.False(t, r.Deterministic)
	assert.Equal(t, model.CategorySportsOutdoors, r.Category)
	assert.Equal(t, 2, r.Reviews.ReviewCount)
	assert.False(t, r.Reviews.Estimated)
	assert.Equal(t, 50, r.Reviews.Sentiment.PositivePct)
	assert.Equal(t, 50, r.Reviews.Sentiment.NegativePct)
	assert.Equal(t, 2560, r.EstimatedMonthlyUnits)
	require.Len(t, r.SalesHistory, 12)
	assert.Equal(t, "2025-06", r.SalesHistory[11].Month)
	for _, p := range r.SalesHistory {
		assert.Equal(t, float64(p.Units)*24.99, p.Revenue)
	}
	for _, p := range r.PriceHistory {
		assert.GreaterOrEqual(t, p.Price, 0.7*24.99)
	}
	assert.Greater(t, r.ListingQuality.Score, 0)
}

func TestAnalyze_DemoIsDeterministic(t *testing.T) {
	c := NewCollector(NewDemoFetcher(), 12, false)
	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	c.Now = func() time.Time { return now }

	a, err := c.Analyze("B0C1234XYZ")
	require.NoError(t, err)
	b, err := c.Analyze("B0C1234XYZ")
	require.NoError(t, err)

	assert.True(t, a.Deterministic)
	assert.Equal(t, model.SourceDemo, a.DataSource)
	assert.Equal(t, a, b)
	assert.True(t, a.Reviews.Estimated)
}

func TestAnalyze_FixtureFallback(t *testing.T) {
	c := newCatalogCollector(t)
	r, err := c.Analyze("B08N5WRWNW")
	require.NoError(t, err)
	assert.Equal(t, model.SourceFallback, r.DataSource)
	assert.Equal(t, "Apple", r.Product.Brand)
	assert.Equal(t, 144000, r.EstimatedMonthlyUnits)
	assert.Equal(t, 87432*71/100, r.Reviews.Distribution[5])
}

func TestAnalyze_UnknownProduct(t *testing.T) {
	c := newCatalogCollector(t)
	_, err := c.Analyze("NOPE000000")
	assert.True(t, errors.Is(err, ErrProductNotFound))

	_, err = c.Analyze("CAT0000002")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogFetcher_NotFoundNamesCatalog(t *testing.T) {
	cat, err := parseCatalog("test.yaml", []byte(testCatalog))
	require.NoError(t, err)

	_, err = cat.FetchProduct("NOPE000000")
	require.ErrorIs(t, err, ErrProductNotFound)
	assert.EqualError(t, err, "NOPE000000 in test.yaml: product not found")

	_, err = cat.FetchReviews("NOPE000000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAnalyzeMany_SkipsFailuresKeepsOrder(t *testing.T) {
	c := newCatalogCollector(t)
	reports := c.AnalyzeMany(context.Background(), []string{"B0BSHF7WHW", "NOPE000000", "CAT0000001"}, 2)
	require.Len(t, reports, 2)
	assert.Equal(t, "B0BSHF7WHW", reports[0].Product.ASIN)
	assert.Equal(t, "CAT0000001", reports[1].Product.ASIN)
}

func TestDemoFetcher_StableFacts(t *testing.T) {
	d := NewDemoFetcher()
	a, err := d.FetchProduct("B07XJ8C8F5")
	require.NoError(t, err)
	b, err := d.FetchProduct("B07XJ8C8F5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, a.Usable())
	assert.GreaterOrEqual(t, a.Price, 20.0)
	assert.LessOrEqual(t, a.Price, 500.0)
	assert.GreaterOrEqual(t, a.Rank, 5)
	assert.LessOrEqual(t, a.Rank, 500)
	assert.GreaterOrEqual(t, len(a.Features), 4)
	assert.False(t, a.HasVideo)

	_, err = d.FetchProduct("")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestParseCatalog_RequiresASIN(t *testing.T) {
	_, err := parseCatalog("bad.yaml", []byte("products:\n  - title: no code\n"))
	assert.Error(t, err)
}
