package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"ListingSentinel/internal/calculator"
	"ListingSentinel/internal/model"
	"ListingSentinel/internal/quality"
	"ListingSentinel/internal/random"
	"ListingSentinel/internal/sentiment"
)

// defaultHistoryRank stands in for an unknown rank when synthesizing histories.
const defaultHistoryRank = 100

// Collector orchestrates product fetching and signal computation.
type Collector struct {
	Fetcher  Fetcher
	Fallback Fetcher
	Months   int
	// Deterministic seeds catalog products by ASIN as well; demo and
	// fallback products are always seeded.
	Deterministic bool
	Now           func() time.Time
}

// NewCollector creates a new Collector with the demo fixtures as fallback.
func NewCollector(fetcher Fetcher, months int, deterministic bool) *Collector {
	return &Collector{
		Fetcher:       fetcher,
		Fallback:      NewDemoFetcher(),
		Months:        months,
		Deterministic: deterministic,
		Now:           time.Now,
	}
}

// Analyze fetches one product and computes its full report.
func (c *Collector) Analyze(asin string) (*model.ProductReport, error) {
	product, source, err := c.fetchProduct(asin)
	if err != nil {
		return nil, err
	}

	reviews := c.reviewAnalysis(product, source)

	deterministic := source != model.SourceCatalog || c.Deterministic
	var src random.Source
	if deterministic {
		src = random.NewSeeded(asin)
	} else {
		src = random.NewLive()
	}

	category := model.ParseCategory(product.RankCategory)
	if category == model.CategoryUnknown {
		category = model.ParseCategory(product.CategoryLabel)
	}
	historyRank := product.Rank
	if historyRank <= 0 {
		historyRank = defaultHistoryRank
	}

	synth := calculator.NewSynthesizer(src, c.Now())
	sales, err := synth.SalesHistory(historyRank, category, c.Months)
	if err != nil {
		return nil, fmt.Errorf("sales history: %w", err)
	}
	ranks, err := synth.RankHistory(historyRank, c.Months)
	if err != nil {
		return nil, fmt.Errorf("rank history: %w", err)
	}
	prices, err := synth.PriceHistory(product.Price, c.Months)
	if err != nil {
		return nil, fmt.Errorf("price history: %w", err)
	}
	// Revenue only once units and the final unit price are both known.
	sales, err = calculator.ApplyRevenue(sales, product.Price)
	if err != nil {
		return nil, fmt.Errorf("apply revenue: %w", err)
	}

	lq, err := quality.Evaluate(quality.MetadataFromProduct(product))
	if err != nil {
		return nil, fmt.Errorf("listing quality: %w", err)
	}

	return &model.ProductReport{
		Product:               *product,
		Category:              category,
		EstimatedMonthlyUnits: calculator.EstimateDemand(product.Rank, category),
		SalesHistory:          sales,
		PriceHistory:          prices,
		RankHistory:           ranks,
		Reviews:               reviews,
		ListingQuality:        *lq,
		DataSource:            source,
		Deterministic:         deterministic,
		GeneratedAt:           c.Now(),
	}, nil
}

// AnalyzeMany analyzes products in parallel, at most limit at a time. A failed
// product is logged and left out; results keep the input order.
func (c *Collector) AnalyzeMany(ctx context.Context, asins []string, limit int) []*model.ProductReport {
	results := make([]*model.ProductReport, len(asins))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, asin := range asins {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			report, err := c.Analyze(asin)
			if err != nil {
				log.Printf("[WARN] analyze %s: %v", asin, err)
				return nil
			}
			results[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[WARN] batch analysis interrupted: %v", err)
	}

	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (c *Collector) fetchProduct(asin string) (*model.Product, model.DataSource, error) {
	product, err := c.Fetcher.FetchProduct(asin)
	if err == nil && product.Usable() {
		return product, sourceOf(c.Fetcher), nil
	}
	if err != nil {
		log.Printf("[WARN] %s fetch %s failed: %v", c.Fetcher.Name(), asin, err)
	} else {
		log.Printf("[WARN] %s returned unusable product for %s", c.Fetcher.Name(), asin)
	}

	if c.Fallback == nil || !IsFixture(asin) {
		if err == nil {
			err = ErrProductNotFound
		}
		return nil, "", fmt.Errorf("fetch product %s: %w", asin, err)
	}
	product, ferr := c.Fallback.FetchProduct(asin)
	if ferr != nil {
		return nil, "", fmt.Errorf("fetch fallback product %s: %w", asin, ferr)
	}
	log.Printf("[INFO] using fallback data for %s", asin)
	return product, model.SourceFallback, nil
}

func (c *Collector) reviewAnalysis(product *model.Product, source model.DataSource) model.ReviewAnalysis {
	if source == model.SourceCatalog {
		reviews, err := c.Fetcher.FetchReviews(product.ASIN)
		if err != nil {
			log.Printf("[WARN] fetch reviews for %s: %v", product.ASIN, err)
		}
		if len(reviews) > 0 {
			return sentiment.Analyze(reviews)
		}
		return sentiment.DefaultAnalysis()
	}
	return sentiment.EstimateFromTotals(product.TotalReviews)
}

func sourceOf(f Fetcher) model.DataSource {
	if f.Name() == "demo" {
		return model.SourceDemo
	}
	return model.SourceCatalog
}
