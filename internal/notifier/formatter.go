package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"ListingSentinel/internal/calculator"
	"ListingSentinel/internal/model"
	"ListingSentinel/internal/recorder"
	"ListingSentinel/internal/watch"
)

// FormatReport formats a product report for display.
func FormatReport(r *model.ProductReport) string {
	var b strings.Builder
	p := r.Product

	b.WriteString(fmt.Sprintf("📦 %s | %s\n", p.ASIN, r.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%s\n", truncate(p.Title, 80)))
	if p.Brand != "" {
		b.WriteString(fmt.Sprintf("Brand: %s | Category: %s\n", p.Brand, r.Category))
	} else {
		b.WriteString(fmt.Sprintf("Category: %s\n", r.Category))
	}
	b.WriteString(fmt.Sprintf("Price: $%.2f", p.Price))
	if p.OriginalPrice > p.Price {
		b.WriteString(fmt.Sprintf(" (list $%.2f)", p.OriginalPrice))
	}
	b.WriteString("\n")
	if p.Rank > 0 {
		b.WriteString(fmt.Sprintf("Sales rank: #%s\n", humanize.Comma(int64(p.Rank))))
	} else {
		b.WriteString("Sales rank: unknown\n")
	}
	b.WriteString(fmt.Sprintf("Source: %s", r.DataSource))
	if r.Deterministic {
		b.WriteString(" (seeded)")
	}
	b.WriteString("\n\n")

	// Demand
	b.WriteString("📈 Estimated sales\n")
	b.WriteString(fmt.Sprintf("  Baseline: %s units/month\n", humanize.Comma(int64(r.EstimatedMonthlyUnits))))
	for _, s := range r.SalesHistory {
		b.WriteString(fmt.Sprintf("  %s  %8s units  $%s\n", s.Month, humanize.Comma(int64(s.Units)), humanize.CommafWithDigits(s.Revenue, 0)))
	}
	if len(r.SalesHistory) > 0 {
		b.WriteString(fmt.Sprintf("  Latest month revenue: $%s\n", humanize.CommafWithDigits(r.MonthlyRevenue(), 0)))
	}
	if trend, err := calculator.DemandTrend(r.SalesHistory, calculator.TrendWindow); err == nil {
		b.WriteString(fmt.Sprintf("  %d-month trend: %+.0f%%\n", calculator.TrendWindow, trend*100))
	}
	if lo, hi, err := calculator.PriceRange(r.PriceHistory); err == nil {
		b.WriteString(fmt.Sprintf("  Price range: $%.2f – $%.2f", lo, hi))
		if pos, err := calculator.RangePosition(p.Price, lo, hi); err == nil {
			b.WriteString(fmt.Sprintf(" (current at %.0f%%)", pos*100))
		}
		b.WriteString("\n")
	}
	if n := len(r.RankHistory); n > 0 {
		best := r.RankHistory[0].Rank
		for _, rp := range r.RankHistory {
			best = min(best, rp.Rank)
		}
		b.WriteString(fmt.Sprintf("  Best rank: #%s\n", humanize.Comma(int64(best))))
	}
	b.WriteString("\n")

	// Reviews
	rev := r.Reviews
	b.WriteString("💬 Reviews")
	if rev.Estimated {
		b.WriteString(" (estimated)")
	}
	b.WriteString("\n")
	for star := 5; star >= 1; star-- {
		b.WriteString(fmt.Sprintf("  %d★ %s\n", star, humanize.Comma(int64(rev.Distribution[star]))))
	}
	b.WriteString(fmt.Sprintf("  Sentiment: %d%% positive / %d%% neutral / %d%% negative\n",
		rev.Sentiment.PositivePct, rev.Sentiment.NeutralPct, rev.Sentiment.NegativePct))
	if len(rev.Sentiment.ThemesPositive) > 0 {
		b.WriteString(fmt.Sprintf("  Praised: %s\n", strings.Join(rev.Sentiment.ThemesPositive, ", ")))
	}
	if len(rev.Sentiment.ThemesNegative) > 0 {
		b.WriteString(fmt.Sprintf("  Complaints: %s\n", strings.Join(rev.Sentiment.ThemesNegative, ", ")))
	}
	b.WriteString(fmt.Sprintf("  Fake-review risk: %s (%d/100)\n\n", rev.FakeReviewRisk.Level, rev.FakeReviewRisk.Score))

	// Listing quality
	b.WriteString(fmt.Sprintf("📝 Listing quality: %d/100\n", r.ListingQuality.Score))
	for _, f := range r.ListingQuality.Factors {
		if f.Weighted == 0 && f.Weight == 1 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s(%s): %.0f (×%.2f) = %.2f\n", f.Name, f.Commentary, f.RawScore, f.Weight, f.Weighted))
	}

	return b.String()
}

// FormatAlerts formats watchlist alerts, one per line.
func FormatAlerts(alerts []watch.Alert) string {
	if len(alerts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 %d watchlist alert(s)\n", len(alerts)))
	for _, a := range alerts {
		b.WriteString(fmt.Sprintf("  [%s] %s: %s\n", a.Kind, a.ASIN, a.Message))
	}
	return b.String()
}

// FormatDigest summarizes every watched product.
func FormatDigest(entries []model.WatchEntry, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 Watchlist digest | %s\n\n", now.Format("2006-01-02")))
	if len(entries) == 0 {
		b.WriteString("No products watched.\n")
		return b.String()
	}
	for _, e := range entries {
		if e.ObservedCount == 0 {
			b.WriteString(fmt.Sprintf("%s  (not analyzed yet)\n", e.ASIN))
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", e.ASIN, truncate(e.Title, 50)))
		b.WriteString(fmt.Sprintf("  demand %s/mo | $%.2f | quality %d | risk %s | seen %s\n",
			humanize.Comma(int64(e.LastDemand)), e.LastPrice, e.LastQuality, e.LastRiskLevel,
			humanize.Time(e.LastObservedAt)))
	}
	return b.String()
}

// FormatHistory lists recorded runs for one product, newest first.
func FormatHistory(asin string, runs []recorder.RunSummary) string {
	if len(runs) == 0 {
		return fmt.Sprintf("No recorded runs for %s.", asin)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗂 History | %s\n", asin))
	for _, r := range runs {
		b.WriteString(fmt.Sprintf("  %s  %s units | $%.2f | quality %d | fake %d %s | %s\n",
			r.RecordedAt.Format("2006-01-02 15:04"), humanize.Comma(int64(r.Demand)), r.Price,
			r.QualityScore, r.FakeScore, r.FakeLevel, r.DataSource))
	}
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
