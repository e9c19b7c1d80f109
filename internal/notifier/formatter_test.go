package notifier

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ListingSentinel/internal/model"
	"ListingSentinel/internal/recorder"
	"ListingSentinel/internal/sentiment"
	"ListingSentinel/internal/watch"
)

func TestFormatReport(t *testing.T) {
	r := &model.ProductReport{
		Product: model.Product{
			ASIN: "B08N5WRWNW", Title: "Apple AirPods Pro", Brand: "Apple",
			Price: 249, OriginalPrice: 279.99, Rank: 3,
		},
		Category:              model.CategoryElectronics,
		EstimatedMonthlyUnits: 144000,
		SalesHistory:          []model.MonthlySalesPoint{{Month: "2025-01", Units: 150321, Revenue: 37429929}},
		PriceHistory:          []model.PricePoint{{Date: "2025-01-01", Price: 229.5}, {Date: "2025-02-01", Price: 249}},
		RankHistory:           []model.RankPoint{{Date: "2025-01-01", Rank: 2}, {Date: "2025-02-01", Rank: 4}},
		Reviews:               sentiment.EstimateFromTotals(87432),
		ListingQuality: model.ListingQuality{Score: 87, Factors: []model.FactorScore{
			{Name: "title", RawScore: 95, Weight: 0.2, Weighted: 19, Commentary: "130 chars"},
			{Name: "video", Weight: 1},
		}},
		DataSource:  model.SourceFallback,
		GeneratedAt: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
	}
	out := FormatReport(r)
	assert.Contains(t, out, "B08N5WRWNW | 2025-02-03")
	assert.Contains(t, out, "Price: $249.00 (list $279.99)")
	assert.Contains(t, out, "Baseline: 144,000 units/month")
	assert.Contains(t, out, "150,321 units  $37,429,929")
	assert.Contains(t, out, "Latest month revenue: $37,429,929")
	assert.Contains(t, out, "Price range: $229.50 – $249.00 (current at 100%)")
	assert.NotContains(t, out, "month trend")
	assert.Contains(t, out, "Best rank: #2")
	assert.Contains(t, out, "Reviews (estimated)")
	assert.Contains(t, out, "5★ 62,076")
	assert.Contains(t, out, "Listing quality: 87/100")
	assert.Contains(t, out, "title(130 chars)")
	assert.NotContains(t, out, "video(")
}

func TestFormatAlertsAndDigest(t *testing.T) {
	assert.Empty(t, FormatAlerts(nil))
	out := FormatAlerts([]watch.Alert{{ASIN: "B1", Kind: watch.AlertRiskChange, Message: "Low -> High"}})
	assert.Contains(t, out, "[RISK_CHANGE] B1: Low -> High")

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	digest := FormatDigest([]model.WatchEntry{
		{ASIN: "B1", Title: "Widget", LastDemand: 12500, LastPrice: 9.99, LastQuality: 70,
			LastRiskLevel: model.RiskLow, ObservedCount: 2, LastObservedAt: now.Add(-time.Hour)},
		{ASIN: "B2"},
	}, now)
	assert.Contains(t, digest, "demand 12,500/mo")
	assert.Contains(t, digest, "B2  (not analyzed yet)")
	assert.Contains(t, FormatDigest(nil, now), "No products watched.")
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "No recorded runs for B0TEST0001.", FormatHistory("B0TEST0001", nil))

	out := FormatHistory("B0TEST0001", []recorder.RunSummary{{
		ASIN: "B0TEST0001", RecordedAt: time.Date(2025, 3, 17, 8, 30, 0, 0, time.Local),
		Demand: 12500, Price: 19.5, QualityScore: 72, FakeScore: 12, FakeLevel: "Low", DataSource: "demo",
	}})
	assert.Contains(t, out, "2025-03-17 08:30  12,500 units | $19.50 | quality 72 | fake 12 Low | demo")
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)
	require.NoError(t, n.Send(context.Background(), "hello"))
	require.NoError(t, n.Send(context.Background(), ""))
	assert.Equal(t, "hello\n", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, n.Send(ctx, "late"))
}

func TestReadCommands(t *testing.T) {
	var out bytes.Buffer
	var seen []string
	handler := func(cmd string) string {
		seen = append(seen, cmd)
		if cmd == "/quiet" {
			return ""
		}
		return "ok " + cmd
	}

	in := strings.NewReader("/digest\n\n   \n/quiet\n /add B0TEST0001 \n")
	require.NoError(t, ReadCommands(context.Background(), in, handler, NewWriterNotifier(&out)))

	assert.Equal(t, []string{"/digest", "/quiet", "/add B0TEST0001"}, seen)
	assert.Equal(t, "ok /digest\nok /add B0TEST0001\n", out.String())
}
