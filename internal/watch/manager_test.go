package watch

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ListingSentinel/internal/model"
)

func report(asin string, demand, quality int, level model.RiskLevel) *model.ProductReport {
	return &model.ProductReport{
		Product:               model.Product{ASIN: asin, Title: "Widget " + asin, Price: 10},
		EstimatedMonthlyUnits: demand,
		ListingQuality:        model.ListingQuality{Score: quality},
		Reviews: model.ReviewAnalysis{
			FakeReviewRisk: model.FakeReviewAssessment{Score: 10, Level: level},
		},
		GeneratedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func kinds(alerts []Alert) []AlertKind {
	out := make([]AlertKind, len(alerts))
	for i, a := range alerts {
		out[i] = a.Kind
	}
	return out
}

func TestManager_ObserveAlerts(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "watch.json"), []string{"B000000001"})
	require.NoError(t, err)

	assert.Equal(t, []AlertKind{AlertNewlyTracked}, kinds(m.Observe(report("B000000001", 1000, 80, model.RiskLow))))
	assert.Empty(t, m.Observe(report("B000000001", 1100, 75, model.RiskLow)))

	alerts := m.Observe(report("B000000001", 2000, 60, model.RiskHigh))
	assert.Equal(t, []AlertKind{AlertRiskChange, AlertQualityDrop, AlertDemandSwing}, kinds(alerts))
}

func TestManager_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "watch.json")
	m, err := NewManager(path, []string{"B000000002", "B000000001"})
	require.NoError(t, err)
	for i := 0; i < 15; i++ {
		m.Observe(report("B000000001", 100+i, 80, model.RiskLow))
	}

	reloaded, err := NewManager(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"B000000001", "B000000002"}, reloaded.ASINs())

	entries := reloaded.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 15, entries[0].ObservedCount)
	assert.Len(t, entries[0].RecentDemand, 12)
	assert.Equal(t, 114, entries[0].RecentDemand[11])
	assert.Equal(t, model.RiskLow, entries[0].LastRiskLevel)
}

func TestManager_AddRemove(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "watch.json"), nil)
	require.NoError(t, err)
	assert.True(t, m.Add("B000000003"))
	assert.False(t, m.Add("B000000003"))
	assert.True(t, m.Remove("B000000003"))
	assert.False(t, m.Remove("B000000003"))
	assert.Empty(t, m.ASINs())
}
