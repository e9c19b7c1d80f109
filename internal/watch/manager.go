package watch

import (
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"ListingSentinel/internal/model"
)

const (
	recentDemandWindow = 12
	qualityDropAlert   = 10
	demandSwingAlert   = 0.25
)

// AlertKind classifies a watchlist change.
type AlertKind string

const (
	AlertRiskChange   AlertKind = "RISK_CHANGE"
	AlertQualityDrop  AlertKind = "QUALITY_DROP"
	AlertDemandSwing  AlertKind = "DEMAND_SWING"
	AlertNewlyTracked AlertKind = "NEW"
)

// Alert describes a notable change between two observations of a product.
type Alert struct {
	ASIN    string
	Kind    AlertKind
	Message string
}

// Manager tracks watched products with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	state    *model.WatchState
	filePath string
}

// NewManager creates a Manager, loading state from disk and adding any new ASINs.
func NewManager(filePath string, asins []string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, fmt.Errorf("load watch state: %w", err)
	}
	for _, asin := range asins {
		if _, ok := state.Entries[asin]; !ok {
			state.Entries[asin] = &model.WatchEntry{ASIN: asin}
		}
	}

	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, fmt.Errorf("save watch state: %w", err)
	}
	return m, nil
}

// ASINs returns the watched product codes in sorted order.
func (m *Manager) ASINs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.state.Entries))
	for asin := range m.state.Entries {
		out = append(out, asin)
	}
	sort.Strings(out)
	return out
}

// Entries returns copies of every entry, sorted by ASIN.
func (m *Manager) Entries() []model.WatchEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.WatchEntry, 0, len(m.state.Entries))
	for _, e := range m.state.Entries {
		cp := *e
		cp.RecentDemand = append([]int(nil), e.RecentDemand...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ASIN < out[j].ASIN })
	return out
}

// Add starts watching asin. Returns false if it was already watched.
func (m *Manager) Add(asin string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.state.Entries[asin]; ok {
		return false
	}
	m.state.Entries[asin] = &model.WatchEntry{ASIN: asin}
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save watch state: %v", err)
	}
	return true
}

// Remove stops watching asin. Returns false if it was not watched.
func (m *Manager) Remove(asin string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.state.Entries[asin]; !ok {
		return false
	}
	delete(m.state.Entries, asin)
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save watch state: %v", err)
	}
	return true
}

// Observe records a fresh report and returns alerts for notable changes
// since the previous observation.
func (m *Manager) Observe(report *model.ProductReport) []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()

	asin := report.Product.ASIN
	entry, ok := m.state.Entries[asin]
	if !ok {
		entry = &model.WatchEntry{ASIN: asin}
		m.state.Entries[asin] = entry
	}

	var alerts []Alert
	demand := report.EstimatedMonthlyUnits
	quality := report.ListingQuality.Score
	risk := report.Reviews.FakeReviewRisk

	if entry.ObservedCount == 0 {
		alerts = append(alerts, Alert{ASIN: asin, Kind: AlertNewlyTracked,
			Message: fmt.Sprintf("now tracking %s", report.Product.Title)})
	} else {
		if risk.Level != entry.LastRiskLevel {
			alerts = append(alerts, Alert{ASIN: asin, Kind: AlertRiskChange,
				Message: fmt.Sprintf("fake-review risk %s -> %s (score %d)", entry.LastRiskLevel, risk.Level, risk.Score)})
		}
		if entry.LastQuality-quality >= qualityDropAlert {
			alerts = append(alerts, Alert{ASIN: asin, Kind: AlertQualityDrop,
				Message: fmt.Sprintf("listing quality %d -> %d", entry.LastQuality, quality)})
		}
		if entry.LastDemand > 0 {
			change := float64(demand-entry.LastDemand) / float64(entry.LastDemand)
			if math.Abs(change) >= demandSwingAlert {
				alerts = append(alerts, Alert{ASIN: asin, Kind: AlertDemandSwing,
					Message: fmt.Sprintf("estimated demand %d -> %d (%+.0f%%)", entry.LastDemand, demand, change*100)})
			}
		}
	}

	entry.Title = report.Product.Title
	entry.LastDemand = demand
	entry.LastPrice = report.Product.Price
	entry.LastQuality = quality
	entry.LastRiskLevel = risk.Level
	entry.LastRiskScore = risk.Score
	entry.RecentDemand = append(entry.RecentDemand, demand)
	if len(entry.RecentDemand) > recentDemandWindow {
		entry.RecentDemand = entry.RecentDemand[len(entry.RecentDemand)-recentDemandWindow:]
	}
	entry.ObservedCount++
	entry.LastObservedAt = report.GeneratedAt

	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save watch state: %v", err)
	}
	return alerts
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
