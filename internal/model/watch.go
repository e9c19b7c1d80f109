package model

import "time"

// WatchEntry tracks the last observed signals for a watched product.
type WatchEntry struct {
	ASIN           string    `json:"asin"`
	Title          string    `json:"title"`
	LastDemand     int       `json:"last_demand"`
	LastPrice      float64   `json:"last_price"`
	LastQuality    int       `json:"last_quality"`
	LastRiskLevel  RiskLevel `json:"last_risk_level"`
	LastRiskScore  int       `json:"last_risk_score"`
	RecentDemand   []int     `json:"recent_demand"`
	ObservedCount  int       `json:"observed_count"`
	LastObservedAt time.Time `json:"last_observed_at"`
}

// WatchState is the persisted watchlist.
type WatchState struct {
	Entries   map[string]*WatchEntry `json:"entries"`
	UpdatedAt time.Time              `json:"updated_at"`
}
