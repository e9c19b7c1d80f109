package model

import "time"

// DataSource indicates where a report's product facts came from.
type DataSource string

const (
	SourceCatalog  DataSource = "catalog"
	SourceDemo     DataSource = "demo"
	SourceFallback DataSource = "fallback"
)

// ProductReport bundles every signal computed for one product.
type ProductReport struct {
	Product               Product             `json:"product"`
	Category              Category            `json:"category"`
	EstimatedMonthlyUnits int                 `json:"estimated_monthly_units"`
	SalesHistory          []MonthlySalesPoint `json:"sales_history"`
	PriceHistory          []PricePoint        `json:"price_history"`
	RankHistory           []RankPoint         `json:"rank_history"`
	Reviews               ReviewAnalysis      `json:"reviews"`
	ListingQuality        ListingQuality      `json:"listing_quality"`
	DataSource            DataSource          `json:"data_source"`
	Deterministic         bool                `json:"deterministic"`
	GeneratedAt           time.Time           `json:"generated_at"`
}

// MonthlyRevenue returns the most recent month's revenue, or 0 without history.
func (r *ProductReport) MonthlyRevenue() float64 {
	if len(r.SalesHistory) == 0 {
		return 0
	}
	return r.SalesHistory[len(r.SalesHistory)-1].Revenue
}
