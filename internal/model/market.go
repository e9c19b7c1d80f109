package model

// MonthlySalesPoint is one month of estimated unit sales.
type MonthlySalesPoint struct {
	Month   string  `json:"month"` // YYYY-MM
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// PricePoint is a dated price observation.
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Price float64 `json:"price"`
}

// RankPoint is a dated sales-rank observation. Lower is better.
type RankPoint struct {
	Date string `json:"date"`
	Rank int    `json:"rank"`
}
