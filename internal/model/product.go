package model

// Product holds the facts a product source knows about a listing.
type Product struct {
	ASIN          string         `json:"asin" yaml:"asin"`
	Title         string         `json:"title" yaml:"title"`
	Brand         string         `json:"brand" yaml:"brand"`
	Price         float64        `json:"price" yaml:"price"`
	OriginalPrice float64        `json:"original_price" yaml:"original_price"`
	Rating        float64        `json:"rating" yaml:"rating"`
	TotalReviews  int            `json:"total_reviews" yaml:"total_reviews"`
	ImageURL      string         `json:"image_url" yaml:"image_url"`
	CategoryLabel string         `json:"category" yaml:"category"`
	Rank          int            `json:"rank" yaml:"rank"`
	RankCategory  string         `json:"rank_category" yaml:"rank_category"`
	InStock       bool           `json:"in_stock" yaml:"in_stock"`
	Seller        string         `json:"seller" yaml:"seller"`
	Features      []string       `json:"features" yaml:"features"`
	Description   string         `json:"description" yaml:"description"`
	HasVideo      bool           `json:"has_video" yaml:"has_video"`
	Reviews       []ReviewRecord `json:"reviews,omitempty" yaml:"reviews"`
}

// Usable reports whether the product carries enough facts to analyze.
func (p *Product) Usable() bool {
	return p != nil && p.Title != "" && p.Price > 0
}
