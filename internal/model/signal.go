package model

// FactorScore represents a single factor's scoring result.
type FactorScore struct {
	Name       string  `json:"name"`
	RawScore   float64 `json:"raw_score"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
	Commentary string  `json:"commentary,omitempty"`
}

// ListingMetadata carries the content-completeness signals of a listing.
type ListingMetadata struct {
	TitleLength       int
	HasImage          bool
	BulletCount       int
	DescriptionLength int
	HasVideo          bool
	Brand             string
}

// ListingQuality is the 0-100 listing score and its factor breakdown.
type ListingQuality struct {
	Score   int           `json:"score"`
	Factors []FactorScore `json:"factors"`
}

// Factor returns the named factor, if present.
func (q *ListingQuality) Factor(name string) (FactorScore, bool) {
	for _, f := range q.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return FactorScore{}, false
}
