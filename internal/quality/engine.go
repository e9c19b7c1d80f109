package quality

import (
	"fmt"
	"math"

	"ListingSentinel/internal/model"
)

// Evaluate computes the listing quality score from content metadata.
func Evaluate(meta model.ListingMetadata) (*model.ListingQuality, error) {
	if meta.TitleLength < 0 || meta.BulletCount < 0 || meta.DescriptionLength < 0 {
		return nil, fmt.Errorf("%w: listing metadata has negative length or count", model.ErrInvalidInput)
	}

	factors := []model.FactorScore{
		scoreTitle(meta),
		scoreImage(meta),
		scoreBullets(meta),
		scoreDescription(meta),
		scoreRichContent(meta),
		scoreVideo(meta),
		scoreBrand(meta),
	}

	var total float64
	for _, f := range factors {
		total += f.Weighted
	}

	return &model.ListingQuality{
		Score:   int(math.Round(math.Min(100, total))),
		Factors: factors,
	}, nil
}

// MetadataFromProduct derives listing metadata from product facts.
func MetadataFromProduct(p *model.Product) model.ListingMetadata {
	return model.ListingMetadata{
		TitleLength:       len([]rune(p.Title)),
		HasImage:          p.ImageURL != "",
		BulletCount:       len(p.Features),
		DescriptionLength: len([]rune(p.Description)),
		HasVideo:          p.HasVideo,
		Brand:             p.Brand,
	}
}
