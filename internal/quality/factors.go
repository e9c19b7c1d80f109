package quality

import (
	"fmt"
	"math"
	"strings"

	"ListingSentinel/internal/model"
)

// Factor names as they appear in ListingQuality.Factors.
const (
	FactorTitle       = "title"
	FactorImage       = "image"
	FactorBullets     = "bullets"
	FactorDescription = "description"
	FactorRichContent = "rich_content"
	FactorVideo       = "video"
	FactorBrand       = "brand"
)

// Weights of the normalized factors. Bonus factors are added flat (weight 1).
const (
	WeightTitle       = 0.20
	WeightImage       = 0.15
	WeightBullets     = 0.15
	WeightDescription = 0.15
	WeightBonus       = 1.0
)

const (
	BonusRichContent = 15
	BonusVideo       = 10
	BonusBrand       = 10

	targetBullets       = 6
	richContentMinChars = 800
)

// PlaceholderBrands are brand strings scrapers emit when no brand is known.
var PlaceholderBrands = []string{"unknown brand", "unknown", "generic", "n/a"}

// scoreTitle rewards titles long enough to carry keywords without being truncated.
// Weight: 0.20
func scoreTitle(meta model.ListingMetadata) model.FactorScore {
	n := meta.TitleLength
	var score float64
	switch {
	case n >= 100 && n <= 200:
		score = 95
	case n >= 50 && n < 100:
		score = 80
	default:
		score = 60
	}
	return weighted(FactorTitle, score, WeightTitle, fmt.Sprintf("%d chars", n))
}

// scoreImage checks for a main image.
// Weight: 0.15
func scoreImage(meta model.ListingMetadata) model.FactorScore {
	if meta.HasImage {
		return weighted(FactorImage, 95, WeightImage, "main image present")
	}
	return weighted(FactorImage, 0, WeightImage, "no image")
}

// scoreBullets scales the feature bullet count against six bullets.
// Weight: 0.15
func scoreBullets(meta model.ListingMetadata) model.FactorScore {
	score := math.Min(100, float64(meta.BulletCount)/targetBullets*100)
	return weighted(FactorBullets, score, WeightBullets, fmt.Sprintf("%d bullets", meta.BulletCount))
}

// scoreDescription buckets description length.
// Weight: 0.15
func scoreDescription(meta model.ListingMetadata) model.FactorScore {
	n := meta.DescriptionLength
	var score float64
	switch {
	case n >= 500:
		score = 90
	case n >= 200:
		score = 70
	default:
		score = 40
	}
	return weighted(FactorDescription, score, WeightDescription, fmt.Sprintf("%d chars", n))
}

// scoreRichContent treats very long descriptions as enhanced brand content.
func scoreRichContent(meta model.ListingMetadata) model.FactorScore {
	if meta.DescriptionLength > richContentMinChars {
		return weighted(FactorRichContent, BonusRichContent, WeightBonus, "rich content")
	}
	return weighted(FactorRichContent, 0, WeightBonus, "")
}

func scoreVideo(meta model.ListingMetadata) model.FactorScore {
	if meta.HasVideo {
		return weighted(FactorVideo, BonusVideo, WeightBonus, "video present")
	}
	return weighted(FactorVideo, 0, WeightBonus, "")
}

func scoreBrand(meta model.ListingMetadata) model.FactorScore {
	if isRealBrand(meta.Brand) {
		return weighted(FactorBrand, BonusBrand, WeightBonus, meta.Brand)
	}
	return weighted(FactorBrand, 0, WeightBonus, "no brand")
}

func isRealBrand(brand string) bool {
	b := strings.TrimSpace(brand)
	if b == "" {
		return false
	}
	for _, p := range PlaceholderBrands {
		if strings.EqualFold(b, p) {
			return false
		}
	}
	return true
}

func weighted(name string, raw, weight float64, commentary string) model.FactorScore {
	return model.FactorScore{
		Name:       name,
		RawScore:   raw,
		Weight:     weight,
		Weighted:   raw * weight,
		Commentary: commentary,
	}
}
