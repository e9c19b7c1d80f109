package quality

import (
	"errors"
	"testing"

	"ListingSentinel/internal/model"
)

func TestEvaluate_CompleteListing(t *testing.T) {
	meta := model.ListingMetadata{
		TitleLength:       150,
		HasImage:          true,
		BulletCount:       6,
		DescriptionLength: 900,
		HasVideo:          true,
		Brand:             "Apple",
	}
	q, err := Evaluate(meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Factors) != 7 {
		t.Fatalf("expected 7 factors, got %d", len(q.Factors))
	}
	if q.Score != 97 {
		t.Errorf("expected score 97, got %d", q.Score)
	}
}

func TestEvaluate_BareListing(t *testing.T) {
	q, err := Evaluate(model.ListingMetadata{TitleLength: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// title 60×0.20 + description 40×0.15
	if q.Score != 18 {
		t.Errorf("expected score 18, got %d", q.Score)
	}
	if f, _ := q.Factor(FactorBrand); f.Weighted != 0 {
		t.Errorf("expected no brand bonus, got %.1f", f.Weighted)
	}
}

func TestScoreTitle_AllBoundaries(t *testing.T) {
	tests := []struct {
		length int
		raw    float64
	}{
		{0, 60},
		{49, 60},
		{50, 80},
		{99, 80},
		{100, 95},
		{200, 95},
		{201, 60},
	}
	for _, tt := range tests {
		f := scoreTitle(model.ListingMetadata{TitleLength: tt.length})
		if f.RawScore != tt.raw {
			t.Errorf("title length %d: expected %.0f, got %.0f", tt.length, tt.raw, f.RawScore)
		}
	}
}

func TestScoreDescription_AllBoundaries(t *testing.T) {
	tests := []struct {
		length int
		raw    float64
		rich   bool
	}{
		{0, 40, false},
		{199, 40, false},
		{200, 70, false},
		{499, 70, false},
		{500, 90, false},
		{800, 90, false},
		{801, 90, true},
	}
	for _, tt := range tests {
		meta := model.ListingMetadata{DescriptionLength: tt.length}
		if f := scoreDescription(meta); f.RawScore != tt.raw {
			t.Errorf("description length %d: expected %.0f, got %.0f", tt.length, tt.raw, f.RawScore)
		}
		if rich := scoreRichContent(meta).Weighted > 0; rich != tt.rich {
			t.Errorf("description length %d: rich content %v, want %v", tt.length, rich, tt.rich)
		}
	}
}

func TestScoreBullets_Capped(t *testing.T) {
	if f := scoreBullets(model.ListingMetadata{BulletCount: 3}); f.RawScore != 50 {
		t.Errorf("expected 50 for 3 bullets, got %.1f", f.RawScore)
	}
	if f := scoreBullets(model.ListingMetadata{BulletCount: 12}); f.RawScore != 100 {
		t.Errorf("expected cap at 100, got %.1f", f.RawScore)
	}
}

func TestScoreBrand_Placeholders(t *testing.T) {
	for _, b := range []string{"", "  ", "Unknown Brand", "unknown", "GENERIC"} {
		if f := scoreBrand(model.ListingMetadata{Brand: b}); f.Weighted != 0 {
			t.Errorf("brand %q should not earn a bonus", b)
		}
	}
	if f := scoreBrand(model.ListingMetadata{Brand: "Samsung"}); f.Weighted != BonusBrand {
		t.Errorf("expected brand bonus %d, got %.1f", BonusBrand, f.Weighted)
	}
}

func TestEvaluate_ScoreBounded(t *testing.T) {
	for title := 0; title <= 250; title += 25 {
		for bullets := 0; bullets <= 10; bullets++ {
			for _, desc := range []int{0, 300, 600, 1200} {
				q, err := Evaluate(model.ListingMetadata{
					TitleLength: title, BulletCount: bullets, DescriptionLength: desc,
					HasImage: true, HasVideo: true, Brand: "Acme",
				})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if q.Score < 0 || q.Score > 100 {
					t.Fatalf("score out of range: %d", q.Score)
				}
			}
		}
	}
}

func TestEvaluate_RejectsNegativeCounts(t *testing.T) {
	_, err := Evaluate(model.ListingMetadata{BulletCount: -1})
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMetadataFromProduct(t *testing.T) {
	p := &model.Product{
		Title:       "Widget",
		ImageURL:    "https://example.com/w.jpg",
		Features:    []string{"a", "b"},
		Description: "héllo",
		Brand:       "Acme",
	}
	meta := MetadataFromProduct(p)
	if meta.TitleLength != 6 || !meta.HasImage || meta.BulletCount != 2 || meta.DescriptionLength != 5 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
}
