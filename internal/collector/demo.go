package collector

import (
	"fmt"
	"strings"

	"ListingSentinel/internal/model"
	"ListingSentinel/internal/random"
)

// fixtureProducts are real listings served verbatim by the demo source.
var fixtureProducts = map[string]model.Product{
	"B08N5WRWNW": {
		ASIN:          "B08N5WRWNW",
		Title:         "Apple AirPods Pro (2nd Generation) Wireless Ear Buds with USB-C Charging, Up to 2X More Active Noise Cancelling Bluetooth Headphones",
		Brand:         "Apple",
		Price:         249.00,
		OriginalPrice: 279.99,
		Rating:        4.6,
		TotalReviews:  87432,
		ImageURL:      "https://m.media-amazon.com/images/I/61SUj2aKoEL._AC_SL1500_.jpg",
		CategoryLabel: "Electronics > Headphones > Earbud Headphones",
		Rank:          3,
		RankCategory:  "Electronics",
		InStock:       true,
		Seller:        "Amazon.com",
		Features: []string{
			"Active Noise Cancellation",
			"Transparency mode",
			"Adaptive Audio",
			"Up to 6 hours listening time with single charge",
			"USB-C charging case",
		},
		Description: "AirPods Pro (2nd generation) deliver up to 2x more Active Noise Cancellation than the previous AirPods Pro, with Transparency mode, and now Adaptive Audio.",
	},
	"B0BSHF7WHW": {
		ASIN:          "B0BSHF7WHW",
		Title:         "SAMSUNG Galaxy S24 Ultra Cell Phone, 256GB AI Smartphone, Unlocked Android, 200MP, 100x Zoom Cameras, Long Battery Life, S Pen",
		Brand:         "Samsung",
		Price:         1299.99,
		OriginalPrice: 1499.99,
		Rating:        4.7,
		TotalReviews:  23567,
		ImageURL:      "https://m.media-amazon.com/images/I/71ZOHJw+WiL._AC_SL1500_.jpg",
		CategoryLabel: "Electronics > Cell Phones > Smartphones",
		Rank:          12,
		RankCategory:  "Cell Phones & Accessories",
		InStock:       true,
		Seller:        "Amazon.com",
		Features: []string{
			"200MP camera with 100x Space Zoom",
			"Built-in S Pen",
			"AI-powered features",
			"6.8-inch Dynamic AMOLED 2X display",
			"5000mAh battery",
		},
		Description: "Galaxy S24 Ultra sets a new standard for mobile innovation with its advanced AI capabilities, titanium build, and professional-grade camera system.",
	},
}

var demoTitles = []string{
	"Premium Wireless Headphones with Active Noise Cancellation, Bluetooth 5.0, 30-Hour Battery Life",
	"Smart Watch for Men Women, Fitness Tracker with Heart Rate Monitor, Waterproof Activity Tracker",
	"Portable Bluetooth Speaker, Waterproof Wireless Speaker with 360 Sound, 24H Playtime",
	"Gaming Mouse RGB, 16000 DPI Programmable Gaming Mice with 8 Buttons for PC Computer",
	"USB C Hub Multiport Adapter, 7-in-1 Type C Hub with 4K HDMI, 3 USB 3.0 Ports",
	"Laptop Stand for Desk, Adjustable Ergonomic Aluminum Computer Stand for MacBook",
	"Mechanical Keyboard RGB Backlit, Wired Gaming Keyboard with Blue Switches",
	"Webcam 1080P Full HD with Microphone, USB Computer Camera for Video Conferencing",
	"Phone Case with Card Holder, Leather Wallet Case with Kickstand for Smartphone",
	"Car Phone Mount, Dashboard Windshield Cell Phone Holder with Strong Suction Cup",
}

var demoBrands = []string{"TechPro", "SmartGear", "ProMax", "EliteSound", "PowerTech", "UltraGadget", "PremiumTech", "NextGen"}

var demoCategories = []string{
	"Electronics > Accessories",
	"Electronics > Audio",
	"Electronics > Computers",
	"Cell Phones & Accessories",
	"Sports & Outdoors",
	"Home & Kitchen",
	"Office Products",
}

var demoFeatures = []string{
	"Long-lasting rechargeable battery",
	"Compact, travel-friendly design",
	"Works with iOS and Android",
	"Durable aluminum and ABS housing",
	"One-touch setup",
	"12-month manufacturer warranty",
}

// DemoFetcher returns the fixture products, and stable synthetic facts for any
// other ASIN. It never returns review text.
type DemoFetcher struct{}

func NewDemoFetcher() *DemoFetcher { return &DemoFetcher{} }

func (d *DemoFetcher) Name() string { return "demo" }

// IsFixture reports whether asin is one of the built-in real listings.
func IsFixture(asin string) bool {
	_, ok := fixtureProducts[asin]
	return ok
}

func (d *DemoFetcher) FetchProduct(asin string) (*model.Product, error) {
	if asin == "" {
		return nil, fmt.Errorf("%w: empty asin", model.ErrInvalidInput)
	}
	if p, ok := fixtureProducts[asin]; ok {
		return &p, nil
	}
	return generateDemoProduct(asin), nil
}

func (d *DemoFetcher) FetchReviews(_ string) ([]model.ReviewRecord, error) {
	return nil, nil
}

func generateDemoProduct(asin string) *model.Product {
	rng := random.NewSeeded(asin)
	pick := func(list []string) string { return list[rng.Next(0, len(list)-1)] }

	price := float64(rng.Next(20, 500))
	p := &model.Product{
		ASIN:          asin,
		Price:         price,
		OriginalPrice: price + float64(rng.Next(10, 100)),
		Rating:        float64(rng.Next(35, 50)) / 10,
		TotalReviews:  rng.Next(500, 50000),
		Rank:          rng.Next(5, 500),
		ImageURL:      "https://via.placeholder.com/500x500/1a1a2e/ffffff?text=" + asin,
		Seller:        "Amazon.com",
	}
	p.Title = pick(demoTitles)
	p.CategoryLabel = pick(demoCategories)
	p.RankCategory = strings.TrimSpace(strings.Split(pick(demoCategories), ">")[0])
	p.InStock = rng.Next(0, 10) > 1
	p.Brand = pick(demoBrands)
	p.Features = append([]string(nil), demoFeatures[:rng.Next(4, len(demoFeatures))]...)
	p.Description = strings.Repeat(p.Title+". ", rng.Next(1, 10))
	return p
}
