package collector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ListingSentinel/internal/model"
)

// catalogFile is the on-disk layout of a product catalog.
type catalogFile struct {
	Products []model.Product `yaml:"products"`
}

// CatalogFetcher serves products and reviews from a YAML catalog.
type CatalogFetcher struct {
	Path     string
	products map[string]model.Product
}

// NewCatalogFetcher loads the catalog at path.
func NewCatalogFetcher(path string) (*CatalogFetcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parseCatalog(path, data)
}

func parseCatalog(path string, data []byte) (*CatalogFetcher, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c := &CatalogFetcher{Path: path, products: make(map[string]model.Product, len(cf.Products))}
	for i, p := range cf.Products {
		if p.ASIN == "" {
			return nil, fmt.Errorf("catalog entry %d: asin is required", i)
		}
		c.products[p.ASIN] = p
	}
	return c, nil
}

func (c *CatalogFetcher) Name() string { return "catalog" }

// ASINs returns every product code in the catalog.
func (c *CatalogFetcher) ASINs() []string {
	out := make([]string, 0, len(c.products))
	for asin := range c.products {
		out = append(out, asin)
	}
	return out
}

func (c *CatalogFetcher) FetchProduct(asin string) (*model.Product, error) {
	p, ok := c.products[asin]
	if !ok {
		return nil, fmt.Errorf("%s in %s: %w", asin, c.Path, ErrProductNotFound)
	}
	p.Reviews = nil
	return &p, nil
}

func (c *CatalogFetcher) FetchReviews(asin string) ([]model.ReviewRecord, error) {
	p, ok := c.products[asin]
	if !ok {
		return nil, fmt.Errorf("%s in %s: %w", asin, c.Path, ErrProductNotFound)
	}
	return append([]model.ReviewRecord(nil), p.Reviews...), nil
}
