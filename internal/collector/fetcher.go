package collector

import (
	"errors"

	"ListingSentinel/internal/model"
)

// ErrProductNotFound is returned when a source has no record of an ASIN.
var ErrProductNotFound = errors.New("product not found")

// Fetcher defines the interface for product sources.
type Fetcher interface {
	FetchProduct(asin string) (*model.Product, error)
	FetchReviews(asin string) ([]model.ReviewRecord, error)
	Name() string
}
