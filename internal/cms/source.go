package cms

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when a product id is not present in
// the fetched catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductSource yields the full catalog snapshot. Every call re-fetches;
// there is deliberately no caching layer anywhere behind this interface.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// InMemorySource is a ProductSource over a fixed slice, used by tests
// and local development.
type InMemorySource struct {
	products []Product
	err      error
}

// NewInMemorySource creates a source that returns the given products.
func NewInMemorySource(products ...Product) *InMemorySource {
	return &InMemorySource{products: products}
}

// FailWith makes every subsequent fetch return err.
func (s *InMemorySource) FailWith(err error) {
	s.err = err
}

// SetProducts replaces the catalog snapshot.
func (s *InMemorySource) SetProducts(products []Product) {
	s.products = products
}

// FetchProducts returns a copy of the configured products.
func (s *InMemorySource) FetchProducts(ctx context.Context) ([]Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}
