package memory

import (
	"context"
	"sync"

	"eshop/internal/core/domain/model/product"
	"eshop/internal/pkg/errs"
)

// ProductCatalog is a seeded map from product name to the shared Product
// instance. All callers receive the same instance per name, so reservations
// contend on one stock counter.
type ProductCatalog struct {
	mu       sync.RWMutex
	products map[string]*product.Product
}

// NewProductCatalog creates an empty catalog.
func NewProductCatalog() *ProductCatalog {
	return &ProductCatalog{
		products: make(map[string]*product.Product),
	}
}

// Register adds a product to the catalog, replacing any previous entry
// under the same name.
func (c *ProductCatalog) Register(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products[p.Name()] = p
	return nil
}

// Get returns the product registered under name.
func (c *ProductCatalog) Get(_ context.Context, name string) (*product.Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("productName", name)
	}

	return p, nil
}
