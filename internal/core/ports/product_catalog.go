package ports

import (
	"context"

	"eshop/internal/core/domain/model/product"
)

// ProductCatalog resolves product names to the shared Product instances whose
// inventory the core reserves against. Callers placing orders for the same
// product must receive the same instance, so that reservations contend on a
// single stock counter.
type ProductCatalog interface {
	// Get returns the product registered under name.
	// Returns an errs.ObjectNotFoundError for an unknown product.
	Get(ctx context.Context, name string) (*product.Product, error)
}
