package queries

import (
	"errors"

	"eshop/internal/pkg/guard"
)

var ErrGetShippingTypesQueryIsNotConstructed = errors.New(
	"GetShippingTypesQuery must be created via NewGetShippingTypesQuery constructor",
)

// GetShippingTypesQuery represents a request for the supported carrier set.
type GetShippingTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShippingTypesQuery creates a shipping types query.
func NewGetShippingTypesQuery() GetShippingTypesQuery {
	return GetShippingTypesQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetShippingTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingTypesQueryIsNotConstructed)
}
