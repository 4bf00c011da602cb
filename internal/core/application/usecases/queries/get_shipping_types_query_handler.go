package queries

import (
	"context"

	"eshop/internal/core/domain/model/shipment"
)

// GetShippingTypesQueryHandler returns the fixed ordered set of supported
// carriers. Pure function of configuration, no side effects and no store
// access.
type GetShippingTypesQueryHandler struct{}

// NewGetShippingTypesQueryHandler creates a handler for carrier listing.
func NewGetShippingTypesQueryHandler() GetShippingTypesQueryHandler {
	return GetShippingTypesQueryHandler{}
}

// Handle returns the carrier names in their fixed order. The result is
// stable across calls.
func (h GetShippingTypesQueryHandler) Handle(_ context.Context, query GetShippingTypesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return shipment.AvailableShippingTypes(), nil
}
