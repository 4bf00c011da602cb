// Package queries contains read-only operations in the CQRS split. Query
// handlers read the store directly and bypass the domain repositories.
package queries

import (
	"errors"

	"eshop/internal/pkg/errs"
	"eshop/internal/pkg/guard"
)

var ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
	"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
)

// GetShipmentStatusQuery represents a read-through status check for a single
// shipment.
type GetShipmentStatusQuery struct {
	shipmentID string

	guard guard.ConstructorGuard
}

// NewGetShipmentStatusQuery creates a status query for the given shipment id.
func NewGetShipmentStatusQuery(shipmentID string) (GetShipmentStatusQuery, error) {
	if shipmentID == "" {
		return GetShipmentStatusQuery{}, errs.NewValueIsRequiredError("shipment id")
	}

	return GetShipmentStatusQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

// ShipmentID returns the shipment being queried.
func (q GetShipmentStatusQuery) ShipmentID() string {
	return q.shipmentID
}
