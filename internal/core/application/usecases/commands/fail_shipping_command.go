package commands

import (
	"errors"

	"eshop/internal/pkg/errs"
	"eshop/internal/pkg/guard"
)

var ErrFailShippingCommandIsNotConstructed = errors.New(
	"FailShippingCommand must be created via NewFailShippingCommand constructor",
)

// FailShippingCommand represents a request to mark a shipment as failed.
// The transition is only eligible once the shipment's due date has passed.
type FailShippingCommand struct { //nolint:recvcheck //using for validation
	shipmentID string

	guard guard.ConstructorGuard
}

// NewFailShippingCommand creates a fail command for the given shipment id.
func NewFailShippingCommand(shipmentID string) (FailShippingCommand, error) {
	if shipmentID == "" {
		return FailShippingCommand{}, errs.NewValueIsRequiredError("shipment id")
	}

	return FailShippingCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FailShippingCommand) Validate() error {
	return c.guard.Validate(ErrFailShippingCommandIsNotConstructed)
}

// ShipmentID returns the shipment to fail.
func (c FailShippingCommand) ShipmentID() string {
	return c.shipmentID
}
