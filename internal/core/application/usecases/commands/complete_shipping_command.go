package commands

import (
	"errors"

	"eshop/internal/pkg/errs"
	"eshop/internal/pkg/guard"
)

var ErrCompleteShippingCommandIsNotConstructed = errors.New(
	"CompleteShippingCommand must be created via NewCompleteShippingCommand constructor",
)

// CompleteShippingCommand represents a request to mark a shipment as
// delivered.
type CompleteShippingCommand struct { //nolint:recvcheck //using for validation
	shipmentID string

	guard guard.ConstructorGuard
}

// NewCompleteShippingCommand creates a completion command for the given
// shipment id.
func NewCompleteShippingCommand(shipmentID string) (CompleteShippingCommand, error) {
	if shipmentID == "" {
		return CompleteShippingCommand{}, errs.NewValueIsRequiredError("shipment id")
	}

	return CompleteShippingCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteShippingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShippingCommandIsNotConstructed)
}

// ShipmentID returns the shipment to complete.
func (c CompleteShippingCommand) ShipmentID() string {
	return c.shipmentID
}
