package commands

import (
	"errors"

	"eshop/internal/pkg/guard"
)

var ErrFailOverdueShipmentsCommandIsNotConstructed = errors.New(
	"FailOverdueShipmentsCommand must be created via NewFailOverdueShipmentsCommand constructor",
)

// FailOverdueShipmentsCommand represents a request to sweep the store and
// fail every non-terminal shipment whose due date has passed. Driven by the
// background job.
type FailOverdueShipmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewFailOverdueShipmentsCommand creates a sweep command.
func NewFailOverdueShipmentsCommand() FailOverdueShipmentsCommand {
	return FailOverdueShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c FailOverdueShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrFailOverdueShipmentsCommandIsNotConstructed)
}
