package commands

import (
	"errors"
	"time"

	"eshop/internal/core/domain/model/order"
	"eshop/internal/pkg/errs"
	"eshop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place an order: reserve the
// cart's inventory, create a shipment record and announce it on the queue.
//
// The shipping type is carried as the raw carrier name; membership in the
// supported set is checked by the handler before any inventory mutation.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(ord, "Нова Пошта", time.Now().UTC().Add(24*time.Hour))
//	if err != nil {
//	    return err
//	}
//	shipmentID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	order        *order.Order
	shippingType string
	dueDate      time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a placement command for the given order.
// The order must be constructed and unplaced, the shipping type name
// non-empty and the due date non-zero.
func NewPlaceOrderCommand(ord *order.Order, shippingType string, dueDate time.Time) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrder(ord),
		cmd.setShippingType(shippingType),
		cmd.setDueDate(dueDate),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Order returns the order being placed.
func (c PlaceOrderCommand) Order() *order.Order {
	return c.order
}

// ShippingType returns the requested carrier name.
func (c PlaceOrderCommand) ShippingType() string {
	return c.shippingType
}

// DueDate returns the requested shipment due date.
func (c PlaceOrderCommand) DueDate() time.Time {
	return c.dueDate
}

func (c *PlaceOrderCommand) setOrder(ord *order.Order) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	c.order = ord
	return nil
}

func (c *PlaceOrderCommand) setShippingType(shippingType string) error {
	if shippingType == "" {
		return errs.NewValueIsRequiredError("shipping type")
	}

	c.shippingType = shippingType
	return nil
}

func (c *PlaceOrderCommand) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("due date")
	}

	c.dueDate = dueDate
	return nil
}
