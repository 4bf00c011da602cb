// Package order contains the order aggregate: a cart bound to an identifier,
// placed at most once.
package order

import (
	"errors"

	"eshop/internal/core/domain/model/cart"
	"eshop/internal/pkg/errs"
	"eshop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyPlaced is returned when placement is attempted on an
	// order that already produced a shipment. Re-placing would re-reserve
	// inventory, so the aggregate enforces single use.
	ErrOrderAlreadyPlaced = errors.New("order has already been placed")
)

// Order binds a cart to an order identifier for a single placement.
//
// Order maintains these invariants:
//   - Must have a non-empty identifier
//   - Must own a non-empty cart
//   - Placement happens at most once; the cart is read-only afterwards
//
// The shipping workflow itself (validation, reservation, shipment creation,
// notification) is orchestrated by the PlaceOrder command handler; the
// aggregate only records the outcome.
type Order struct {
	id         string
	cart       *cart.Cart
	placed     bool
	shipmentID string

	guard guard.ConstructorGuard
}

// NewOrder creates an order for the given cart. The id must be non-empty
// (callers generate one when the client did not supply it) and the cart must
// contain at least one line.
func NewOrder(id string, c *cart.Cart) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if c == nil || c.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("cart")
	}

	return &Order{
		id:    id,
		cart:  c,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created via NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// Cart returns the cart owned by this order.
func (o *Order) Cart() *cart.Cart {
	return o.cart
}

// IsPlaced reports whether the order has already produced a shipment.
func (o *Order) IsPlaced() bool {
	return o.placed
}

// ShipmentID returns the identifier of the shipment created by placement,
// empty while the order is unplaced.
func (o *Order) ShipmentID() string {
	return o.shipmentID
}

// MarkPlaced records the shipment produced by a successful placement and
// seals the order. A second call fails with ErrOrderAlreadyPlaced.
func (o *Order) MarkPlaced(shipmentID string) error {
	if shipmentID == "" {
		return errs.NewValueIsRequiredError("shipment id")
	}
	if o.placed {
		return ErrOrderAlreadyPlaced
	}

	o.placed = true
	o.shipmentID = shipmentID
	return nil
}
