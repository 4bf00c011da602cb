// Package product contains the sellable item entity and its inventory
// reservation rules.
package product

import (
	"errors"
	"fmt"
	"sync"

	"eshop/internal/pkg/errs"
	"eshop/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientInventory is the errors.Is target for failed reservations.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// InsufficientInventoryError reports a reservation request that exceeds the
// product's available amount. The reservation leaves availability unchanged.
type InsufficientInventoryError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s: requested %d of %q, %d available",
		ErrInsufficientInventory, e.Requested, e.ProductName, e.Available)
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// Product represents a sellable item with a mutable stock level.
//
// Product maintains these invariants:
//   - Name is non-empty and acts as the identity within a cart
//   - Price is non-negative
//   - Available amount never goes negative
//   - Reservation is an atomic check-then-decrement, safe for concurrent
//     orders sharing the same Product instance
//
// A Product must be created through NewProduct; the zero value fails
// validation.
type Product struct {
	name  string
	price float64

	// mu serializes reservations so that concurrent placements cannot
	// interleave the availability check and the decrement.
	mu        sync.Mutex
	available int

	guard guard.ConstructorGuard
}

// NewProduct creates a validated Product.
//
// Name must be non-empty, price non-negative and availableAmount
// non-negative. Returns a validation error otherwise.
func NewProduct(name string, price float64, availableAmount int) (*Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is less than 0", price))
	}
	if availableAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("available amount",
			fmt.Errorf("%d is less than 0", availableAmount))
	}

	return &Product{
		name:      name,
		price:     price,
		available: availableAmount,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Name returns the product identity.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// AvailableAmount returns the current stock level.
func (p *Product) AvailableAmount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.available
}

// Reserve atomically decrements the available amount by amount.
//
// Amount must be positive. If amount exceeds the current availability the
// reservation fails with an InsufficientInventoryError and the stock level
// is left unchanged. The check and the decrement happen under the product's
// lock, so concurrent reservations on the same Product can never drive the
// availability negative.
func (p *Product) Reserve(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("reserve amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if amount > p.available {
		return &InsufficientInventoryError{
			ProductName: p.name,
			Requested:   amount,
			Available:   p.available,
		}
	}

	p.available -= amount
	return nil
}

// Release returns a previously reserved amount to stock. It is used to
// unwind the already-reserved lines of an order whose later reservation
// failed, so that no partial reservation is left behind.
func (p *Product) Release(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("release amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.available += amount
	return nil
}
