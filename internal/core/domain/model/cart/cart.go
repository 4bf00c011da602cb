// Package cart contains the shopping cart value collection read by order
// placement.
package cart

import (
	"fmt"

	"eshop/internal/core/domain/model/product"
	"eshop/internal/pkg/errs"
)

// Line is a single cart entry: a product and the amount requested for it.
type Line struct {
	Product *product.Product
	Amount  int
}

// Cart is an ordered collection of product lines. A product appears at most
// once; adding an already present product merges the amounts instead of
// duplicating the line. No availability check happens here — availability is
// enforced at order placement time.
//
// Cart is not safe for concurrent mutation; it is built by a single caller
// and read-only once an order is placed.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddProduct adds amount units of p to the cart, merging with an existing
// line for the same product name. Amount must be a positive integer.
func (c *Cart) AddProduct(p *product.Product, amount int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	for i := range c.lines {
		if c.lines[i].Product.Name() == p.Name() {
			c.lines[i].Amount += amount
			return nil
		}
	}

	c.lines = append(c.lines, Line{Product: p, Amount: amount})
	return nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ProductNames returns the product names in insertion order.
func (c *Cart) ProductNames() []string {
	names := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		names = append(names, line.Product.Name())
	}
	return names
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
