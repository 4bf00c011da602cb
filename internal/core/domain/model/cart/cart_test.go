package cart_test

import (
	"testing"

	"eshop/internal/core/domain/model/cart"
	"eshop/internal/core/domain/model/product"
	"eshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddProduct(t *testing.T) {
	t.Run("should add products in insertion order", func(t *testing.T) {
		c := cart.NewCart()
		laptop, _ := product.NewProduct("Laptop", 1000.0, 5)
		phone, _ := product.NewProduct("Phone", 500.0, 10)

		require.NoError(t, c.AddProduct(laptop, 1))
		require.NoError(t, c.AddProduct(phone, 2))

		assert.Equal(t, []string{"Laptop", "Phone"}, c.ProductNames())
		assert.False(t, c.IsEmpty())

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, 1, lines[0].Amount)
		assert.Equal(t, 2, lines[1].Amount)
	})

	t.Run("should merge amounts for the same product", func(t *testing.T) {
		c := cart.NewCart()
		phone, _ := product.NewProduct("Phone", 500.0, 10)

		require.NoError(t, c.AddProduct(phone, 2))
		require.NoError(t, c.AddProduct(phone, 3))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Amount)
	})

	t.Run("should not check availability on add", func(t *testing.T) {
		c := cart.NewCart()
		phone, _ := product.NewProduct("Phone", 500.0, 1)

		// Deferred to order placement.
		require.NoError(t, c.AddProduct(phone, 100))
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		c := cart.NewCart()
		phone, _ := product.NewProduct("Phone", 500.0, 10)

		require.ErrorIs(t, c.AddProduct(phone, 0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, c.AddProduct(phone, -2), errs.ErrValueIsInvalid)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should reject unconstructed product", func(t *testing.T) {
		c := cart.NewCart()

		err := c.AddProduct(&product.Product{}, 1)

		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

func TestCart_Lines(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		c := cart.NewCart()
		phone, _ := product.NewProduct("Phone", 500.0, 10)
		require.NoError(t, c.AddProduct(phone, 2))

		lines := c.Lines()
		lines[0].Amount = 99

		assert.Equal(t, 2, c.Lines()[0].Amount)
	})
}
