package order_test

import (
	"testing"

	"eshop/internal/core/domain/model/cart"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/core/domain/model/product"
	"eshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.NewCart()
	laptop, err := product.NewProduct("Laptop", 1000.0, 5)
	require.NoError(t, err)
	require.NoError(t, c.AddProduct(laptop, 1))
	return c
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with cart", func(t *testing.T) {
		o, err := order.NewOrder("order-1", testCart(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "order-1", o.ID())
		assert.False(t, o.IsPlaced())
		assert.Empty(t, o.ShipmentID())
		assert.NotEmpty(t, o.Cart().ProductNames())
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := order.NewOrder("", testCart(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject nil cart", func(t *testing.T) {
		_, err := order.NewOrder("order-1", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		_, err := order.NewOrder("order-1", cart.NewCart())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_MarkPlaced(t *testing.T) {
	t.Run("should seal the order with its shipment id", func(t *testing.T) {
		o, _ := order.NewOrder("order-1", testCart(t))

		require.NoError(t, o.MarkPlaced("shipment-1"))

		assert.True(t, o.IsPlaced())
		assert.Equal(t, "shipment-1", o.ShipmentID())
	})

	t.Run("second placement fails", func(t *testing.T) {
		o, _ := order.NewOrder("order-1", testCart(t))
		require.NoError(t, o.MarkPlaced("shipment-1"))

		err := o.MarkPlaced("shipment-2")

		require.ErrorIs(t, err, order.ErrOrderAlreadyPlaced)
		assert.Equal(t, "shipment-1", o.ShipmentID())
	})

	t.Run("should reject empty shipment id", func(t *testing.T) {
		o, _ := order.NewOrder("order-1", testCart(t))

		require.ErrorIs(t, o.MarkPlaced(""), errs.ErrValueIsRequired)
		assert.False(t, o.IsPlaced())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
