package commands_test

import (
	"context"
	"testing"
	"time"

	"eshop/internal/core/application/usecases/commands"
	"eshop/internal/core/domain/model/cart"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/core/domain/model/product"
	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) (string, error) {
	args := m.Called(ctx, aggregate)
	return args.String(0), args.Error(1)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id string) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) (ports.UpdateOutcome, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(ports.UpdateOutcome), args.Error(1)
}

func (m *MockShipmentRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, shipmentID string) (string, error) {
	args := m.Called(ctx, shipmentID)
	return args.String(0), args.Error(1)
}

// laptopPhoneCart builds the cart used across placement tests: one Laptop
// (5 in stock) and two Phones (10 in stock).
func laptopPhoneCart(t *testing.T) (*cart.Cart, *product.Product, *product.Product) {
	t.Helper()

	laptop, err := product.NewProduct("Laptop", 1000.0, 5)
	require.NoError(t, err)
	phone, err := product.NewProduct("Phone", 500.0, 10)
	require.NoError(t, err)

	c := cart.NewCart()
	require.NoError(t, c.AddProduct(laptop, 1))
	require.NoError(t, c.AddProduct(phone, 2))

	return c, laptop, phone
}

func newTestOrder(t *testing.T, c *cart.Cart) *order.Order {
	t.Helper()

	ord, err := order.NewOrder("order-1", c)
	require.NoError(t, err)
	return ord
}
