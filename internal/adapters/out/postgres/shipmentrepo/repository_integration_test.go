package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"eshop/internal/adapters/out/postgres/shipmentrepo"
	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"
	"eshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for the
// shipment repository using a PostgreSQL container.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newShipment(dueDate time.Time) *shipment.Shipment {
	shippingType, err := shipment.NewShippingType("Нова Пошта")
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		shippingType,
		[]string{"Laptop", "Phone"},
		"order-1",
		dueDate,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ShipmentRepositoryIntegrationTestSuite) restoredOverdue(status shipment.Status) *shipment.Shipment {
	shippingType, err := shipment.NewShippingType("Укр Пошта")
	suite.Require().NoError(err)

	aggregate, err := shipment.RestoreShipment(
		uuid.NewString(),
		shippingType,
		[]string{"Tablet"},
		"order-2",
		status,
		time.Now().UTC().Add(-48*time.Hour),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_AssignsID() {
	ctx := context.Background()
	aggregate := suite.newShipment(time.Now().UTC().Add(72 * time.Hour))

	id, err := suite.repository.Add(ctx, aggregate)

	suite.Require().NoError(err)
	suite.NotEmpty(id)

	stored, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(id, stored.ID())
	suite.Equal("Нова Пошта", stored.ShippingType().String())
	suite.Equal([]string{"Laptop", "Phone"}, stored.ItemNames())
	suite.Equal("order-1", stored.OrderID())
	suite.Equal(shipment.Created, stored.Status())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_KeepsSuppliedID() {
	ctx := context.Background()
	aggregate := suite.restoredOverdue(shipment.Created)

	id, err := suite.repository.Add(ctx, aggregate)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), id)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	aggregate := suite.restoredOverdue(shipment.Created)

	_, err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.Complete())

	outcome, err := suite.repository.Update(ctx, aggregate)
	suite.Require().NoError(err)
	suite.Equal(ports.UpdateOutcomeApplied, outcome)

	stored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Completed, stored.Status())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	aggregate := suite.restoredOverdue(shipment.Created)

	outcome, err := suite.repository.Update(ctx, aggregate)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal(ports.UpdateOutcomeFailed, outcome)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllOverdue_FiltersTerminalAndFuture() {
	ctx := context.Background()

	overdueCreated := suite.restoredOverdue(shipment.Created)
	overdueInProgress := suite.restoredOverdue(shipment.InProgress)
	overdueCompleted := suite.restoredOverdue(shipment.Completed)
	overdueFailed := suite.restoredOverdue(shipment.Failed)
	future := suite.newShipment(time.Now().UTC().Add(72 * time.Hour))

	for _, aggregate := range []*shipment.Shipment{
		overdueCreated, overdueInProgress, overdueCompleted, overdueFailed, future,
	} {
		_, err := suite.repository.Add(ctx, aggregate)
		suite.Require().NoError(err)
	}

	overdue, err := suite.repository.GetAllOverdue(ctx, time.Now().UTC())

	suite.Require().NoError(err)
	suite.Len(overdue, 2)

	ids := make(map[string]bool)
	for _, aggregate := range overdue {
		ids[aggregate.ID()] = true
	}
	suite.True(ids[overdueCreated.ID()])
	suite.True(ids[overdueInProgress.ID()])
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
