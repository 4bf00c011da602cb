package commands_test

import (
	"errors"
	"testing"
	"time"

	"eshop/internal/core/application/usecases/commands"
	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFailOverdueShipmentsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFailOverdueShipmentsCommand()

	pastDue := time.Now().UTC().Add(-24 * time.Hour)
	first := restoredShipment(t, shipment.Created, pastDue)
	second := restoredShipment(t, shipment.InProgress, pastDue)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetAllOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*shipment.Shipment{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(ports.UpdateOutcomeApplied, nil).Once(),
		repo.On("Update", mock.Anything, second).Return(ports.UpdateOutcomeApplied, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailOverdueShipmentsCommandHandler(factory)
	failed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, failed)
	assert.Equal(t, shipment.Failed, first.Status())
	assert.Equal(t, shipment.Failed, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFailOverdueShipmentsCommandHandler_Handle_SkipsTerminal(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFailOverdueShipmentsCommand()

	pastDue := time.Now().UTC().Add(-24 * time.Hour)
	terminal := restoredShipment(t, shipment.Completed, pastDue)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetAllOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*shipment.Shipment{terminal}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailOverdueShipmentsCommandHandler(factory)
	failed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.Equal(t, shipment.Completed, terminal.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFailOverdueShipmentsCommandHandler_Handle_NothingOverdue(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFailOverdueShipmentsCommand()

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetAllOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*shipment.Shipment{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailOverdueShipmentsCommandHandler(factory)
	failed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, failed)
}

func TestFailOverdueShipmentsCommandHandler_Handle_QueryError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFailOverdueShipmentsCommand()

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetAllOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("query error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailOverdueShipmentsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
