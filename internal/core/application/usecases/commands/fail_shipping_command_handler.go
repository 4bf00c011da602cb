package commands

import (
	"context"
	"time"

	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"
)

// FailShippingResult carries the outcome of a fail transition: the new
// status and the storage operation's outcome code.
type FailShippingResult struct {
	ShipmentID string
	Status     shipment.Status
	Outcome    ports.UpdateOutcome
}

// FailShippingCommandHandler transitions a shipment to failed.
// The transition is refused with shipment.ErrShipmentNotOverdue while the
// due date lies in the future; terminal shipments fail with
// shipment.ErrInvalidTransition, unknown ids with an
// errs.ObjectNotFoundError.
type FailShippingCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewFailShippingCommandHandler creates a handler for failing shipments.
func NewFailShippingCommandHandler(uowFactory ShipmentUoWFactory) FailShippingCommandHandler {
	return FailShippingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the shipment, applies the transition against the current UTC
// wall clock and persists the update.
func (h *FailShippingCommandHandler) Handle(ctx context.Context, cmd FailShippingCommand) (FailShippingResult, error) {
	if err := cmd.Validate(); err != nil {
		return FailShippingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return FailShippingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return FailShippingResult{}, err
	}

	if err = aggregate.Fail(time.Now().UTC()); err != nil {
		return FailShippingResult{}, err
	}

	outcome, err := repo.Update(ctx, aggregate)
	if err != nil {
		return FailShippingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return FailShippingResult{}, err
	}

	return FailShippingResult{
		ShipmentID: aggregate.ID(),
		Status:     aggregate.Status(),
		Outcome:    outcome,
	}, nil
}
