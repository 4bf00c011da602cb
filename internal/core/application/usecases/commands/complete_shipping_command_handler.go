package commands

import (
	"context"

	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"
)

// CompleteShippingResult carries the outcome of a completion: the new status
// and the storage operation's outcome code.
type CompleteShippingResult struct {
	ShipmentID string
	Status     shipment.Status
	Outcome    ports.UpdateOutcome
}

// CompleteShippingCommandHandler transitions a shipment to completed.
// Completion is allowed from any non-terminal status; completing a terminal
// shipment fails with shipment.ErrInvalidTransition, an unknown id with an
// errs.ObjectNotFoundError.
type CompleteShippingCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCompleteShippingCommandHandler creates a handler for shipment
// completion.
func NewCompleteShippingCommandHandler(uowFactory ShipmentUoWFactory) CompleteShippingCommandHandler {
	return CompleteShippingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the shipment, applies the transition and persists the update.
func (h *CompleteShippingCommandHandler) Handle(ctx context.Context, cmd CompleteShippingCommand) (CompleteShippingResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteShippingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteShippingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return CompleteShippingResult{}, err
	}

	if err = aggregate.Complete(); err != nil {
		return CompleteShippingResult{}, err
	}

	outcome, err := repo.Update(ctx, aggregate)
	if err != nil {
		return CompleteShippingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteShippingResult{}, err
	}

	return CompleteShippingResult{
		ShipmentID: aggregate.ID(),
		Status:     aggregate.Status(),
		Outcome:    outcome,
	}, nil
}
