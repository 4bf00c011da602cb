package commands

import (
	"context"
	"time"
)

// FailOverdueShipmentsCommandHandler fails all overdue non-terminal
// shipments in one transaction. Shipments that became terminal between the
// query and the transition are skipped rather than failing the sweep.
type FailOverdueShipmentsCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewFailOverdueShipmentsCommandHandler creates a handler for the overdue
// sweep.
func NewFailOverdueShipmentsCommandHandler(uowFactory ShipmentUoWFactory) FailOverdueShipmentsCommandHandler {
	return FailOverdueShipmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle queries the overdue shipments and fails each one, returning how
// many transitions were persisted.
func (h *FailOverdueShipmentsCommandHandler) Handle(ctx context.Context, cmd FailOverdueShipmentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	overdue, err := repo.GetAllOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, aggregate := range overdue {
		if aggregate.Status().IsTerminal() {
			continue
		}
		if err = aggregate.Fail(now); err != nil {
			return failed, err
		}
		if _, err = repo.Update(ctx, aggregate); err != nil {
			return failed, err
		}
		failed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return failed, nil
}
