package commands

import (
	"context"
	"time"

	"eshop/internal/core/domain/model/cart"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"
)

// PlaceOrderCommandHandler orchestrates order placement: eager validation,
// inventory reservation, shipment creation and queue notification.
//
// The three side effects (inventory decrement, store write, queue publish)
// are independent; there is no distributed transaction. A store failure
// after the reservation succeeded leaves the reservation in place, and a
// publish failure leaves the persisted shipment in place — the notification
// is at-least-once. Every failure surfaces to the caller.
type PlaceOrderCommandHandler struct {
	uowFactory ShipmentUoWFactory
	notifier   ports.ShipmentNotifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a ShipmentUoWFactory for transactional persistence and the
// notifier announcing new shipments.
func NewPlaceOrderCommandHandler(uowFactory ShipmentUoWFactory, notifier ports.ShipmentNotifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the placement and returns the store-assigned shipment id.
//
// Steps, each a hard precondition for the next:
//  1. Validate the shipping type and due date. Neither inventory nor the
//     store is touched when either is invalid.
//  2. Reserve every cart line. If one reservation fails, the lines reserved
//     so far are released, so no partial reservation is left behind.
//  3. Persist the shipment with the canonical initial status (created).
//  4. Publish the shipment id to the notifier.
//
// On success the order is sealed; a second placement attempt on the same
// order fails before touching inventory.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	ord := cmd.Order()
	if ord.IsPlaced() {
		return "", order.ErrOrderAlreadyPlaced
	}

	now := time.Now().UTC()

	shippingType, err := shipment.NewShippingType(cmd.ShippingType())
	if err != nil {
		return "", err
	}
	if err = shipment.ValidateDueDate(cmd.DueDate(), now); err != nil {
		return "", err
	}

	if err = reserveAll(ord.Cart().Lines()); err != nil {
		return "", err
	}

	newShipment, err := shipment.NewShipment(
		shippingType,
		ord.Cart().ProductNames(),
		ord.ID(),
		cmd.DueDate(),
		now,
	)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The store assigns the shipment id. Reservations are intentionally not
	// rolled back when the write fails, see the handler doc.
	shipmentID, err := uow.ShipmentRepository().Add(ctx, newShipment)
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	if _, err = h.notifier.Publish(ctx, shipmentID); err != nil {
		return "", err
	}

	if err = ord.MarkPlaced(shipmentID); err != nil {
		return "", err
	}

	return shipmentID, nil
}

// reserveAll reserves every cart line, releasing the already-reserved lines
// when one fails so the whole order fails atomically with respect to
// inventory.
func reserveAll(lines []cart.Line) error {
	for i, line := range lines {
		if err := line.Product.Reserve(line.Amount); err != nil {
			for _, reserved := range lines[:i] {
				_ = reserved.Product.Release(reserved.Amount)
			}
			return err
		}
	}
	return nil
}
