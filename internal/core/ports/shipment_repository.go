// Package ports defines the contracts between the core and its external
// collaborators: the shipment store, the shipment notifier and the product
// catalog. Implementations live in internal/adapters.
package ports

import (
	"context"
	"time"

	"eshop/internal/core/domain/model/shipment"
)

// UpdateOutcome is the storage operation's outcome code returned by status
// updates, surfaced to callers of the complete/fail operations.
type UpdateOutcome int

const (
	// UpdateOutcomeFailed indicates the store did not apply the update.
	UpdateOutcomeFailed UpdateOutcome = iota

	// UpdateOutcomeApplied indicates the store persisted the new status.
	UpdateOutcomeApplied
)

// String returns the outcome's wire name.
func (o UpdateOutcome) String() string {
	if o == UpdateOutcomeApplied {
		return "applied"
	}
	return "failed"
}

// ShipmentRepository is the persistence contract for shipment records, a
// durable map from shipment identifier to record. The store must provide
// read-your-writes consistency for a single shipment id.
type ShipmentRepository interface {
	// Add persists a new shipment record. When the aggregate carries no id
	// the store assigns one; the assigned identifier is returned either way.
	Add(ctx context.Context, aggregate *shipment.Shipment) (string, error)

	// Get retrieves a shipment by its identifier.
	// Returns an errs.ObjectNotFoundError if no record exists.
	Get(ctx context.Context, id string) (*shipment.Shipment, error)

	// Update persists the aggregate's current state, returning the store's
	// outcome code. Returns an errs.ObjectNotFoundError if the record is
	// absent.
	Update(ctx context.Context, aggregate *shipment.Shipment) (UpdateOutcome, error)

	// GetAllOverdue retrieves all non-terminal shipments whose due date lies
	// before now. Used by the overdue sweep.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*shipment.Shipment, error)
}
