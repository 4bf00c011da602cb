// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: a validated command object, a
// handler owning the collaborators, transaction management and persistence.
package commands

import (
	"context"

	"eshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions keep handlers independent of the concrete
// store.
type (
	// TxManager handles store transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within
	// a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ShipmentUoW manages transactions for shipment operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
