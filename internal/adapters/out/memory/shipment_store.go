// Package memory provides in-memory implementations of the outbound ports
// for tests and local runs without external infrastructure. All types are
// safe for concurrent use.
package memory

import (
	"context"
	"sync"
	"time"

	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"
	"eshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ShipmentStore is a map-backed shipment repository. It assigns UUIDs on Add
// and stores restored copies, so callers never share aggregate instances
// with the store.
type ShipmentStore struct {
	mu        sync.RWMutex
	shipments map[string]*shipment.Shipment
}

// NewShipmentStore creates an empty in-memory shipment store.
func NewShipmentStore() *ShipmentStore {
	return &ShipmentStore{
		shipments: make(map[string]*shipment.Shipment),
	}
}

// Add persists a new shipment record, assigning a UUID if the aggregate
// carries no id.
func (s *ShipmentStore) Add(_ context.Context, aggregate *shipment.Shipment) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	id := aggregate.ID()
	if id == "" {
		id = uuid.NewString()
	}

	stored, err := cloneShipment(aggregate, id)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.shipments[id] = stored
	return id, nil
}

// Get retrieves a shipment by its identifier.
func (s *ShipmentStore) Get(_ context.Context, id string) (*shipment.Shipment, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.shipments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipmentId", id)
	}

	return cloneShipment(stored, stored.ID())
}

// Update persists the aggregate's current state.
func (s *ShipmentStore) Update(_ context.Context, aggregate *shipment.Shipment) (ports.UpdateOutcome, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.UpdateOutcomeFailed, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shipments[aggregate.ID()]; !ok {
		return ports.UpdateOutcomeFailed, errs.NewObjectNotFoundError("shipmentId", aggregate.ID())
	}

	stored, err := cloneShipment(aggregate, aggregate.ID())
	if err != nil {
		return ports.UpdateOutcomeFailed, err
	}

	s.shipments[aggregate.ID()] = stored
	return ports.UpdateOutcomeApplied, nil
}

// GetAllOverdue retrieves all non-terminal shipments whose due date lies
// before now.
func (s *ShipmentStore) GetAllOverdue(_ context.Context, now time.Time) ([]*shipment.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	overdue := make([]*shipment.Shipment, 0)
	for _, stored := range s.shipments {
		if stored.Status().IsTerminal() || !stored.IsOverdue(now) {
			continue
		}

		copied, err := cloneShipment(stored, stored.ID())
		if err != nil {
			return nil, err
		}
		overdue = append(overdue, copied)
	}

	return overdue, nil
}

func cloneShipment(aggregate *shipment.Shipment, id string) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(
		id,
		aggregate.ShippingType(),
		aggregate.ItemNames(),
		aggregate.OrderID(),
		aggregate.Status(),
		aggregate.DueDate(),
	)
}

// ShipmentUnitOfWork wraps a ShipmentStore behind the UnitOfWork contract.
// The store has no transactions; Begin, Commit and Rollback only track
// lifecycle so handler sequencing keeps working against it.
type ShipmentUnitOfWork struct {
	store *ShipmentStore
}

// Begin starts the no-op transaction.
func (u *ShipmentUnitOfWork) Begin(_ context.Context) error { return nil }

// Commit finalizes the no-op transaction.
func (u *ShipmentUnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback discards the no-op transaction.
func (u *ShipmentUnitOfWork) Rollback(_ context.Context) error { return nil }

// ShipmentRepository returns the wrapped store.
func (u *ShipmentUnitOfWork) ShipmentRepository() ports.ShipmentRepository { return u.store }

// ShipmentUnitOfWorkFactory creates unit of work instances over one shared
// in-memory store.
type ShipmentUnitOfWorkFactory struct {
	store *ShipmentStore
}

// NewShipmentUnitOfWorkFactory creates a factory over the given store.
func NewShipmentUnitOfWorkFactory(store *ShipmentStore) *ShipmentUnitOfWorkFactory {
	return &ShipmentUnitOfWorkFactory{store: store}
}

// Create produces a unit of work bound to the shared store.
func (f *ShipmentUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &ShipmentUnitOfWork{store: f.store}
}
