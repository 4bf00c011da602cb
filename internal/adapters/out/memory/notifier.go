package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// ShipmentNotifier records published shipment ids instead of enqueueing
// them. Each publish is assigned a UUID delivery token, mirroring the queue
// transport.
type ShipmentNotifier struct {
	mu        sync.Mutex
	published []string
}

// NewShipmentNotifier creates an empty recording notifier.
func NewShipmentNotifier() *ShipmentNotifier {
	return &ShipmentNotifier{}
}

// Publish records the shipment id and returns a fresh delivery token.
func (n *ShipmentNotifier) Publish(_ context.Context, shipmentID string) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.published = append(n.published, shipmentID)
	return uuid.NewString(), nil
}

// Published returns a copy of the shipment ids in publish order.
func (n *ShipmentNotifier) Published() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	published := make([]string, len(n.published))
	copy(published, n.published)
	return published
}
