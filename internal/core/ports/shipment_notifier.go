package ports

import "context"

// ShipmentNotifier announces newly created shipments to downstream consumers
// via a queue. Delivery is at-least-once and fire-and-forget: the payload is
// exactly the shipment identifier string, and no ordering is guaranteed
// across distinct identifiers.
type ShipmentNotifier interface {
	// Publish enqueues the shipment id and returns the transport's delivery
	// token for it.
	Publish(ctx context.Context, shipmentID string) (string, error)
}
