// Package shipment contains the shipment aggregate, its status state machine
// and the fixed set of supported shipping types.
//
// A shipment is the persisted record tracking a single delivery's carrier,
// items, order, status and due date. Its lifecycle is one-directional:
//
//	created ──┬──> in_progress ──┬──> completed
//	          │                  │
//	          └──────────────────┴──> failed (only once the due date passed)
//
// completed and failed are terminal; any transition out of them fails with
// ErrInvalidTransition.
package shipment
