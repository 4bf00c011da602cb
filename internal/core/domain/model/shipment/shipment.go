package shipment

import (
	"errors"
	"fmt"
	"time"

	"eshop/internal/pkg/errs"
	"eshop/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrShipmentNotOverdue is returned when a fail transition is requested
	// for a shipment whose due date has not passed yet.
	ErrShipmentNotOverdue = errors.New("shipment is not overdue yet")
)

// ValidateDueDate checks that dueDate is strictly after now. A violation
// fails with a message containing "Shipping due datetime must be greater
// than datetime now".
func ValidateDueDate(dueDate, now time.Time) error {
	if !dueDate.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("due date",
			fmt.Errorf("Shipping due datetime must be greater than datetime now: %s is not after %s",
				dueDate.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339)))
	}
	return nil
}

// Shipment is the aggregate tracking a single delivery: carrier, items,
// owning order, lifecycle status and due date.
//
// Shipment maintains these invariants:
//   - Shipping type is one of the supported carriers
//   - Item names are non-empty
//   - Order id is non-empty
//   - Due date is strictly after the creation time
//   - Status transitions are one-directional; completed and failed are final
//
// The id is assigned by the shipment store on first persistence unless one
// was supplied; an unpersisted shipment has an empty id.
type Shipment struct {
	id           string
	shippingType ShippingType
	itemNames    []string
	orderID      string
	status       Status
	dueDate      time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in the canonical initial status (created).
//
// The due date is validated against now, both taken as UTC wall-clock at the
// moment the caller started the placement. The id is left empty for the
// store to assign.
func NewShipment(shippingType ShippingType, itemNames []string, orderID string, dueDate, now time.Time) (*Shipment, error) {
	if err := shippingType.Validate(); err != nil {
		return nil, err
	}
	if len(itemNames) == 0 {
		return nil, errs.NewValueIsRequiredError("item names")
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err := ValidateDueDate(dueDate, now); err != nil {
		return nil, err
	}

	names := make([]string, len(itemNames))
	copy(names, itemNames)

	return &Shipment{
		shippingType: shippingType,
		itemNames:    names,
		orderID:      orderID,
		status:       Created,
		dueDate:      dueDate.UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreShipment reconstructs a persisted shipment from storage. Unlike
// NewShipment it accepts any valid status and does not re-validate the due
// date against the current time.
func RestoreShipment(id string, shippingType ShippingType, itemNames []string, orderID string, status Status, dueDate time.Time) (*Shipment, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if err := shippingType.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, len(itemNames))
	copy(names, itemNames)

	return &Shipment{
		id:           id,
		shippingType: shippingType,
		itemNames:    names,
		orderID:      orderID,
		status:       status,
		dueDate:      dueDate.UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Shipment was created via a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the store-assigned identifier, empty if not yet persisted.
func (s *Shipment) ID() string {
	return s.id
}

// ShippingType returns the carrier.
func (s *Shipment) ShippingType() ShippingType {
	return s.shippingType
}

// ItemNames returns a copy of the shipped product names in order.
func (s *Shipment) ItemNames() []string {
	names := make([]string, len(s.itemNames))
	copy(names, s.itemNames)
	return names
}

// OrderID returns the identifier of the order this shipment belongs to.
func (s *Shipment) OrderID() string {
	return s.orderID
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// DueDate returns the UTC due date.
func (s *Shipment) DueDate() time.Time {
	return s.dueDate
}

// IsOverdue reports whether the due date has passed at now.
func (s *Shipment) IsOverdue(now time.Time) bool {
	return s.dueDate.Before(now)
}

// Complete marks the shipment as delivered. Allowed from any non-terminal
// status; a terminal shipment fails with ErrInvalidTransition.
func (s *Shipment) Complete() error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Fail marks the shipment as failed. Allowed from any non-terminal status,
// but only once the due date has passed at now; an earlier attempt is
// refused with ErrShipmentNotOverdue.
func (s *Shipment) Fail(now time.Time) error {
	if !s.IsOverdue(now) {
		return fmt.Errorf("%w: due date %s has not passed",
			ErrShipmentNotOverdue, s.dueDate.Format(time.RFC3339))
	}

	newStatus, err := s.status.Fail()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}
