package shipment

import (
	"errors"
	"fmt"

	"eshop/internal/pkg/errs"
)

// ErrInvalidTransition is the errors.Is target for attempts to move a
// shipment out of a terminal status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	created ──┬──> in_progress ──┬──> completed
//	          │                  │
//	          └──────────────────┴──> failed
//
// completed and failed are terminal: no further transitions are permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the canonical initial status of a freshly placed shipment.
	Created

	// InProgress indicates the shipment has been picked up for processing.
	InProgress

	// Completed indicates the shipment was delivered. Terminal.
	Completed

	// Failed indicates the shipment missed its due date. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Created:    "created",
		InProgress: "in_progress",
		Completed:  "completed",
		Failed:     "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "created",
		InProgress: "in_progress",
		Completed:  "completed",
		Failed:     "failed",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("created", "in_progress",
// "completed", "failed"). Implements fmt.Stringer and is safe on any value;
// invalid values map to "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Created -> Completed
//   - InProgress -> Completed
//
// Transitions out of Completed or Failed fail with ErrInvalidTransition;
// an Unknown status fails validation.
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot complete a %s shipment", ErrInvalidTransition, s)
	}

	return Completed, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - Created -> Failed
//   - InProgress -> Failed
//
// Transitions out of Completed or Failed fail with ErrInvalidTransition.
// Whether the shipment is actually eligible to fail (due date elapsed) is
// enforced by Shipment.Fail, not here.
func (s Status) Fail() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot fail a %s shipment", ErrInvalidTransition, s)
	}

	return Failed, nil
}

// StatusFromString parses a wire name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}
