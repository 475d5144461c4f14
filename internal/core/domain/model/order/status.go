package order

import (
	"fmt"

	"vidstore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order or of a single order line.
// It implements a state machine with defined transitions to ensure purchases
// follow the correct business workflow.
//
// State transitions:
//
//	Ordered ──> Completed ──> Canceled
//	    │                        ▲
//	    └────────────────────────┘
//
// Cancellation is terminal and reachable from every live state; canceling an
// already canceled line is a no-op rather than an error.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status after purchase. The payment is not yet
	// confirmed and nothing is refundable.
	Ordered

	// Completed indicates the payment was confirmed. The full purchase
	// becomes refundable from this point on.
	Completed

	// Canceled is the terminal status. No further transitions are allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Ordered:   "Ordered",
		Completed: "Completed",
		Canceled:  "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:   "Ordered",
		Completed: "Completed",
		Canceled:  "Canceled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Ordered, Completed, Canceled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Ordered -> Completed (payment confirmed)
//
// Invalid transitions:
//   - Completed -> Completed (already completed)
//   - Canceled -> Completed (canceled purchases stay canceled)
//   - Unknown -> Completed (invalid initial state)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Complete() (Status, error) {
	if s != Ordered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Canceled.
//
// Cancellation is allowed from every state, including Canceled itself:
// canceling twice leaves the status unchanged. This idempotency is what lets
// whole-order cancellation sweep over lines regardless of their current state.
func (s Status) Cancel() Status {
	return Canceled
}
