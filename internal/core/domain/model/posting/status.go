package posting

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of a surplus posting.
// It implements a state machine with defined transitions to ensure
// postings follow the delivery workflow.
//
// State transitions:
//
//	Open ──> Assigned ──> Delivered
//
// Delivered is terminal: a posting is never re-opened once its delivery has
// been recorded. Each transition happens at most once per posting.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when a posting is first created.
	// Open postings are waiting for a driver assignment.
	Open

	// Assigned indicates a driver has been bound to the posting.
	// Exactly one assignment ever references a posting.
	Assigned

	// Delivered indicates the posting's delivery has been confirmed.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Open, Assigned and Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Assigned.
//
// The only valid transition is Open -> Assigned: a posting can be assigned
// exactly once, and a Delivered posting can never be assigned again.
//
// Returns (Assigned, nil) on a valid transition and (0, error) otherwise.
func (s Status) Assign() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign", s.String()))
	}
	return Assigned, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid transition is Assigned -> Delivered: a posting must carry an
// assignment before its delivery can be recorded, and Delivered is terminal.
//
// Returns (Delivered, nil) on a valid transition and (0, error) otherwise.
func (s Status) Deliver() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
	return Delivered, nil
}
