package assignment

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of a driver assignment.
//
// State transitions:
//
//	Pending ──> Completed
//
// An assignment is Pending while the driver is on the road and Completed
// once the delivery has been recorded. Completed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status when a driver is bound to a posting.
	// A driver with a Pending assignment is considered busy.
	Pending

	// Completed indicates the assignment's delivery has been recorded.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
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

// Complete transitions the status to Completed. Only a Pending assignment
// can be completed, and completing it frees the driver for new work.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}
	return Completed, nil
}
