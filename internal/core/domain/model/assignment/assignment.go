package assignment

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through the NewAssignment factory method.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment binds exactly one driver to exactly one surplus posting, to be
// delivered to exactly one receiver. At most one assignment ever exists per
// posting, and a driver holds at most one Pending assignment at a time; both
// rules are enforced by the coordinator that creates assignments, not here.
type Assignment struct {
	id         kernel.ID
	receiverID kernel.ID
	postingID  kernel.ID
	driverID   kernel.ID
	assignedAt time.Time
	status     Status

	isConstructed bool
}

// NewAssignment creates an Assignment in the Pending state with validation.
func NewAssignment(receiverID, postingID, driverID kernel.ID, assignedAt time.Time) (Assignment, error) {
	a := Assignment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setReceiverID(receiverID),
		a.setPostingID(postingID),
		a.setDriverID(driverID),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return Assignment{}, err
	}

	return a, nil
}

// Validate ensures the Assignment was constructed through NewAssignment.
func (a Assignment) Validate() error {
	if !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// WithID returns a copy of the assignment carrying the issued identifier.
func (a Assignment) WithID(id kernel.ID) Assignment {
	a.id = id
	return a
}

// ID returns the assignment's unique identifier, or zero before insertion.
func (a Assignment) ID() kernel.ID { return a.id }

// ReceiverID returns the identifier of the receiver awaiting the delivery.
func (a Assignment) ReceiverID() kernel.ID { return a.receiverID }

// PostingID returns the identifier of the assigned surplus posting.
func (a Assignment) PostingID() kernel.ID { return a.postingID }

// DriverID returns the identifier of the driver carrying the delivery.
func (a Assignment) DriverID() kernel.ID { return a.driverID }

// AssignedAt returns the time the assignment was created.
func (a Assignment) AssignedAt() time.Time { return a.assignedAt }

// Status returns the current state of the assignment.
func (a Assignment) Status() Status { return a.status }

// Pending reports whether the driver is still busy with this assignment.
func (a Assignment) Pending() bool { return a.status == Pending }

// Complete returns a copy of the assignment transitioned to Completed.
func (a Assignment) Complete() (Assignment, error) {
	newStatus, err := a.status.Complete()
	if err != nil {
		return Assignment{}, err
	}
	a.status = newStatus
	return a, nil
}

func (a *Assignment) setReceiverID(receiverID kernel.ID) error {
	if err := receiverID.Validate("receiverId"); err != nil {
		return err
	}
	a.receiverID = receiverID
	return nil
}

func (a *Assignment) setPostingID(postingID kernel.ID) error {
	if err := postingID.Validate("postingId"); err != nil {
		return err
	}
	a.postingID = postingID
	return nil
}

func (a *Assignment) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate("driverId"); err != nil {
		return err
	}
	a.driverID = driverID
	return nil
}

func (a *Assignment) setAssignedAt(assignedAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	a.assignedAt = assignedAt
	return nil
}
