package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/assignment"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/errs"
)

// CreateAssignmentCommandHandler handles the business logic for binding a
// driver to an open surplus posting.
//
// The whole check-then-act sequence runs inside one session, so two
// concurrent commands targeting the same posting resolve to exactly one
// assignment: the loser finds the posting already Assigned and fails with
// a conflict.
//
// Business rules:
//   - The actor must be the driver themselves or governance approved
//   - The receiver must exist
//   - The posting must exist and be Open
//   - The driver must exist and hold no Pending assignment
type CreateAssignmentCommandHandler struct {
	sessionFactory AssignmentSessionFactory
	policy         services.AccessPolicy
	clock          ports.Clock
}

// NewCreateAssignmentCommandHandler creates a handler for assignment creation.
func NewCreateAssignmentCommandHandler(
	sessionFactory AssignmentSessionFactory,
	policy services.AccessPolicy,
	clock ports.Clock,
) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
		clock:          clock,
	}
}

// Handle processes the assignment command and returns the stored
// assignment carrying its issued identifier.
func (h *CreateAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateAssignmentCommand) (assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return assignment.Assignment{}, err
	}

	if err := h.policy.AuthorizeSelfOrGovernance(ctx, cmd.Actor(), cmd.DriverID()); err != nil {
		return assignment.Assignment{}, err
	}

	session := h.sessionFactory.Create()
	if err := session.Begin(ctx); err != nil {
		return assignment.Assignment{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	stored, err := createAssignment(ctx, session, cmd.ReceiverID(), cmd.PostingID(), cmd.DriverID(), h.clock)
	if err != nil {
		return assignment.Assignment{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return assignment.Assignment{}, err
	}

	return stored, nil
}

// createAssignment runs the assignment workflow against an already begun
// session. Shared with the dispatch handler, which performs the same
// binding for matches it finds on its own.
func createAssignment(
	ctx context.Context,
	session AssignmentSession,
	receiverID, postingID, driverID kernel.ID,
	clock ports.Clock,
) (assignment.Assignment, error) {
	known, err := session.Receivers().Exists(ctx, receiverID)
	if err != nil {
		return assignment.Assignment{}, err
	}
	if !known {
		return assignment.Assignment{}, errs.NewObjectNotFoundError("receiverId", receiverID)
	}

	target, err := session.Postings().Find(ctx, postingID)
	if err != nil {
		return assignment.Assignment{}, err
	}
	if target.Status() != posting.Open {
		return assignment.Assignment{}, errs.NewConflictError("posting is not open")
	}

	exists, err := session.Drivers().Exists(ctx, driverID)
	if err != nil {
		return assignment.Assignment{}, err
	}
	if !exists {
		return assignment.Assignment{}, errs.NewObjectNotFoundError("driverId", driverID)
	}

	busy, err := driverIsBusy(ctx, session.Assignments(), driverID)
	if err != nil {
		return assignment.Assignment{}, err
	}
	if busy {
		return assignment.Assignment{}, errs.NewConflictError("driver already has a pending assignment")
	}

	entity, err := assignment.NewAssignment(receiverID, postingID, driverID, clock.Now())
	if err != nil {
		return assignment.Assignment{}, err
	}

	stored, err := session.Assignments().Insert(ctx, entity)
	if err != nil {
		return assignment.Assignment{}, err
	}

	if _, err = session.Postings().Mutate(ctx, postingID, posting.Posting.Assign); err != nil {
		return assignment.Assignment{}, err
	}

	return stored, nil
}

func driverIsBusy(ctx context.Context, assignments ports.AssignmentRegistry, driverID kernel.ID) (bool, error) {
	all, err := assignments.List(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range all {
		if a.DriverID() == driverID && a.Pending() {
			return true, nil
		}
	}
	return false, nil
}
