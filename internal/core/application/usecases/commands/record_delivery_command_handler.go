package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/assignment"
	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/errs"
)

// RecordDeliveryCommandHandler handles the business logic for confirming a
// delivery. Confirmation completes the posting's assignment, moves the
// posting to Delivered and writes the immutable delivery record, all inside
// one session.
//
// Business rules:
//   - The actor must be the driver themselves or governance approved
//   - The posting must exist and be Assigned
//   - The posting's Pending assignment must reference the confirming driver
type RecordDeliveryCommandHandler struct {
	sessionFactory DeliverySessionFactory
	policy         services.AccessPolicy
	clock          ports.Clock
}

// NewRecordDeliveryCommandHandler creates a handler for delivery confirmation.
func NewRecordDeliveryCommandHandler(
	sessionFactory DeliverySessionFactory,
	policy services.AccessPolicy,
	clock ports.Clock,
) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
		clock:          clock,
	}
}

// Handle processes the delivery confirmation and returns the stored record
// carrying its issued identifier.
func (h *RecordDeliveryCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryCommand) (delivery.Record, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Record{}, err
	}

	if err := h.policy.AuthorizeSelfOrGovernance(ctx, cmd.Actor(), cmd.DriverID()); err != nil {
		return delivery.Record{}, err
	}

	session := h.sessionFactory.Create()
	if err := session.Begin(ctx); err != nil {
		return delivery.Record{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	target, err := session.Postings().Find(ctx, cmd.PostingID())
	if err != nil {
		return delivery.Record{}, err
	}
	if target.Status() != posting.Assigned {
		return delivery.Record{}, errs.NewConflictError("posting is not assigned")
	}

	current, err := findPendingAssignment(ctx, session.Assignments(), cmd.PostingID())
	if err != nil {
		return delivery.Record{}, err
	}
	if current.DriverID() != cmd.DriverID() {
		return delivery.Record{}, errs.NewConflictError("assignment belongs to another driver")
	}

	entity, err := delivery.NewRecord(cmd.PostingID(), cmd.DriverID(), h.clock.Now(), cmd.Rating())
	if err != nil {
		return delivery.Record{}, err
	}

	if _, err = session.Assignments().Mutate(ctx, current.ID(), assignment.Assignment.Complete); err != nil {
		return delivery.Record{}, err
	}

	if _, err = session.Postings().Mutate(ctx, cmd.PostingID(), posting.Posting.Deliver); err != nil {
		return delivery.Record{}, err
	}

	stored, err := session.Deliveries().Insert(ctx, entity)
	if err != nil {
		return delivery.Record{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return delivery.Record{}, err
	}

	return stored, nil
}

func findPendingAssignment(ctx context.Context, assignments ports.AssignmentRegistry, postingID kernel.ID) (assignment.Assignment, error) {
	all, err := assignments.List(ctx)
	if err != nil {
		return assignment.Assignment{}, err
	}
	for _, a := range all {
		if a.PostingID() == postingID && a.Pending() {
			return a, nil
		}
	}
	return assignment.Assignment{}, errs.NewObjectNotFoundError("assignmentId", postingID)
}
