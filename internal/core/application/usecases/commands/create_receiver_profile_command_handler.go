package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/receiver"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/errs"
)

// CreateReceiverProfileCommandHandler handles the business logic for
// receiver registration. Only governance-approved actors may create
// profiles, and the email must be unique within the receiver collection.
type CreateReceiverProfileCommandHandler struct {
	sessionFactory ReceiverSessionFactory
	policy         services.AccessPolicy
	clock          ports.Clock
}

// NewCreateReceiverProfileCommandHandler creates a handler for receiver registration.
func NewCreateReceiverProfileCommandHandler(
	sessionFactory ReceiverSessionFactory,
	policy services.AccessPolicy,
	clock ports.Clock,
) CreateReceiverProfileCommandHandler {
	return CreateReceiverProfileCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
		clock:          clock,
	}
}

// Handle processes the receiver creation command and returns the stored
// profile carrying its issued identifier.
func (h *CreateReceiverProfileCommandHandler) Handle(ctx context.Context, cmd CreateReceiverProfileCommand) (receiver.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return receiver.Profile{}, err
	}

	if err := h.policy.AuthorizeGovernance(ctx, cmd.Actor()); err != nil {
		return receiver.Profile{}, err
	}

	profile, err := receiver.NewProfile(
		cmd.Name(), cmd.Phone(), cmd.Email(), cmd.Address(), h.clock.Now(),
	)
	if err != nil {
		return receiver.Profile{}, err
	}

	session := h.sessionFactory.Create()
	if err = session.Begin(ctx); err != nil {
		return receiver.Profile{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	receivers := session.Receivers()
	existing, err := receivers.List(ctx)
	if err != nil {
		return receiver.Profile{}, err
	}
	for _, other := range existing {
		if other.Email().Equals(profile.Email()) {
			return receiver.Profile{}, errs.NewConflictError("email already exists")
		}
	}

	stored, err := receivers.Insert(ctx, profile)
	if err != nil {
		return receiver.Profile{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return receiver.Profile{}, err
	}

	return stored, nil
}
