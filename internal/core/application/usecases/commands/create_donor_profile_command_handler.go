package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/errs"
)

// CreateDonorProfileCommandHandler handles the business logic for donor
// registration. Only governance-approved actors may create profiles, and
// the donor's email must not already be taken within the donor collection.
type CreateDonorProfileCommandHandler struct {
	sessionFactory DonorSessionFactory
	policy         services.AccessPolicy
	clock          ports.Clock
}

// NewCreateDonorProfileCommandHandler creates a handler for donor registration.
func NewCreateDonorProfileCommandHandler(
	sessionFactory DonorSessionFactory,
	policy services.AccessPolicy,
	clock ports.Clock,
) CreateDonorProfileCommandHandler {
	return CreateDonorProfileCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
		clock:          clock,
	}
}

// Handle processes the donor creation command and returns the stored
// profile carrying its issued identifier.
func (h *CreateDonorProfileCommandHandler) Handle(ctx context.Context, cmd CreateDonorProfileCommand) (donor.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return donor.Profile{}, err
	}

	if err := h.policy.AuthorizeGovernance(ctx, cmd.Actor()); err != nil {
		return donor.Profile{}, err
	}

	profile, err := donor.NewProfile(
		cmd.Name(), cmd.Phone(), cmd.Email(), cmd.Address(),
		cmd.BusinessType(), h.clock.Now(),
	)
	if err != nil {
		return donor.Profile{}, err
	}

	session := h.sessionFactory.Create()
	if err = session.Begin(ctx); err != nil {
		return donor.Profile{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	donors := session.Donors()
	existing, err := donors.List(ctx)
	if err != nil {
		return donor.Profile{}, err
	}
	for _, other := range existing {
		if other.Email().Equals(profile.Email()) {
			return donor.Profile{}, errs.NewConflictError("email already exists")
		}
	}

	stored, err := donors.Insert(ctx, profile)
	if err != nil {
		return donor.Profile{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return donor.Profile{}, err
	}

	return stored, nil
}
