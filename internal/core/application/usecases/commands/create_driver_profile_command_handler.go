package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/errs"
)

// CreateDriverProfileCommandHandler handles the business logic for driver
// registration. Only governance-approved actors may create profiles, and
// the email must be unique within the driver collection.
type CreateDriverProfileCommandHandler struct {
	sessionFactory DriverSessionFactory
	policy         services.AccessPolicy
	clock          ports.Clock
}

// NewCreateDriverProfileCommandHandler creates a handler for driver registration.
func NewCreateDriverProfileCommandHandler(
	sessionFactory DriverSessionFactory,
	policy services.AccessPolicy,
	clock ports.Clock,
) CreateDriverProfileCommandHandler {
	return CreateDriverProfileCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
		clock:          clock,
	}
}

// Handle processes the driver creation command and returns the stored
// profile carrying its issued identifier.
func (h *CreateDriverProfileCommandHandler) Handle(ctx context.Context, cmd CreateDriverProfileCommand) (driver.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return driver.Profile{}, err
	}

	if err := h.policy.AuthorizeGovernance(ctx, cmd.Actor()); err != nil {
		return driver.Profile{}, err
	}

	profile, err := driver.NewProfile(
		cmd.Name(), cmd.Phone(), cmd.Email(), cmd.Address(), h.clock.Now(),
	)
	if err != nil {
		return driver.Profile{}, err
	}

	session := h.sessionFactory.Create()
	if err = session.Begin(ctx); err != nil {
		return driver.Profile{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	drivers := session.Drivers()
	existing, err := drivers.List(ctx)
	if err != nil {
		return driver.Profile{}, err
	}
	for _, other := range existing {
		if other.Email().Equals(profile.Email()) {
			return driver.Profile{}, errs.NewConflictError("email already exists")
		}
	}

	stored, err := drivers.Insert(ctx, profile)
	if err != nil {
		return driver.Profile{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return driver.Profile{}, err
	}

	return stored, nil
}
