package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/pkg/errs"
)

// CreateSurplusPostingCommandHandler handles the business logic for listing
// surplus food. The actor must be the donor themselves or governance
// approved, and the donor must exist.
type CreateSurplusPostingCommandHandler struct {
	sessionFactory PostingSessionFactory
	policy         services.AccessPolicy
}

// NewCreateSurplusPostingCommandHandler creates a handler for posting creation.
func NewCreateSurplusPostingCommandHandler(
	sessionFactory PostingSessionFactory,
	policy services.AccessPolicy,
) CreateSurplusPostingCommandHandler {
	return CreateSurplusPostingCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
	}
}

// Handle processes the posting creation command and returns the stored
// posting carrying its issued identifier.
func (h *CreateSurplusPostingCommandHandler) Handle(ctx context.Context, cmd CreateSurplusPostingCommand) (posting.Posting, error) {
	if err := cmd.Validate(); err != nil {
		return posting.Posting{}, err
	}

	if err := h.policy.AuthorizeSelfOrGovernance(ctx, cmd.Actor(), cmd.DonorID()); err != nil {
		return posting.Posting{}, err
	}

	entity, err := posting.NewPosting(
		cmd.DonorID(), cmd.FoodType(), cmd.QuantityKg(),
		cmd.BestBeforeDate(), cmd.HandlingInstructions(),
	)
	if err != nil {
		return posting.Posting{}, err
	}

	session := h.sessionFactory.Create()
	if err = session.Begin(ctx); err != nil {
		return posting.Posting{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	exists, err := session.Donors().Exists(ctx, cmd.DonorID())
	if err != nil {
		return posting.Posting{}, err
	}
	if !exists {
		return posting.Posting{}, errs.NewObjectNotFoundError("donorId", cmd.DonorID())
	}

	stored, err := session.Postings().Insert(ctx, entity)
	if err != nil {
		return posting.Posting{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return posting.Posting{}, err
	}

	return stored, nil
}
