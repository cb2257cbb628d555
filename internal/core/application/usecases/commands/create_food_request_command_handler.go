package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/pkg/errs"
)

// CreateFoodRequestCommandHandler handles the business logic for food
// request registration. The actor must be the receiver themselves or
// governance approved, and the receiver must exist.
type CreateFoodRequestCommandHandler struct {
	sessionFactory FoodRequestSessionFactory
	policy         services.AccessPolicy
}

// NewCreateFoodRequestCommandHandler creates a handler for food request creation.
func NewCreateFoodRequestCommandHandler(
	sessionFactory FoodRequestSessionFactory,
	policy services.AccessPolicy,
) CreateFoodRequestCommandHandler {
	return CreateFoodRequestCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
	}
}

// Handle processes the food request command and returns the stored request
// carrying its issued identifier.
func (h *CreateFoodRequestCommandHandler) Handle(ctx context.Context, cmd CreateFoodRequestCommand) (request.FoodRequest, error) {
	if err := cmd.Validate(); err != nil {
		return request.FoodRequest{}, err
	}

	if err := h.policy.AuthorizeSelfOrGovernance(ctx, cmd.Actor(), cmd.ReceiverID()); err != nil {
		return request.FoodRequest{}, err
	}

	entity, err := request.NewFoodRequest(cmd.ReceiverID(), cmd.Description(), cmd.QuantityKg())
	if err != nil {
		return request.FoodRequest{}, err
	}

	session := h.sessionFactory.Create()
	if err = session.Begin(ctx); err != nil {
		return request.FoodRequest{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	exists, err := session.Receivers().Exists(ctx, cmd.ReceiverID())
	if err != nil {
		return request.FoodRequest{}, err
	}
	if !exists {
		return request.FoodRequest{}, errs.NewObjectNotFoundError("receiverId", cmd.ReceiverID())
	}

	stored, err := session.FoodRequests().Insert(ctx, entity)
	if err != nil {
		return request.FoodRequest{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return request.FoodRequest{}, err
	}

	return stored, nil
}
