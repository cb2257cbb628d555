package queries

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/guard"
)

var ErrListFoodRequestsQueryIsNotConstructed = errors.New(
	"ListFoodRequestsQuery must be created via NewListFoodRequestsQuery constructor",
)

// ListFoodRequestsQuery retrieves all food requests, fulfilled or not.
type ListFoodRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewListFoodRequestsQuery creates a query to retrieve all food requests.
func NewListFoodRequestsQuery() ListFoodRequestsQuery {
	return ListFoodRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListFoodRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListFoodRequestsQueryIsNotConstructed)
}

// ListFoodRequestsQueryHandler retrieves food requests from the registry.
type ListFoodRequestsQueryHandler struct {
	foodRequests ports.FoodRequestRegistry
}

// NewListFoodRequestsQueryHandler creates a handler for food request queries.
func NewListFoodRequestsQueryHandler(foodRequests ports.FoodRequestRegistry) ListFoodRequestsQueryHandler {
	return ListFoodRequestsQueryHandler{foodRequests: foodRequests}
}

// Handle executes the query and returns all food requests in creation order.
func (h ListFoodRequestsQueryHandler) Handle(ctx context.Context, query ListFoodRequestsQuery) ([]request.FoodRequest, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.foodRequests.List(ctx)
}
