package queries

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery retrieves all delivery records.
type ListDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a query to retrieve all delivery records.
func NewListDeliveriesQuery() ListDeliveriesQuery {
	return ListDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// ListDeliveriesQueryHandler retrieves delivery records from the registry.
type ListDeliveriesQueryHandler struct {
	deliveries ports.DeliveryRegistry
}

// NewListDeliveriesQueryHandler creates a handler for delivery record queries.
func NewListDeliveriesQueryHandler(deliveries ports.DeliveryRegistry) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{deliveries: deliveries}
}

// Handle executes the query and returns all records in confirmation order.
func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]delivery.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.deliveries.List(ctx)
}
