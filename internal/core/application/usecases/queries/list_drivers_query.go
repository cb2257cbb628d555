package queries

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery retrieves all registered driver profiles.
type ListDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewListDriversQuery creates a query to retrieve all drivers.
func NewListDriversQuery() ListDriversQuery {
	return ListDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

// ListDriversQueryHandler retrieves driver profiles from the registry.
type ListDriversQueryHandler struct {
	drivers ports.DriverRegistry
}

// NewListDriversQueryHandler creates a handler for driver retrieval queries.
func NewListDriversQueryHandler(drivers ports.DriverRegistry) ListDriversQueryHandler {
	return ListDriversQueryHandler{drivers: drivers}
}

// Handle executes the query and returns all drivers in registration order.
func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]driver.Profile, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.drivers.List(ctx)
}
