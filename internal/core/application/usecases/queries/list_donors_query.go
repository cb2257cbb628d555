package queries

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/guard"
)

var ErrListDonorsQueryIsNotConstructed = errors.New(
	"ListDonorsQuery must be created via NewListDonorsQuery constructor",
)

// ListDonorsQuery retrieves all registered donor profiles.
//
// Example:
//
//	query := NewListDonorsQuery()
//	handler := NewListDonorsQueryHandler(store.Donors())
//
//	donors, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve donors: %w", err)
//	}
type ListDonorsQuery struct {
	guard guard.ConstructorGuard
}

// NewListDonorsQuery creates a query to retrieve all donors.
func NewListDonorsQuery() ListDonorsQuery {
	return ListDonorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDonorsQuery) Validate() error {
	return q.guard.Validate(ErrListDonorsQueryIsNotConstructed)
}

// ListDonorsQueryHandler retrieves donor profiles from the registry.
type ListDonorsQueryHandler struct {
	donors ports.DonorRegistry
}

// NewListDonorsQueryHandler creates a handler for donor retrieval queries.
func NewListDonorsQueryHandler(donors ports.DonorRegistry) ListDonorsQueryHandler {
	return ListDonorsQueryHandler{donors: donors}
}

// Handle executes the query and returns all donors in registration order.
func (h ListDonorsQueryHandler) Handle(ctx context.Context, query ListDonorsQuery) ([]donor.Profile, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.donors.List(ctx)
}
