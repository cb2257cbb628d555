package queries

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/guard"
)

var ErrListPostingsQueryIsNotConstructed = errors.New(
	"ListPostingsQuery must be created via NewListPostingsQuery constructor",
)

// ListPostingsQuery retrieves all surplus postings regardless of status.
// Callers filter by status when they need only open or delivered postings.
type ListPostingsQuery struct {
	guard guard.ConstructorGuard
}

// NewListPostingsQuery creates a query to retrieve all postings.
func NewListPostingsQuery() ListPostingsQuery {
	return ListPostingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPostingsQuery) Validate() error {
	return q.guard.Validate(ErrListPostingsQueryIsNotConstructed)
}

// ListPostingsQueryHandler retrieves surplus postings from the registry.
type ListPostingsQueryHandler struct {
	postings ports.PostingRegistry
}

// NewListPostingsQueryHandler creates a handler for posting retrieval queries.
func NewListPostingsQueryHandler(postings ports.PostingRegistry) ListPostingsQueryHandler {
	return ListPostingsQueryHandler{postings: postings}
}

// Handle executes the query and returns all postings in listing order.
func (h ListPostingsQueryHandler) Handle(ctx context.Context, query ListPostingsQuery) ([]posting.Posting, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.postings.List(ctx)
}
