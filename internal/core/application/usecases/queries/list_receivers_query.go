package queries

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/receiver"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/guard"
)

var ErrListReceiversQueryIsNotConstructed = errors.New(
	"ListReceiversQuery must be created via NewListReceiversQuery constructor",
)

// ListReceiversQuery retrieves all registered receiver profiles.
type ListReceiversQuery struct {
	guard guard.ConstructorGuard
}

// NewListReceiversQuery creates a query to retrieve all receivers.
func NewListReceiversQuery() ListReceiversQuery {
	return ListReceiversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListReceiversQuery) Validate() error {
	return q.guard.Validate(ErrListReceiversQueryIsNotConstructed)
}

// ListReceiversQueryHandler retrieves receiver profiles from the registry.
type ListReceiversQueryHandler struct {
	receivers ports.ReceiverRegistry
}

// NewListReceiversQueryHandler creates a handler for receiver retrieval queries.
func NewListReceiversQueryHandler(receivers ports.ReceiverRegistry) ListReceiversQueryHandler {
	return ListReceiversQueryHandler{receivers: receivers}
}

// Handle executes the query and returns all receivers in registration order.
func (h ListReceiversQueryHandler) Handle(ctx context.Context, query ListReceiversQuery) ([]receiver.Profile, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.receivers.List(ctx)
}
