package queries

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/assignment"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/guard"
)

var ErrListAssignmentsQueryIsNotConstructed = errors.New(
	"ListAssignmentsQuery must be created via NewListAssignmentsQuery constructor",
)

// ListAssignmentsQuery retrieves all driver assignments.
type ListAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewListAssignmentsQuery creates a query to retrieve all assignments.
func NewListAssignmentsQuery() ListAssignmentsQuery {
	return ListAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrListAssignmentsQueryIsNotConstructed)
}

// ListAssignmentsQueryHandler retrieves assignments from the registry.
type ListAssignmentsQueryHandler struct {
	assignments ports.AssignmentRegistry
}

// NewListAssignmentsQueryHandler creates a handler for assignment retrieval queries.
func NewListAssignmentsQueryHandler(assignments ports.AssignmentRegistry) ListAssignmentsQueryHandler {
	return ListAssignmentsQueryHandler{assignments: assignments}
}

// Handle executes the query and returns all assignments in creation order.
func (h ListAssignmentsQueryHandler) Handle(ctx context.Context, query ListAssignmentsQuery) ([]assignment.Assignment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.assignments.List(ctx)
}
