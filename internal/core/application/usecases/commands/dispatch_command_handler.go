package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/assignment"
	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
)

// DispatchCommandHandler runs the automatic dispatcher: it pairs the oldest
// open posting with an unfulfilled food request and a free driver, creates
// the assignment and marks the request fulfilled, all inside one session.
//
// Returns services.ErrNoMatch when nothing can be dispatched; callers
// treat that as an idle run, not a failure.
type DispatchCommandHandler struct {
	sessionFactory DispatchSessionFactory
	dispatcher     services.Dispatcher
	clock          ports.Clock
}

// NewDispatchCommandHandler creates a handler for dispatcher runs.
func NewDispatchCommandHandler(
	sessionFactory DispatchSessionFactory,
	dispatcher services.Dispatcher,
	clock ports.Clock,
) DispatchCommandHandler {
	return DispatchCommandHandler{
		sessionFactory: sessionFactory,
		dispatcher:     dispatcher,
		clock:          clock,
	}
}

// Handle runs one dispatch pass and returns the created assignment.
func (h *DispatchCommandHandler) Handle(ctx context.Context, cmd DispatchCommand) (assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return assignment.Assignment{}, err
	}

	session := h.sessionFactory.Create()
	if err := session.Begin(ctx); err != nil {
		return assignment.Assignment{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	postings, err := session.Postings().List(ctx)
	if err != nil {
		return assignment.Assignment{}, err
	}
	requests, err := session.FoodRequests().List(ctx)
	if err != nil {
		return assignment.Assignment{}, err
	}
	freeDrivers, err := listFreeDrivers(ctx, session)
	if err != nil {
		return assignment.Assignment{}, err
	}

	match, err := h.dispatcher.Dispatch(postings, requests, freeDrivers)
	if err != nil {
		return assignment.Assignment{}, err
	}

	stored, err := createAssignment(ctx, session, match.Request.ReceiverID(), match.Posting.ID(), match.Driver.ID(), h.clock)
	if err != nil {
		return assignment.Assignment{}, err
	}

	_, err = session.FoodRequests().Mutate(ctx, match.Request.ID(),
		func(r request.FoodRequest) (request.FoodRequest, error) {
			return r.MarkFulfilled(), nil
		})
	if err != nil {
		return assignment.Assignment{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return assignment.Assignment{}, err
	}

	return stored, nil
}

func listFreeDrivers(ctx context.Context, session DispatchSession) ([]driver.Profile, error) {
	drivers, err := session.Drivers().List(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := session.Assignments().List(ctx)
	if err != nil {
		return nil, err
	}

	busy := make(map[uint64]bool, len(assignments))
	for _, a := range assignments {
		if a.Pending() {
			busy[a.DriverID().Uint64()] = true
		}
	}

	free := make([]driver.Profile, 0, len(drivers))
	for _, d := range drivers {
		if !busy[d.ID().Uint64()] {
			free = append(free, d)
		}
	}
	return free, nil
}
