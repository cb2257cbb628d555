package ports

import (
	"context"
)

// SessionFactory creates new Session instances for each request/command.
// This ensures proper isolation between concurrent operations.
type SessionFactory interface {
	Create() Session
}

// Session represents a business transaction boundary over the registries.
// A command handler runs its whole check-then-act sequence inside one
// session, so no concurrent command can interleave between a validation
// read and the write that depends on it.
// Client code must explicitly manage the session lifecycle.
type Session interface {
	// Begin starts the transaction, blocking until exclusive write access
	// to the registries is acquired.
	Begin(ctx context.Context) error

	// Commit finishes the transaction and releases write access.
	Commit(ctx context.Context) error

	// Rollback abandons the transaction and releases write access.
	// Calling Rollback after Commit is a no-op.
	Rollback(ctx context.Context) error

	// Donors returns the donor registry bound to the current session.
	Donors() DonorRegistry

	// Receivers returns the receiver registry bound to the current session.
	Receivers() ReceiverRegistry

	// Drivers returns the driver registry bound to the current session.
	Drivers() DriverRegistry

	// Postings returns the posting registry bound to the current session.
	Postings() PostingRegistry

	// Assignments returns the assignment registry bound to the current session.
	Assignments() AssignmentRegistry

	// Deliveries returns the delivery registry bound to the current session.
	Deliveries() DeliveryRegistry

	// FoodRequests returns the food request registry bound to the current session.
	FoodRequests() FoodRequestRegistry

	// Messages returns the message registry bound to the current session.
	Messages() MessageRegistry
}
