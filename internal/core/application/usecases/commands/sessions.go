// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"foodbridge/internal/core/ports"
)

// Session interfaces provide transaction management for command handlers.
// Each handler names only the registries it touches, so the dependency
// surface of every command is visible from its session type.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple registry calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DonorsFactory provides access to the donor registry within a transaction.
	DonorsFactory interface {
		Donors() ports.DonorRegistry
	}

	// ReceiversFactory provides access to the receiver registry within a transaction.
	ReceiversFactory interface {
		Receivers() ports.ReceiverRegistry
	}

	// DriversFactory provides access to the driver registry within a transaction.
	DriversFactory interface {
		Drivers() ports.DriverRegistry
	}

	// PostingsFactory provides access to the posting registry within a transaction.
	PostingsFactory interface {
		Postings() ports.PostingRegistry
	}

	// AssignmentsFactory provides access to the assignment registry within a transaction.
	AssignmentsFactory interface {
		Assignments() ports.AssignmentRegistry
	}

	// DeliveriesFactory provides access to the delivery record registry within a transaction.
	DeliveriesFactory interface {
		Deliveries() ports.DeliveryRegistry
	}

	// FoodRequestsFactory provides access to the food request registry within a transaction.
	FoodRequestsFactory interface {
		FoodRequests() ports.FoodRequestRegistry
	}

	// MessagesFactory provides access to the message registry within a transaction.
	MessagesFactory interface {
		Messages() ports.MessageRegistry
	}

	// DonorSession manages transactions for donor-only operations.
	DonorSession interface {
		TxManager
		DonorsFactory
	}

	// DonorSessionFactory creates new donor session instances.
	DonorSessionFactory interface {
		Create() DonorSession
	}

	// ReceiverSession manages transactions for receiver-only operations.
	ReceiverSession interface {
		TxManager
		ReceiversFactory
	}

	// ReceiverSessionFactory creates new receiver session instances.
	ReceiverSessionFactory interface {
		Create() ReceiverSession
	}

	// DriverSession manages transactions for driver-only operations.
	DriverSession interface {
		TxManager
		DriversFactory
	}

	// DriverSessionFactory creates new driver session instances.
	DriverSessionFactory interface {
		Create() DriverSession
	}

	// PostingSession manages transactions for surplus posting creation.
	// The donor registry is needed to verify the posting's donor exists.
	PostingSession interface {
		TxManager
		DonorsFactory
		PostingsFactory
	}

	// PostingSessionFactory creates new posting session instances.
	PostingSessionFactory interface {
		Create() PostingSession
	}

	// AssignmentSession manages transactions spanning receivers, postings,
	// drivers and assignments. Used by commands that bind drivers to postings
	// for delivery to a receiver.
	AssignmentSession interface {
		TxManager
		ReceiversFactory
		PostingsFactory
		DriversFactory
		AssignmentsFactory
	}

	// AssignmentSessionFactory creates new assignment session instances.
	AssignmentSessionFactory interface {
		Create() AssignmentSession
	}

	// DeliverySession manages transactions for delivery confirmation, which
	// touches the posting, its assignment and the delivery record log.
	DeliverySession interface {
		TxManager
		PostingsFactory
		AssignmentsFactory
		DeliveriesFactory
	}

	// DeliverySessionFactory creates new delivery session instances.
	DeliverySessionFactory interface {
		Create() DeliverySession
	}

	// FoodRequestSession manages transactions for food request creation.
	// The receiver registry is needed to verify the requesting receiver exists.
	FoodRequestSession interface {
		TxManager
		ReceiversFactory
		FoodRequestsFactory
	}

	// FoodRequestSessionFactory creates new food request session instances.
	FoodRequestSessionFactory interface {
		Create() FoodRequestSession
	}

	// MessageSession manages transactions for messaging. All three profile
	// registries take part because any participant can message any other.
	MessageSession interface {
		TxManager
		DonorsFactory
		ReceiversFactory
		DriversFactory
		MessagesFactory
	}

	// MessageSessionFactory creates new message session instances.
	MessageSessionFactory interface {
		Create() MessageSession
	}

	// DispatchSession manages transactions for the automatic dispatcher,
	// which reads every matching input and writes assignments, postings and
	// food requests in one step.
	DispatchSession interface {
		TxManager
		ReceiversFactory
		PostingsFactory
		DriversFactory
		AssignmentsFactory
		FoodRequestsFactory
	}

	// DispatchSessionFactory creates new dispatch session instances.
	DispatchSessionFactory interface {
		Create() DispatchSession
	}
)
