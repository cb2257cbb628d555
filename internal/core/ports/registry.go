package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/assignment"
	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/message"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/model/receiver"
	"foodbridge/internal/core/domain/model/request"
)

// Registry defines the persistence contract shared by every entity
// collection in the system. Identifiers are issued by the registry itself
// from a sequence shared across all collections, so no two entities of any
// kind ever carry the same id.
type Registry[T any] interface {
	// Insert stores a new entity, issues its identifier and returns the
	// stored copy carrying that identifier.
	Insert(ctx context.Context, entity T) (T, error)

	// Find retrieves an entity by its identifier.
	// Returns an ObjectNotFoundError when no entity carries the id.
	Find(ctx context.Context, id kernel.ID) (T, error)

	// Exists reports whether an entity with the given identifier is stored.
	Exists(ctx context.Context, id kernel.ID) (bool, error)

	// List returns a snapshot of all stored entities in insertion order.
	List(ctx context.Context) ([]T, error)

	// Mutate applies fn to the stored entity with the given identifier and
	// stores the result. The update is atomic with respect to other
	// registry operations.
	Mutate(ctx context.Context, id kernel.ID, fn func(T) (T, error)) (T, error)

	// Remove deletes the entity with the given identifier.
	// Returns an ObjectNotFoundError when no entity carries the id.
	Remove(ctx context.Context, id kernel.ID) error
}

// Profiles are immutable once created: the three profile registries are
// written through Insert only, and no handler calls Mutate or Remove on them.

// DonorRegistry stores donor profiles.
type DonorRegistry = Registry[donor.Profile]

// ReceiverRegistry stores receiver profiles.
type ReceiverRegistry = Registry[receiver.Profile]

// DriverRegistry stores driver profiles.
type DriverRegistry = Registry[driver.Profile]

// PostingRegistry stores surplus postings.
type PostingRegistry = Registry[posting.Posting]

// AssignmentRegistry stores driver assignments.
type AssignmentRegistry = Registry[assignment.Assignment]

// DeliveryRegistry stores delivery records.
type DeliveryRegistry = Registry[delivery.Record]

// FoodRequestRegistry stores receiver food requests.
type FoodRequestRegistry = Registry[request.FoodRequest]

// MessageRegistry stores participant messages.
type MessageRegistry = Registry[message.Message]
