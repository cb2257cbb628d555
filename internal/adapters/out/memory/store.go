package memory

import (
	"sync"

	"foodbridge/internal/core/domain/model/assignment"
	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/model/message"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/model/receiver"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/core/ports"
)

// Store owns every entity registry and the identifier sequence they share.
// One Store instance backs the whole system; sessions created from it
// serialize command transactions against each other.
type Store struct {
	txMu sync.Mutex
	seq  Sequence

	donors       *Registry[donor.Profile]
	receivers    *Registry[receiver.Profile]
	drivers      *Registry[driver.Profile]
	postings     *Registry[posting.Posting]
	assignments  *Registry[assignment.Assignment]
	deliveries   *Registry[delivery.Record]
	foodRequests *Registry[request.FoodRequest]
	messages     *Registry[message.Message]
}

// NewStore creates an empty Store with all registries wired to one shared
// sequence.
func NewStore() *Store {
	s := &Store{}
	s.donors = NewRegistry[donor.Profile]("donorId", &s.seq)
	s.receivers = NewRegistry[receiver.Profile]("receiverId", &s.seq)
	s.drivers = NewRegistry[driver.Profile]("driverId", &s.seq)
	s.postings = NewRegistry[posting.Posting]("postingId", &s.seq)
	s.assignments = NewRegistry[assignment.Assignment]("assignmentId", &s.seq)
	s.deliveries = NewRegistry[delivery.Record]("recordId", &s.seq)
	s.foodRequests = NewRegistry[request.FoodRequest]("requestId", &s.seq)
	s.messages = NewRegistry[message.Message]("messageId", &s.seq)
	return s
}

// Donors returns the donor registry.
func (s *Store) Donors() ports.DonorRegistry { return s.donors }

// Receivers returns the receiver registry.
func (s *Store) Receivers() ports.ReceiverRegistry { return s.receivers }

// Drivers returns the driver registry.
func (s *Store) Drivers() ports.DriverRegistry { return s.drivers }

// Postings returns the posting registry.
func (s *Store) Postings() ports.PostingRegistry { return s.postings }

// Assignments returns the assignment registry.
func (s *Store) Assignments() ports.AssignmentRegistry { return s.assignments }

// Deliveries returns the delivery record registry.
func (s *Store) Deliveries() ports.DeliveryRegistry { return s.deliveries }

// FoodRequests returns the food request registry.
func (s *Store) FoodRequests() ports.FoodRequestRegistry { return s.foodRequests }

// Messages returns the message registry.
func (s *Store) Messages() ports.MessageRegistry { return s.messages }
