package memory

import (
	"context"
	"errors"

	"foodbridge/internal/core/ports"
)

// ErrNoActiveSession is returned when Commit or Rollback is called on a
// session that was never begun.
var ErrNoActiveSession = errors.New("session has not been started")

// SessionFactory creates Session instances bound to one Store.
// Factory ensures each business operation gets a fresh session instance
// with proper isolation from other concurrent operations.
type SessionFactory struct {
	store *Store
}

// NewSessionFactory creates a factory for sessions over the given store.
func NewSessionFactory(store *Store) *SessionFactory {
	return &SessionFactory{store: store}
}

// Create produces a new Session ready for one business transaction.
func (f *SessionFactory) Create() ports.Session {
	return &Session{store: f.store}
}

// Session is the in-memory implementation of the session port. Begin takes
// the store-wide transaction lock, so the handler owns every registry until
// Commit or Rollback releases it. That exclusivity is what turns a
// handler's check-then-act sequence into an atomic step: two concurrent
// conflicting commands resolve to exactly one winner because the loser
// re-reads state the winner already changed.
//
// The usual call shape mirrors database transactions:
//
//	session := factory.Create()
//	if err := session.Begin(ctx); err != nil {
//	    return err
//	}
//	defer session.Rollback(ctx)
//
//	// check and write through session registries
//
//	return session.Commit(ctx)
type Session struct {
	store  *Store
	active bool
}

// Begin acquires exclusive write access to the store's registries.
// Multiple calls to Begin on the same instance are safe and will not lock
// twice.
func (s *Session) Begin(_ context.Context) error {
	if s.active {
		return nil
	}
	s.store.txMu.Lock()
	s.active = true
	return nil
}

// Commit finishes the transaction and releases the store lock.
// Returns ErrNoActiveSession if the session was never begun.
func (s *Session) Commit(_ context.Context) error {
	if !s.active {
		return ErrNoActiveSession
	}
	s.active = false
	s.store.txMu.Unlock()
	return nil
}

// Rollback abandons the transaction and releases the store lock. Handlers
// write only after all checks pass, so there is nothing to undo; rollback
// after a successful Commit is a no-op.
func (s *Session) Rollback(_ context.Context) error {
	if !s.active {
		return nil
	}
	s.active = false
	s.store.txMu.Unlock()
	return nil
}

// Donors returns the donor registry bound to this session.
func (s *Session) Donors() ports.DonorRegistry { return s.store.donors }

// Receivers returns the receiver registry bound to this session.
func (s *Session) Receivers() ports.ReceiverRegistry { return s.store.receivers }

// Drivers returns the driver registry bound to this session.
func (s *Session) Drivers() ports.DriverRegistry { return s.store.drivers }

// Postings returns the posting registry bound to this session.
func (s *Session) Postings() ports.PostingRegistry { return s.store.postings }

// Assignments returns the assignment registry bound to this session.
func (s *Session) Assignments() ports.AssignmentRegistry { return s.store.assignments }

// Deliveries returns the delivery record registry bound to this session.
func (s *Session) Deliveries() ports.DeliveryRegistry { return s.store.deliveries }

// FoodRequests returns the food request registry bound to this session.
func (s *Session) FoodRequests() ports.FoodRequestRegistry { return s.store.foodRequests }

// Messages returns the message registry bound to this session.
func (s *Session) Messages() ports.MessageRegistry { return s.store.messages }
