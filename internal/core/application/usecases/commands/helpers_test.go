package commands_test

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/adapters/out/memory"
	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/model/receiver"
	"foodbridge/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

// stubGovernance approves a fixed set of identities. Set err to simulate
// an unreachable oracle.
type stubGovernance struct {
	approved map[kernel.Identity]bool
	err      error
}

func (s *stubGovernance) IsApproved(_ context.Context, actor kernel.Identity) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.approved[actor], nil
}

// fixture bundles a fresh store with session factories and a policy whose
// governance oracle approves the identity council.
type fixture struct {
	store      *memory.Store
	sessions   *memory.SessionFactory
	governance *stubGovernance
	policy     services.AccessPolicy
	clock      fixedClock
}

// council is an identity the stub oracle always approves.
const council = kernel.Identity(1000)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newFixture() *fixture {
	store := memory.NewStore()
	governance := &stubGovernance{approved: map[kernel.Identity]bool{council: true}}
	return &fixture{
		store:      store,
		sessions:   memory.NewSessionFactory(store),
		governance: governance,
		policy:     services.NewAccessPolicy(governance),
		clock:      fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func (f *fixture) donorSessions() commands.DonorSessionFactory {
	return funcDonorSessionFactory(func() commands.DonorSession { return f.sessions.Create() })
}

func (f *fixture) receiverSessions() commands.ReceiverSessionFactory {
	return funcReceiverSessionFactory(func() commands.ReceiverSession { return f.sessions.Create() })
}

func (f *fixture) driverSessions() commands.DriverSessionFactory {
	return funcDriverSessionFactory(func() commands.DriverSession { return f.sessions.Create() })
}

func (f *fixture) postingSessions() commands.PostingSessionFactory {
	return funcPostingSessionFactory(func() commands.PostingSession { return f.sessions.Create() })
}

func (f *fixture) assignmentSessions() commands.AssignmentSessionFactory {
	return funcAssignmentSessionFactory(func() commands.AssignmentSession { return f.sessions.Create() })
}

func (f *fixture) deliverySessions() commands.DeliverySessionFactory {
	return funcDeliverySessionFactory(func() commands.DeliverySession { return f.sessions.Create() })
}

func (f *fixture) foodRequestSessions() commands.FoodRequestSessionFactory {
	return funcFoodRequestSessionFactory(func() commands.FoodRequestSession { return f.sessions.Create() })
}

func (f *fixture) messageSessions() commands.MessageSessionFactory {
	return funcMessageSessionFactory(func() commands.MessageSession { return f.sessions.Create() })
}

func (f *fixture) dispatchSessions() commands.DispatchSessionFactory {
	return funcDispatchSessionFactory(func() commands.DispatchSession { return f.sessions.Create() })
}

// seed helpers insert entities directly through the store registries.

func (f *fixture) seedDonor(t *testing.T) donor.Profile {
	t.Helper()
	profile, err := donor.NewProfile("Corner Bakery", "5550123456", "bakery@x.com", "12 Main St", donor.Bakery, f.clock.Now())
	require.NoError(t, err)
	stored, err := f.store.Donors().Insert(context.Background(), profile)
	require.NoError(t, err)
	return stored
}

func (f *fixture) seedReceiver(t *testing.T) receiver.Profile {
	t.Helper()
	profile, err := receiver.NewProfile("City Shelter", "5550199887", "shelter@x.com", "7 Oak Ave", f.clock.Now())
	require.NoError(t, err)
	stored, err := f.store.Receivers().Insert(context.Background(), profile)
	require.NoError(t, err)
	return stored
}

func (f *fixture) seedDriver(t *testing.T) driver.Profile {
	t.Helper()
	profile, err := driver.NewProfile("Sam Reed", "5550177665", "sam@x.com", "3 Pine Rd", f.clock.Now())
	require.NoError(t, err)
	stored, err := f.store.Drivers().Insert(context.Background(), profile)
	require.NoError(t, err)
	return stored
}

func (f *fixture) seedPosting(t *testing.T, donorID kernel.ID) posting.Posting {
	t.Helper()
	p, err := posting.NewPosting(donorID, posting.Bakery, 10, f.clock.Now().Add(48*time.Hour), "boxed")
	require.NoError(t, err)
	stored, err := f.store.Postings().Insert(context.Background(), p)
	require.NoError(t, err)
	return stored
}

// Func adapters mirror the composition root wiring.

type funcDonorSessionFactory func() commands.DonorSession

func (f funcDonorSessionFactory) Create() commands.DonorSession { return f() }

type funcReceiverSessionFactory func() commands.ReceiverSession

func (f funcReceiverSessionFactory) Create() commands.ReceiverSession { return f() }

type funcDriverSessionFactory func() commands.DriverSession

func (f funcDriverSessionFactory) Create() commands.DriverSession { return f() }

type funcPostingSessionFactory func() commands.PostingSession

func (f funcPostingSessionFactory) Create() commands.PostingSession { return f() }

type funcAssignmentSessionFactory func() commands.AssignmentSession

func (f funcAssignmentSessionFactory) Create() commands.AssignmentSession { return f() }

type funcDeliverySessionFactory func() commands.DeliverySession

func (f funcDeliverySessionFactory) Create() commands.DeliverySession { return f() }

type funcFoodRequestSessionFactory func() commands.FoodRequestSession

func (f funcFoodRequestSessionFactory) Create() commands.FoodRequestSession { return f() }

type funcMessageSessionFactory func() commands.MessageSession

func (f funcMessageSessionFactory) Create() commands.MessageSession { return f() }

type funcDispatchSessionFactory func() commands.DispatchSession

func (f funcDispatchSessionFactory) Create() commands.DispatchSession { return f() }
