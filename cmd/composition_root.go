package cmd

import (
	"log/slog"
	"time"

	"foodbridge/internal/adapters/out/memory"
	"foodbridge/internal/adapters/out/postgres/archiverepo"
	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/jobs"

	"gorm.io/gorm"
)

// systemClock is the production clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CompositionRoot wires the in-memory store, the governance policy and the
// archive database into command and query handlers.
type CompositionRoot struct {
	store      *memory.Store
	sessions   *memory.SessionFactory
	policy     services.AccessPolicy
	dispatcher services.Dispatcher
	clock      ports.Clock
	gormDB     *gorm.DB
}

// NewCompositionRoot creates the application object graph. The gorm
// database is only used by the delivery archive; pass nil when archiving
// is not wired.
func NewCompositionRoot(_ Config, governanceAuthority ports.GovernanceAuthority, gormDB *gorm.DB) CompositionRoot {
	store := memory.NewStore()
	return CompositionRoot{
		store:      store,
		sessions:   memory.NewSessionFactory(store),
		policy:     services.NewAccessPolicy(governanceAuthority),
		dispatcher: services.NewDispatcher(),
		clock:      systemClock{},
		gormDB:     gormDB,
	}
}

func (c *CompositionRoot) CreateCreateDonorProfileCommandHandler() commands.CreateDonorProfileCommandHandler {
	var f commands.DonorSessionFactory = FuncDonorSessionFactory(func() commands.DonorSession {
		return c.sessions.Create()
	})
	return commands.NewCreateDonorProfileCommandHandler(f, c.policy, c.clock)
}

func (c *CompositionRoot) CreateCreateReceiverProfileCommandHandler() commands.CreateReceiverProfileCommandHandler {
	var f commands.ReceiverSessionFactory = FuncReceiverSessionFactory(func() commands.ReceiverSession {
		return c.sessions.Create()
	})
	return commands.NewCreateReceiverProfileCommandHandler(f, c.policy, c.clock)
}

func (c *CompositionRoot) CreateCreateDriverProfileCommandHandler() commands.CreateDriverProfileCommandHandler {
	var f commands.DriverSessionFactory = FuncDriverSessionFactory(func() commands.DriverSession {
		return c.sessions.Create()
	})
	return commands.NewCreateDriverProfileCommandHandler(f, c.policy, c.clock)
}

func (c *CompositionRoot) CreateCreateSurplusPostingCommandHandler() commands.CreateSurplusPostingCommandHandler {
	var f commands.PostingSessionFactory = FuncPostingSessionFactory(func() commands.PostingSession {
		return c.sessions.Create()
	})
	return commands.NewCreateSurplusPostingCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	var f commands.AssignmentSessionFactory = FuncAssignmentSessionFactory(func() commands.AssignmentSession {
		return c.sessions.Create()
	})
	return commands.NewCreateAssignmentCommandHandler(f, c.policy, c.clock)
}

func (c *CompositionRoot) CreateRecordDeliveryCommandHandler() commands.RecordDeliveryCommandHandler {
	var f commands.DeliverySessionFactory = FuncDeliverySessionFactory(func() commands.DeliverySession {
		return c.sessions.Create()
	})
	return commands.NewRecordDeliveryCommandHandler(f, c.policy, c.clock)
}

func (c *CompositionRoot) CreateCreateFoodRequestCommandHandler() commands.CreateFoodRequestCommandHandler {
	var f commands.FoodRequestSessionFactory = FuncFoodRequestSessionFactory(func() commands.FoodRequestSession {
		return c.sessions.Create()
	})
	return commands.NewCreateFoodRequestCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateSendMessageCommandHandler() commands.SendMessageCommandHandler {
	var f commands.MessageSessionFactory = FuncMessageSessionFactory(func() commands.MessageSession {
		return c.sessions.Create()
	})
	return commands.NewSendMessageCommandHandler(f, c.policy, c.clock)
}

func (c *CompositionRoot) CreateDeleteMessageCommandHandler() commands.DeleteMessageCommandHandler {
	var f commands.MessageSessionFactory = FuncMessageSessionFactory(func() commands.MessageSession {
		return c.sessions.Create()
	})
	return commands.NewDeleteMessageCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDispatchCommandHandler() commands.DispatchCommandHandler {
	var f commands.DispatchSessionFactory = FuncDispatchSessionFactory(func() commands.DispatchSession {
		return c.sessions.Create()
	})
	return commands.NewDispatchCommandHandler(f, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateListDonorsQueryHandler() queries.ListDonorsQueryHandler {
	return queries.NewListDonorsQueryHandler(c.store.Donors())
}

func (c *CompositionRoot) CreateListReceiversQueryHandler() queries.ListReceiversQueryHandler {
	return queries.NewListReceiversQueryHandler(c.store.Receivers())
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.store.Drivers())
}

func (c *CompositionRoot) CreateListPostingsQueryHandler() queries.ListPostingsQueryHandler {
	return queries.NewListPostingsQueryHandler(c.store.Postings())
}

func (c *CompositionRoot) CreateListAssignmentsQueryHandler() queries.ListAssignmentsQueryHandler {
	return queries.NewListAssignmentsQueryHandler(c.store.Assignments())
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.store.Deliveries())
}

func (c *CompositionRoot) CreateListFoodRequestsQueryHandler() queries.ListFoodRequestsQueryHandler {
	return queries.NewListFoodRequestsQueryHandler(c.store.FoodRequests())
}

func (c *CompositionRoot) CreateGetMessagesQueryHandler() queries.GetMessagesQueryHandler {
	return queries.NewGetMessagesQueryHandler(c.store.Messages(), c.policy)
}

// CreateJobManager wires the background jobs. Requires a gorm database
// for the delivery archive.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	archive := archiverepo.NewGormArchiveRepository(c.gormDB)
	return jobs.NewJobManager(
		c.CreateDispatchCommandHandler(),
		c.store.Deliveries(),
		archive,
		logger,
	)
}

type FuncDonorSessionFactory func() commands.DonorSession

func (f FuncDonorSessionFactory) Create() commands.DonorSession {
	return f()
}

type FuncReceiverSessionFactory func() commands.ReceiverSession

func (f FuncReceiverSessionFactory) Create() commands.ReceiverSession {
	return f()
}

type FuncDriverSessionFactory func() commands.DriverSession

func (f FuncDriverSessionFactory) Create() commands.DriverSession {
	return f()
}

type FuncPostingSessionFactory func() commands.PostingSession

func (f FuncPostingSessionFactory) Create() commands.PostingSession {
	return f()
}

type FuncAssignmentSessionFactory func() commands.AssignmentSession

func (f FuncAssignmentSessionFactory) Create() commands.AssignmentSession {
	return f()
}

type FuncDeliverySessionFactory func() commands.DeliverySession

func (f FuncDeliverySessionFactory) Create() commands.DeliverySession {
	return f()
}

type FuncFoodRequestSessionFactory func() commands.FoodRequestSession

func (f FuncFoodRequestSessionFactory) Create() commands.FoodRequestSession {
	return f()
}

type FuncMessageSessionFactory func() commands.MessageSession

func (f FuncMessageSessionFactory) Create() commands.MessageSession {
	return f()
}

type FuncDispatchSessionFactory func() commands.DispatchSession

func (f FuncDispatchSessionFactory) Create() commands.DispatchSession {
	return f()
}
