package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DispatchJob runs the automatic dispatcher on a schedule.
// Runs every second to match open postings with food requests and free drivers.
type DispatchJob struct {
	handler commands.DispatchCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates a new job for automatic dispatching.
// Uses DispatchCommandHandler to pair postings with requests every second.
func NewDispatchJob(handler commands.DispatchCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch job failed to build command", "error", err)
			return
		}

		created, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// An idle run with nothing to dispatch is the normal case
			if !errors.Is(err, services.ErrNoMatch) {
				j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
			}
			return
		}

		j.logger.InfoContext(ctx, "Dispatched posting to driver",
			"assignmentId", created.ID(),
			"receiverId", created.ReceiverID(),
			"postingId", created.PostingID(),
			"driverId", created.DriverID(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
