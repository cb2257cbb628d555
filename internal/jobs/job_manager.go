package jobs

import (
	"fmt"
	"log/slog"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob *DispatchJob
	archiveJob  *ArchiveJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the dispatch handler and archive dependencies to wire up job execution.
func NewJobManager(
	dispatchHandler commands.DispatchCommandHandler,
	deliveries ports.DeliveryRegistry,
	archive ports.DeliveryArchive,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchJob: NewDispatchJob(dispatchHandler, logger),
		archiveJob:  NewArchiveJob(deliveries, archive, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	if err := jm.archiveJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start archive job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.archiveJob.Stop()
	jm.dispatchJob.Stop()
}
