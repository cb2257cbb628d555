// Package jobs provides scheduled background tasks for the coordination core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every second to pair open postings with unfulfilled food requests and free drivers
// 2. ArchiveJob - Runs every minute to copy completed delivery records into the durable archive
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(dispatchHandler, deliveries, archive, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The dispatch job ignores idle runs where nothing can be matched
// - The archive job logs all errors and retries on the next tick; archiving
//   is idempotent, so a partially archived pass is picked up again safely
// - Failed job starts will stop any already running jobs
package jobs
