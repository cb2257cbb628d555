package jobs

import (
	"context"
	"log/slog"

	"foodbridge/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ArchiveJob copies completed delivery records into the durable archive.
// Runs every minute and only writes records newer than the archive's last
// known identifier, so reruns are cheap and safe.
type ArchiveJob struct {
	deliveries ports.DeliveryRegistry
	archive    ports.DeliveryArchive
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewArchiveJob creates a new job for archiving delivery records.
func NewArchiveJob(
	deliveries ports.DeliveryRegistry,
	archive ports.DeliveryArchive,
	logger *slog.Logger,
) *ArchiveJob {
	return &ArchiveJob{
		deliveries: deliveries,
		archive:    archive,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "archive_job"),
	}
}

// Start begins the archive job to run every minute.
func (j *ArchiveJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Archive job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive job started (running every minute)")
	return nil
}

// Stop stops the archive job.
func (j *ArchiveJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archive job stopped")
}

// run performs one archiving pass.
func (j *ArchiveJob) run(ctx context.Context) error {
	lastID, err := j.archive.LastRecordID(ctx)
	if err != nil {
		return err
	}

	records, err := j.deliveries.List(ctx)
	if err != nil {
		return err
	}

	archived := 0
	for _, record := range records {
		if record.ID() <= lastID {
			continue
		}
		if err = j.archive.Save(ctx, record); err != nil {
			return err
		}
		archived++
	}

	if archived > 0 {
		j.logger.InfoContext(ctx, "Archived delivery records", "count", archived)
	}
	return nil
}
