package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/kernel"
)

// DeliveryArchive persists completed delivery records to durable storage
// for reporting. The in-memory registries stay authoritative; the archive
// is an append-only copy.
type DeliveryArchive interface {
	// Save writes a delivery record to the archive. Saving the same record
	// twice is harmless.
	Save(ctx context.Context, record delivery.Record) error

	// LastRecordID returns the identifier of the newest archived record,
	// or zero when the archive is empty.
	LastRecordID(ctx context.Context) (kernel.ID, error)
}
