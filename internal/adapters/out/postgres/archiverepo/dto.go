// Package archiverepo provides the GORM-based delivery archive. Completed
// delivery records are copied from the in-memory registries into Postgres
// for durable reporting; the registries stay authoritative.
package archiverepo

import (
	"database/sql"
	"time"

	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/kernel"
)

// RecordDTO represents the database structure for archived delivery
// records. The identifier comes from the shared in-memory sequence, so the
// archive reuses it as the primary key instead of generating its own.
type RecordDTO struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement:false"`
	PostingID   uint64 `gorm:"index"`
	DriverID    uint64 `gorm:"index"`
	DeliveredAt time.Time
	Rating      sql.NullInt32
}

// TableName specifies the database table name for archived records.
func (RecordDTO) TableName() string {
	return "delivery_records"
}

func fromDomain(record delivery.Record) RecordDTO {
	var rating sql.NullInt32
	if value, ok := record.Rating().Value(); ok {
		rating = sql.NullInt32{Int32: int32(value), Valid: true}
	}

	return RecordDTO{
		ID:          record.ID().Uint64(),
		PostingID:   record.PostingID().Uint64(),
		DriverID:    record.DriverID().Uint64(),
		DeliveredAt: record.DeliveredAt(),
		Rating:      rating,
	}
}

func toDomain(dto RecordDTO) (delivery.Record, error) {
	rating := delivery.NoRating()
	if dto.Rating.Valid {
		var err error
		rating, err = delivery.NewRating(int(dto.Rating.Int32))
		if err != nil {
			return delivery.Record{}, err
		}
	}

	record, err := delivery.NewRecord(
		kernel.ID(dto.PostingID),
		kernel.ID(dto.DriverID),
		dto.DeliveredAt,
		rating,
	)
	if err != nil {
		return delivery.Record{}, err
	}

	return record.WithID(kernel.ID(dto.ID)), nil
}
