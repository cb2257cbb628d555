package archiverepo

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormArchiveRepository implements the DeliveryArchive port using GORM.
type GormArchiveRepository struct {
	db *gorm.DB
}

// NewGormArchiveRepository creates a new GORM delivery archive repository.
func NewGormArchiveRepository(db *gorm.DB) *GormArchiveRepository {
	return &GormArchiveRepository{db: db}
}

// Save writes a delivery record to the archive. Records are archived by
// their identifier, so saving the same record twice is harmless.
func (r *GormArchiveRepository) Save(ctx context.Context, record delivery.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// LastRecordID returns the identifier of the newest archived record, or
// zero when the archive is empty.
func (r *GormArchiveRepository) LastRecordID(ctx context.Context) (kernel.ID, error) {
	var dto RecordDTO
	err := r.db.WithContext(ctx).Order("id DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.ID(0), nil
		}
		return kernel.ID(0), err
	}
	return kernel.ID(dto.ID), nil
}

// Get retrieves an archived record by its identifier.
func (r *GormArchiveRepository) Get(ctx context.Context, id kernel.ID) (delivery.Record, error) {
	if err := id.Validate("recordId"); err != nil {
		return delivery.Record{}, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return delivery.Record{}, errs.NewObjectNotFoundError("recordId", id)
		}
		return delivery.Record{}, err
	}

	return toDomain(dto)
}
