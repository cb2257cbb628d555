package delivery

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through the NewRecord factory method.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is the immutable confirmation of a completed delivery. Writing a
// record is what moves the referenced posting to Delivered and completes the
// driver's assignment; the record itself never changes afterwards.
type Record struct {
	id          kernel.ID
	postingID   kernel.ID
	driverID    kernel.ID
	deliveredAt time.Time
	rating      Rating

	isConstructed bool
}

// NewRecord creates a delivery Record with validation. The rating is
// optional; pass NoRating() when the receiver gave none.
func NewRecord(postingID, driverID kernel.ID, deliveredAt time.Time, rating Rating) (Record, error) {
	r := Record{
		rating:        rating,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setPostingID(postingID),
		r.setDriverID(driverID),
		r.setDeliveredAt(deliveredAt),
	); err != nil {
		return Record{}, err
	}

	return r, nil
}

// Validate ensures the Record was constructed through NewRecord.
func (r Record) Validate() error {
	if !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// WithID returns a copy of the record carrying the issued identifier.
func (r Record) WithID(id kernel.ID) Record {
	r.id = id
	return r
}

// ID returns the record's unique identifier, or zero before insertion.
func (r Record) ID() kernel.ID { return r.id }

// PostingID returns the identifier of the delivered surplus posting.
func (r Record) PostingID() kernel.ID { return r.postingID }

// DriverID returns the identifier of the driver who made the delivery.
func (r Record) DriverID() kernel.ID { return r.driverID }

// DeliveredAt returns the time the delivery was confirmed.
func (r Record) DeliveredAt() time.Time { return r.deliveredAt }

// Rating returns the receiver's satisfaction score, unset when none was
// given.
func (r Record) Rating() Rating { return r.rating }

func (r *Record) setPostingID(postingID kernel.ID) error {
	if err := postingID.Validate("postingId"); err != nil {
		return err
	}
	r.postingID = postingID
	return nil
}

func (r *Record) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate("driverId"); err != nil {
		return err
	}
	r.driverID = driverID
	return nil
}

func (r *Record) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	r.deliveredAt = deliveredAt
	return nil
}
