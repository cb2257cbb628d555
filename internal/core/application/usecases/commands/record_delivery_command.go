package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrRecordDeliveryCommandIsNotConstructed = errors.New(
	"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
)

// RecordDeliveryCommand represents a driver's confirmation that an assigned
// posting has been delivered. The rating is optional.
type RecordDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Identity
	postingID kernel.ID
	driverID  kernel.ID
	rating    delivery.Rating

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand creates a command to confirm a delivery.
// Pass delivery.NoRating() when the receiver gave no score.
func NewRecordDeliveryCommand(
	actor kernel.Identity,
	postingID, driverID kernel.ID,
	rating delivery.Rating,
) (RecordDeliveryCommand, error) {
	command := RecordDeliveryCommand{
		actor:  actor,
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPostingID(postingID),
		command.setDriverID(driverID),
	); err != nil {
		return RecordDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c RecordDeliveryCommand) Actor() kernel.Identity { return c.actor }

// PostingID returns the delivered posting.
func (c RecordDeliveryCommand) PostingID() kernel.ID { return c.postingID }

// DriverID returns the driver confirming the delivery.
func (c RecordDeliveryCommand) DriverID() kernel.ID { return c.driverID }

// Rating returns the receiver's optional satisfaction score.
func (c RecordDeliveryCommand) Rating() delivery.Rating { return c.rating }

func (c *RecordDeliveryCommand) setPostingID(postingID kernel.ID) error {
	if err := postingID.Validate("postingId"); err != nil {
		return err
	}
	c.postingID = postingID
	return nil
}

func (c *RecordDeliveryCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate("driverId"); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
