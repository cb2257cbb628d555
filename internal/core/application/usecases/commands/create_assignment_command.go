package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand represents a request to bind a driver to an open
// surplus posting for delivery to a receiver.
//
// Example:
//
//	cmd, err := NewCreateAssignmentCommand(actor, receiverID, postingID, driverID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	stored, err := handler.Handle(ctx, cmd)
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Identity
	receiverID kernel.ID
	postingID  kernel.ID
	driverID   kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to bind a driver to a posting.
func NewCreateAssignmentCommand(actor kernel.Identity, receiverID, postingID, driverID kernel.ID) (CreateAssignmentCommand, error) {
	command := CreateAssignmentCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReceiverID(receiverID),
		command.setPostingID(postingID),
		command.setDriverID(driverID),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c CreateAssignmentCommand) Actor() kernel.Identity { return c.actor }

// ReceiverID returns the receiver awaiting the delivery.
func (c CreateAssignmentCommand) ReceiverID() kernel.ID { return c.receiverID }

// PostingID returns the posting to assign.
func (c CreateAssignmentCommand) PostingID() kernel.ID { return c.postingID }

// DriverID returns the driver to carry the delivery.
func (c CreateAssignmentCommand) DriverID() kernel.ID { return c.driverID }

func (c *CreateAssignmentCommand) setReceiverID(receiverID kernel.ID) error {
	if err := receiverID.Validate("receiverId"); err != nil {
		return err
	}
	c.receiverID = receiverID
	return nil
}

func (c *CreateAssignmentCommand) setPostingID(postingID kernel.ID) error {
	if err := postingID.Validate("postingId"); err != nil {
		return err
	}
	c.postingID = postingID
	return nil
}

func (c *CreateAssignmentCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate("driverId"); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
