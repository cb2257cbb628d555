package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrDeleteMessageCommandIsNotConstructed = errors.New(
	"DeleteMessageCommand must be created via NewDeleteMessageCommand constructor",
)

// DeleteMessageCommand represents a request to delete a sent message.
type DeleteMessageCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Identity
	messageID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteMessageCommand creates a command to delete a message.
func NewDeleteMessageCommand(actor kernel.Identity, messageID kernel.ID) (DeleteMessageCommand, error) {
	command := DeleteMessageCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMessageID(messageID); err != nil {
		return DeleteMessageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMessageCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMessageCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c DeleteMessageCommand) Actor() kernel.Identity { return c.actor }

// MessageID returns the message to delete.
func (c DeleteMessageCommand) MessageID() kernel.ID { return c.messageID }

func (c *DeleteMessageCommand) setMessageID(messageID kernel.ID) error {
	if err := messageID.Validate("messageId"); err != nil {
		return err
	}
	c.messageID = messageID
	return nil
}
