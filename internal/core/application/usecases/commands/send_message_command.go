package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrSendMessageCommandIsNotConstructed = errors.New(
	"SendMessageCommand must be created via NewSendMessageCommand constructor",
)

// SendMessageCommand represents a request to send a message from one
// participant to another.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Identity
	senderID    kernel.ID
	recipientID kernel.ID
	content     string

	guard guard.ConstructorGuard
}

// NewSendMessageCommand creates a command to send a message.
func NewSendMessageCommand(
	actor kernel.Identity,
	senderID, recipientID kernel.ID,
	content string,
) (SendMessageCommand, error) {
	command := SendMessageCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSenderID(senderID),
		command.setRecipientID(recipientID),
		command.setContent(content),
	); err != nil {
		return SendMessageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c SendMessageCommand) Actor() kernel.Identity { return c.actor }

// SenderID returns the sending participant.
func (c SendMessageCommand) SenderID() kernel.ID { return c.senderID }

// RecipientID returns the receiving participant.
func (c SendMessageCommand) RecipientID() kernel.ID { return c.recipientID }

// Content returns the message body.
func (c SendMessageCommand) Content() string { return c.content }

func (c *SendMessageCommand) setSenderID(senderID kernel.ID) error {
	if err := senderID.Validate("senderId"); err != nil {
		return err
	}
	c.senderID = senderID
	return nil
}

func (c *SendMessageCommand) setRecipientID(recipientID kernel.ID) error {
	if err := recipientID.Validate("recipientId"); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *SendMessageCommand) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	c.content = content
	return nil
}
