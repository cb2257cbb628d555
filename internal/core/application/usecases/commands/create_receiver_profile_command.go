package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrCreateReceiverProfileCommandIsNotConstructed = errors.New(
	"CreateReceiverProfileCommand must be created via NewCreateReceiverProfileCommand constructor",
)

// CreateReceiverProfileCommand represents a request to register a new
// receiving organization, for example a food bank or a shelter.
type CreateReceiverProfileCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Identity
	name    string
	phone   string
	email   string
	address string

	guard guard.ConstructorGuard
}

// NewCreateReceiverProfileCommand creates a command to register a new receiver.
func NewCreateReceiverProfileCommand(
	actor kernel.Identity,
	name, phone, email, address string,
) (CreateReceiverProfileCommand, error) {
	command := CreateReceiverProfileCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setPhone(phone),
		command.setEmail(email),
		command.setAddress(address),
	); err != nil {
		return CreateReceiverProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReceiverProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateReceiverProfileCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c CreateReceiverProfileCommand) Actor() kernel.Identity { return c.actor }

// Name returns the receiver name from the command.
func (c CreateReceiverProfileCommand) Name() string { return c.name }

// Phone returns the receiver phone from the command.
func (c CreateReceiverProfileCommand) Phone() string { return c.phone }

// Email returns the receiver email from the command.
func (c CreateReceiverProfileCommand) Email() string { return c.email }

// Address returns the receiver address from the command.
func (c CreateReceiverProfileCommand) Address() string { return c.address }

func (c *CreateReceiverProfileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateReceiverProfileCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateReceiverProfileCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateReceiverProfileCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
