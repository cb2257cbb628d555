package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrCreateDriverProfileCommandIsNotConstructed = errors.New(
	"CreateDriverProfileCommand must be created via NewCreateDriverProfileCommand constructor",
)

// CreateDriverProfileCommand represents a request to register a new
// volunteer driver.
type CreateDriverProfileCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Identity
	name    string
	phone   string
	email   string
	address string

	guard guard.ConstructorGuard
}

// NewCreateDriverProfileCommand creates a command to register a new driver.
func NewCreateDriverProfileCommand(
	actor kernel.Identity,
	name, phone, email, address string,
) (CreateDriverProfileCommand, error) {
	command := CreateDriverProfileCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setPhone(phone),
		command.setEmail(email),
		command.setAddress(address),
	); err != nil {
		return CreateDriverProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverProfileCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c CreateDriverProfileCommand) Actor() kernel.Identity { return c.actor }

// Name returns the driver name from the command.
func (c CreateDriverProfileCommand) Name() string { return c.name }

// Phone returns the driver phone from the command.
func (c CreateDriverProfileCommand) Phone() string { return c.phone }

// Email returns the driver email from the command.
func (c CreateDriverProfileCommand) Email() string { return c.email }

// Address returns the driver address from the command.
func (c CreateDriverProfileCommand) Address() string { return c.address }

func (c *CreateDriverProfileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDriverProfileCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateDriverProfileCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateDriverProfileCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
