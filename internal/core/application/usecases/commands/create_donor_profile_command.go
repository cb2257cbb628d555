package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrCreateDonorProfileCommandIsNotConstructed = errors.New(
	"CreateDonorProfileCommand must be created via NewCreateDonorProfileCommand constructor",
)

// CreateDonorProfileCommand represents a request to register a new donor.
// Encapsulates the acting identity and all profile data.
//
// Example:
//
//	cmd, err := NewCreateDonorProfileCommand(actor, "Corner Bakery",
//	    "5550123456", "bakery@x.com", "12 Main St", donor.Bakery)
//	if err != nil {
//	    return fmt.Errorf("invalid donor data: %w", err)
//	}
//
//	profile, err := handler.Handle(ctx, cmd)
type CreateDonorProfileCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Identity
	name         string
	phone        string
	email        string
	address      string
	businessType donor.BusinessType

	guard guard.ConstructorGuard
}

// NewCreateDonorProfileCommand creates a command to register a new donor.
// Validates that every profile field is supplied and the business type is
// a defined value. Contact formats are validated by the domain entity.
func NewCreateDonorProfileCommand(
	actor kernel.Identity,
	name, phone, email, address string,
	businessType donor.BusinessType,
) (CreateDonorProfileCommand, error) {
	command := CreateDonorProfileCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setPhone(phone),
		command.setEmail(email),
		command.setAddress(address),
		command.setBusinessType(businessType),
	); err != nil {
		return CreateDonorProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDonorProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonorProfileCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c CreateDonorProfileCommand) Actor() kernel.Identity { return c.actor }

// Name returns the donor name from the command.
func (c CreateDonorProfileCommand) Name() string { return c.name }

// Phone returns the donor phone from the command.
func (c CreateDonorProfileCommand) Phone() string { return c.phone }

// Email returns the donor email from the command.
func (c CreateDonorProfileCommand) Email() string { return c.email }

// Address returns the donor address from the command.
func (c CreateDonorProfileCommand) Address() string { return c.address }

// BusinessType returns the donor business type from the command.
func (c CreateDonorProfileCommand) BusinessType() donor.BusinessType { return c.businessType }

func (c *CreateDonorProfileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDonorProfileCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateDonorProfileCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateDonorProfileCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *CreateDonorProfileCommand) setBusinessType(businessType donor.BusinessType) error {
	if err := businessType.Validate(); err != nil {
		return err
	}
	c.businessType = businessType
	return nil
}
