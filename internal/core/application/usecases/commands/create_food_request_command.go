package commands

import (
	"errors"
	"fmt"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrCreateFoodRequestCommandIsNotConstructed = errors.New(
	"CreateFoodRequestCommand must be created via NewCreateFoodRequestCommand constructor",
)

// CreateFoodRequestCommand represents a receiver's standing ask for food.
type CreateFoodRequestCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Identity
	receiverID  kernel.ID
	description string
	quantityKg  int

	guard guard.ConstructorGuard
}

// NewCreateFoodRequestCommand creates a command to register a food request.
func NewCreateFoodRequestCommand(
	actor kernel.Identity,
	receiverID kernel.ID,
	description string,
	quantityKg int,
) (CreateFoodRequestCommand, error) {
	command := CreateFoodRequestCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReceiverID(receiverID),
		command.setDescription(description),
		command.setQuantityKg(quantityKg),
	); err != nil {
		return CreateFoodRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFoodRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodRequestCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c CreateFoodRequestCommand) Actor() kernel.Identity { return c.actor }

// ReceiverID returns the receiver asking for food.
func (c CreateFoodRequestCommand) ReceiverID() kernel.ID { return c.receiverID }

// Description returns what kind of food is asked for.
func (c CreateFoodRequestCommand) Description() string { return c.description }

// QuantityKg returns the requested quantity in kilograms.
func (c CreateFoodRequestCommand) QuantityKg() int { return c.quantityKg }

func (c *CreateFoodRequestCommand) setReceiverID(receiverID kernel.ID) error {
	if err := receiverID.Validate("receiverId"); err != nil {
		return err
	}
	c.receiverID = receiverID
	return nil
}

func (c *CreateFoodRequestCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreateFoodRequestCommand) setQuantityKg(quantityKg int) error {
	if quantityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityKg",
			fmt.Errorf("%d is not greater than 0", quantityKg))
	}
	c.quantityKg = quantityKg
	return nil
}
