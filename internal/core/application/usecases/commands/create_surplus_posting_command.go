package commands

import (
	"errors"
	"fmt"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrCreateSurplusPostingCommandIsNotConstructed = errors.New(
	"CreateSurplusPostingCommand must be created via NewCreateSurplusPostingCommand constructor",
)

// CreateSurplusPostingCommand represents a donor's request to list surplus
// food for pickup.
//
// Example:
//
//	cmd, err := NewCreateSurplusPostingCommand(actor, donorID,
//	    posting.Vegetables, 25, bestBefore, "keep chilled")
//	if err != nil {
//	    return fmt.Errorf("invalid posting data: %w", err)
//	}
//
//	stored, err := handler.Handle(ctx, cmd)
type CreateSurplusPostingCommand struct { //nolint:recvcheck //using for validation
	actor                kernel.Identity
	donorID              kernel.ID
	foodType             posting.FoodType
	quantityKg           int
	bestBeforeDate       time.Time
	handlingInstructions string

	guard guard.ConstructorGuard
}

// NewCreateSurplusPostingCommand creates a command to list surplus food.
func NewCreateSurplusPostingCommand(
	actor kernel.Identity,
	donorID kernel.ID,
	foodType posting.FoodType,
	quantityKg int,
	bestBeforeDate time.Time,
	handlingInstructions string,
) (CreateSurplusPostingCommand, error) {
	command := CreateSurplusPostingCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDonorID(donorID),
		command.setFoodType(foodType),
		command.setQuantityKg(quantityKg),
		command.setBestBeforeDate(bestBeforeDate),
		command.setHandlingInstructions(handlingInstructions),
	); err != nil {
		return CreateSurplusPostingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSurplusPostingCommand) Validate() error {
	return c.guard.Validate(ErrCreateSurplusPostingCommandIsNotConstructed)
}

// Actor returns the identity performing the command.
func (c CreateSurplusPostingCommand) Actor() kernel.Identity { return c.actor }

// DonorID returns the donor the posting belongs to.
func (c CreateSurplusPostingCommand) DonorID() kernel.ID { return c.donorID }

// FoodType returns the kind of food offered.
func (c CreateSurplusPostingCommand) FoodType() posting.FoodType { return c.foodType }

// QuantityKg returns the offered quantity in kilograms.
func (c CreateSurplusPostingCommand) QuantityKg() int { return c.quantityKg }

// BestBeforeDate returns the date the food must be used by.
func (c CreateSurplusPostingCommand) BestBeforeDate() time.Time { return c.bestBeforeDate }

// HandlingInstructions returns the donor's handling instructions.
func (c CreateSurplusPostingCommand) HandlingInstructions() string { return c.handlingInstructions }

func (c *CreateSurplusPostingCommand) setDonorID(donorID kernel.ID) error {
	if err := donorID.Validate("donorId"); err != nil {
		return err
	}
	c.donorID = donorID
	return nil
}

func (c *CreateSurplusPostingCommand) setFoodType(foodType posting.FoodType) error {
	if err := foodType.Validate(); err != nil {
		return err
	}
	c.foodType = foodType
	return nil
}

func (c *CreateSurplusPostingCommand) setQuantityKg(quantityKg int) error {
	if quantityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityKg",
			fmt.Errorf("%d is not greater than 0", quantityKg))
	}
	c.quantityKg = quantityKg
	return nil
}

func (c *CreateSurplusPostingCommand) setBestBeforeDate(bestBeforeDate time.Time) error {
	if bestBeforeDate.IsZero() {
		return errs.NewValueIsRequiredError("bestBeforeDate")
	}
	c.bestBeforeDate = bestBeforeDate
	return nil
}

func (c *CreateSurplusPostingCommand) setHandlingInstructions(handlingInstructions string) error {
	if handlingInstructions == "" {
		return errs.NewValueIsRequiredError("handlingInstructions")
	}
	c.handlingInstructions = handlingInstructions
	return nil
}
