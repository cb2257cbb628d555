// Package request contains the FoodRequest entity. A food request is a
// receiver's standing ask for food and is what the dispatcher matches open
// surplus postings against.
package request

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrFoodRequestIsNotConstructed is returned when a FoodRequest instance was
// not created through the NewFoodRequest factory method.
var ErrFoodRequestIsNotConstructed = errors.New("FoodRequest must be created via NewFoodRequest constructor")

// FoodRequest is a receiver's ask for a quantity of food. It starts
// unfulfilled and is marked fulfilled when the dispatcher hands its receiver
// an assignment.
type FoodRequest struct {
	id          kernel.ID
	receiverID  kernel.ID
	description string
	quantityKg  int
	fulfilled   bool

	isConstructed bool
}

// NewFoodRequest creates an unfulfilled FoodRequest with validation.
func NewFoodRequest(receiverID kernel.ID, description string, quantityKg int) (FoodRequest, error) {
	r := FoodRequest{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setReceiverID(receiverID),
		r.setDescription(description),
		r.setQuantityKg(quantityKg),
	); err != nil {
		return FoodRequest{}, err
	}

	return r, nil
}

// Validate ensures the FoodRequest was constructed through NewFoodRequest.
func (r FoodRequest) Validate() error {
	if !r.isConstructed {
		return ErrFoodRequestIsNotConstructed
	}
	return nil
}

// WithID returns a copy of the request carrying the issued identifier.
func (r FoodRequest) WithID(id kernel.ID) FoodRequest {
	r.id = id
	return r
}

// ID returns the request's unique identifier, or zero before insertion.
func (r FoodRequest) ID() kernel.ID { return r.id }

// ReceiverID returns the identifier of the receiver asking for food.
func (r FoodRequest) ReceiverID() kernel.ID { return r.receiverID }

// Description returns what kind of food the receiver is asking for.
func (r FoodRequest) Description() string { return r.description }

// QuantityKg returns the requested quantity in kilograms.
func (r FoodRequest) QuantityKg() int { return r.quantityKg }

// Fulfilled reports whether the dispatcher has served this request.
func (r FoodRequest) Fulfilled() bool { return r.fulfilled }

// MarkFulfilled returns a copy of the request marked as served.
func (r FoodRequest) MarkFulfilled() FoodRequest {
	r.fulfilled = true
	return r
}

func (r *FoodRequest) setReceiverID(receiverID kernel.ID) error {
	if err := receiverID.Validate("receiverId"); err != nil {
		return err
	}
	r.receiverID = receiverID
	return nil
}

func (r *FoodRequest) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	r.description = description
	return nil
}

func (r *FoodRequest) setQuantityKg(quantityKg int) error {
	if quantityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityKg",
			errors.New("quantity must be greater than 0"))
	}
	r.quantityKg = quantityKg
	return nil
}
