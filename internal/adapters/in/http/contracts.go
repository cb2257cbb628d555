package http

import (
	"time"

	"foodbridge/internal/core/domain/model/assignment"
	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/model/message"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/model/receiver"
	"foodbridge/internal/core/domain/model/request"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewProfileRequest is the request body for registering a donor, receiver or
// driver. BusinessType is read for donors only.
type NewProfileRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	BusinessType string `json:"businessType,omitempty"`
}

// ProfileResponse represents a registered participant profile.
type ProfileResponse struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	BusinessType string    `json:"businessType,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewPostingRequest is the request body for listing surplus food.
type NewPostingRequest struct {
	DonorID              uint64    `json:"donorId"`
	FoodType             string    `json:"foodType"`
	QuantityKg           int       `json:"quantityKg"`
	BestBeforeDate       time.Time `json:"bestBeforeDate"`
	HandlingInstructions string    `json:"handlingInstructions"`
}

// PostingResponse represents a surplus posting and its lifecycle status.
type PostingResponse struct {
	ID                   uint64    `json:"id"`
	DonorID              uint64    `json:"donorId"`
	FoodType             string    `json:"foodType"`
	QuantityKg           int       `json:"quantityKg"`
	BestBeforeDate       time.Time `json:"bestBeforeDate"`
	HandlingInstructions string    `json:"handlingInstructions"`
	Status               string    `json:"status"`
}

// NewAssignmentRequest is the request body for a driver taking a posting
// for delivery to a receiver.
type NewAssignmentRequest struct {
	ReceiverID uint64 `json:"receiverId"`
	PostingID  uint64 `json:"postingId"`
	DriverID   uint64 `json:"driverId"`
}

// AssignmentResponse represents a driver's claim on a posting.
type AssignmentResponse struct {
	ID         uint64    `json:"id"`
	ReceiverID uint64    `json:"receiverId"`
	PostingID  uint64    `json:"postingId"`
	DriverID   uint64    `json:"driverId"`
	AssignedAt time.Time `json:"assignedAt"`
	Status     string    `json:"status"`
}

// NewDeliveryRequest is the request body for confirming a delivery.
// Rating is optional.
type NewDeliveryRequest struct {
	PostingID uint64 `json:"postingId"`
	DriverID  uint64 `json:"driverId"`
	Rating    *int   `json:"rating,omitempty"`
}

// DeliveryResponse represents a confirmed delivery record.
type DeliveryResponse struct {
	ID          uint64    `json:"id"`
	PostingID   uint64    `json:"postingId"`
	DriverID    uint64    `json:"driverId"`
	DeliveredAt time.Time `json:"deliveredAt"`
	Rating      *int      `json:"rating,omitempty"`
}

// NewFoodRequestRequest is the request body for a receiver's standing ask.
type NewFoodRequestRequest struct {
	ReceiverID  uint64 `json:"receiverId"`
	Description string `json:"description"`
	QuantityKg  int    `json:"quantityKg"`
}

// FoodRequestResponse represents a receiver's food request.
type FoodRequestResponse struct {
	ID          uint64 `json:"id"`
	ReceiverID  uint64 `json:"receiverId"`
	Description string `json:"description"`
	QuantityKg  int    `json:"quantityKg"`
	Fulfilled   bool   `json:"fulfilled"`
}

// NewMessageRequest is the request body for sending a message.
type NewMessageRequest struct {
	SenderID    uint64 `json:"senderId"`
	RecipientID uint64 `json:"recipientId"`
	Content     string `json:"content"`
}

// MessageResponse represents a message between participants.
type MessageResponse struct {
	ID          uint64    `json:"id"`
	SenderID    uint64    `json:"senderId"`
	RecipientID uint64    `json:"recipientId"`
	Content     string    `json:"content"`
	SentAt      time.Time `json:"sentAt"`
}

func toDonorResponse(profile donor.Profile) ProfileResponse {
	return ProfileResponse{
		ID:           profile.ID().Uint64(),
		Name:         profile.Name(),
		Phone:        profile.Phone().String(),
		Email:        profile.Email().String(),
		Address:      profile.Address(),
		BusinessType: profile.BusinessType().String(),
		CreatedAt:    profile.CreatedAt(),
	}
}

func toReceiverResponse(profile receiver.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID().Uint64(),
		Name:      profile.Name(),
		Phone:     profile.Phone().String(),
		Email:     profile.Email().String(),
		Address:   profile.Address(),
		CreatedAt: profile.CreatedAt(),
	}
}

func toDriverResponse(profile driver.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID().Uint64(),
		Name:      profile.Name(),
		Phone:     profile.Phone().String(),
		Email:     profile.Email().String(),
		Address:   profile.Address(),
		CreatedAt: profile.CreatedAt(),
	}
}

func toPostingResponse(entity posting.Posting) PostingResponse {
	return PostingResponse{
		ID:                   entity.ID().Uint64(),
		DonorID:              entity.DonorID().Uint64(),
		FoodType:             entity.FoodType().String(),
		QuantityKg:           entity.QuantityKg(),
		BestBeforeDate:       entity.BestBeforeDate(),
		HandlingInstructions: entity.HandlingInstructions(),
		Status:               entity.Status().String(),
	}
}

func toAssignmentResponse(entity assignment.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         entity.ID().Uint64(),
		ReceiverID: entity.ReceiverID().Uint64(),
		PostingID:  entity.PostingID().Uint64(),
		DriverID:   entity.DriverID().Uint64(),
		AssignedAt: entity.AssignedAt(),
		Status:     entity.Status().String(),
	}
}

func toDeliveryResponse(record delivery.Record) DeliveryResponse {
	var rating *int
	if value, ok := record.Rating().Value(); ok {
		rating = &value
	}

	return DeliveryResponse{
		ID:          record.ID().Uint64(),
		PostingID:   record.PostingID().Uint64(),
		DriverID:    record.DriverID().Uint64(),
		DeliveredAt: record.DeliveredAt(),
		Rating:      rating,
	}
}

func toFoodRequestResponse(entity request.FoodRequest) FoodRequestResponse {
	return FoodRequestResponse{
		ID:          entity.ID().Uint64(),
		ReceiverID:  entity.ReceiverID().Uint64(),
		Description: entity.Description(),
		QuantityKg:  entity.QuantityKg(),
		Fulfilled:   entity.Fulfilled(),
	}
}

func toMessageResponse(entity message.Message) MessageResponse {
	return MessageResponse{
		ID:          entity.ID().Uint64(),
		SenderID:    entity.SenderID().Uint64(),
		RecipientID: entity.RecipientID().Uint64(),
		Content:     entity.Content(),
		SentAt:      entity.SentAt(),
	}
}
