package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/message"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/errs"
)

// SendMessageCommandHandler handles the business logic for messaging.
// The actor must be the sender themselves or governance approved, and both
// participants must hold a profile of any kind.
type SendMessageCommandHandler struct {
	sessionFactory MessageSessionFactory
	policy         services.AccessPolicy
	clock          ports.Clock
}

// NewSendMessageCommandHandler creates a handler for sending messages.
func NewSendMessageCommandHandler(
	sessionFactory MessageSessionFactory,
	policy services.AccessPolicy,
	clock ports.Clock,
) SendMessageCommandHandler {
	return SendMessageCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
		clock:          clock,
	}
}

// Handle processes the send command and returns the stored message
// carrying its issued identifier.
func (h *SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) (message.Message, error) {
	if err := cmd.Validate(); err != nil {
		return message.Message{}, err
	}

	if err := h.policy.AuthorizeSelfOrGovernance(ctx, cmd.Actor(), cmd.SenderID()); err != nil {
		return message.Message{}, err
	}

	entity, err := message.NewMessage(cmd.SenderID(), cmd.RecipientID(), cmd.Content(), h.clock.Now())
	if err != nil {
		return message.Message{}, err
	}

	session := h.sessionFactory.Create()
	if err = session.Begin(ctx); err != nil {
		return message.Message{}, err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	if err = requireParticipant(ctx, session, "senderId", cmd.SenderID()); err != nil {
		return message.Message{}, err
	}
	if err = requireParticipant(ctx, session, "recipientId", cmd.RecipientID()); err != nil {
		return message.Message{}, err
	}

	stored, err := session.Messages().Insert(ctx, entity)
	if err != nil {
		return message.Message{}, err
	}

	if err = session.Commit(ctx); err != nil {
		return message.Message{}, err
	}

	return stored, nil
}

// requireParticipant checks that the id belongs to a donor, receiver or
// driver profile.
func requireParticipant(ctx context.Context, session MessageSession, paramName string, id kernel.ID) error {
	for _, exists := range []func(context.Context, kernel.ID) (bool, error){
		session.Donors().Exists,
		session.Receivers().Exists,
		session.Drivers().Exists,
	} {
		found, err := exists(ctx, id)
		if err != nil {
			return err
		}
		if found {
			return nil
		}
	}
	return errs.NewObjectNotFoundError(paramName, id)
}
