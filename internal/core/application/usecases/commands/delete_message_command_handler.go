package commands

import (
	"context"

	"foodbridge/internal/core/domain/services"
)

// DeleteMessageCommandHandler handles the business logic for message
// deletion. Only the message's sender or a governance-approved actor may
// delete it.
type DeleteMessageCommandHandler struct {
	sessionFactory MessageSessionFactory
	policy         services.AccessPolicy
}

// NewDeleteMessageCommandHandler creates a handler for message deletion.
func NewDeleteMessageCommandHandler(
	sessionFactory MessageSessionFactory,
	policy services.AccessPolicy,
) DeleteMessageCommandHandler {
	return DeleteMessageCommandHandler{
		sessionFactory: sessionFactory,
		policy:         policy,
	}
}

// Handle processes the delete command.
func (h *DeleteMessageCommandHandler) Handle(ctx context.Context, cmd DeleteMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session := h.sessionFactory.Create()
	if err := session.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = session.Rollback(ctx)
	}()

	stored, err := session.Messages().Find(ctx, cmd.MessageID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeSelfOrGovernance(ctx, cmd.Actor(), stored.SenderID()); err != nil {
		return err
	}

	if err = session.Messages().Remove(ctx, cmd.MessageID()); err != nil {
		return err
	}

	return session.Commit(ctx)
}
