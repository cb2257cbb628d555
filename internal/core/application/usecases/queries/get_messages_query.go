package queries

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/message"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/guard"
)

var ErrGetMessagesQueryIsNotConstructed = errors.New(
	"GetMessagesQuery must be created via NewGetMessagesQuery constructor",
)

// GetMessagesQuery retrieves the messages a participant sent or received.
// Unlike the list queries, message retrieval is authorized: the actor must
// be the participant themselves or governance approved.
type GetMessagesQuery struct { //nolint:recvcheck //using for validation
	actor         kernel.Identity
	participantID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetMessagesQuery creates a query for one participant's messages.
func NewGetMessagesQuery(actor kernel.Identity, participantID kernel.ID) (GetMessagesQuery, error) {
	query := GetMessagesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setParticipantID(participantID); err != nil {
		return GetMessagesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetMessagesQueryIsNotConstructed)
}

// Actor returns the identity performing the query.
func (q GetMessagesQuery) Actor() kernel.Identity { return q.actor }

// ParticipantID returns the participant whose messages are requested.
func (q GetMessagesQuery) ParticipantID() kernel.ID { return q.participantID }

func (q *GetMessagesQuery) setParticipantID(participantID kernel.ID) error {
	if err := participantID.Validate("participantId"); err != nil {
		return err
	}
	q.participantID = participantID
	return nil
}

// GetMessagesQueryHandler retrieves a participant's messages from the
// registry.
type GetMessagesQueryHandler struct {
	messages ports.MessageRegistry
	policy   services.AccessPolicy
}

// NewGetMessagesQueryHandler creates a handler for message retrieval queries.
func NewGetMessagesQueryHandler(messages ports.MessageRegistry, policy services.AccessPolicy) GetMessagesQueryHandler {
	return GetMessagesQueryHandler{messages: messages, policy: policy}
}

// Handle executes the query and returns every message the participant sent
// or received, in sending order.
func (h GetMessagesQueryHandler) Handle(ctx context.Context, query GetMessagesQuery) ([]message.Message, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.AuthorizeSelfOrGovernance(ctx, query.Actor(), query.ParticipantID()); err != nil {
		return nil, err
	}

	all, err := h.messages.List(ctx)
	if err != nil {
		return nil, err
	}

	involved := make([]message.Message, 0)
	for _, m := range all {
		if m.Involves(query.ParticipantID()) {
			involved = append(involved, m)
		}
	}
	return involved, nil
}
