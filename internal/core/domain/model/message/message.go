// Package message contains the Message entity used for direct communication
// between participants, for example a donor telling a driver where to find
// the loading dock.
package message

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through the NewMessage factory method.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is a one-way note from one participant to another. Messages are
// visible to their sender and recipient and can be deleted by the sender.
type Message struct {
	id          kernel.ID
	senderID    kernel.ID
	recipientID kernel.ID
	content     string
	sentAt      time.Time

	isConstructed bool
}

// NewMessage creates a Message with validation.
func NewMessage(senderID, recipientID kernel.ID, content string, sentAt time.Time) (Message, error) {
	m := Message{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setSenderID(senderID),
		m.setRecipientID(recipientID),
		m.setContent(content),
		m.setSentAt(sentAt),
	); err != nil {
		return Message{}, err
	}

	return m, nil
}

// Validate ensures the Message was constructed through NewMessage.
func (m Message) Validate() error {
	if !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// WithID returns a copy of the message carrying the issued identifier.
func (m Message) WithID(id kernel.ID) Message {
	m.id = id
	return m
}

// ID returns the message's unique identifier, or zero before insertion.
func (m Message) ID() kernel.ID { return m.id }

// SenderID returns the identifier of the sending participant.
func (m Message) SenderID() kernel.ID { return m.senderID }

// RecipientID returns the identifier of the receiving participant.
func (m Message) RecipientID() kernel.ID { return m.recipientID }

// Content returns the message body.
func (m Message) Content() string { return m.content }

// SentAt returns the time the message was sent.
func (m Message) SentAt() time.Time { return m.sentAt }

// Involves reports whether the given participant is the sender or the
// recipient of this message.
func (m Message) Involves(participant kernel.ID) bool {
	return m.senderID == participant || m.recipientID == participant
}

func (m *Message) setSenderID(senderID kernel.ID) error {
	if err := senderID.Validate("senderId"); err != nil {
		return err
	}
	m.senderID = senderID
	return nil
}

func (m *Message) setRecipientID(recipientID kernel.ID) error {
	if err := recipientID.Validate("recipientId"); err != nil {
		return err
	}
	m.recipientID = recipientID
	return nil
}

func (m *Message) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	m.content = content
	return nil
}

func (m *Message) setSentAt(sentAt time.Time) error {
	if sentAt.IsZero() {
		return errs.NewValueIsRequiredError("sentAt")
	}
	m.sentAt = sentAt
	return nil
}
