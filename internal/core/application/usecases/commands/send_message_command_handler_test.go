package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("donor_messages_driver", func(t *testing.T) {
		f := newFixture()
		d := f.seedDonor(t)
		drv := f.seedDriver(t)
		handler := commands.NewSendMessageCommandHandler(f.messageSessions(), f.policy, f.clock)

		cmd, err := commands.NewSendMessageCommand(kernel.Identity(d.ID().Uint64()), d.ID(), drv.ID(), "dock 4, ring twice")
		require.NoError(t, err)

		stored, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, d.ID(), stored.SenderID())
		assert.Equal(t, drv.ID(), stored.RecipientID())
		assert.Equal(t, f.clock.Now(), stored.SentAt())
	})

	t.Run("unknown_recipient_fails", func(t *testing.T) {
		f := newFixture()
		d := f.seedDonor(t)
		handler := commands.NewSendMessageCommandHandler(f.messageSessions(), f.policy, f.clock)

		cmd, err := commands.NewSendMessageCommand(council, d.ID(), kernel.ID(77), "hello")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("actor_cannot_impersonate_sender", func(t *testing.T) {
		f := newFixture()
		d := f.seedDonor(t)
		drv := f.seedDriver(t)
		handler := commands.NewSendMessageCommandHandler(f.messageSessions(), f.policy, f.clock)

		cmd, err := commands.NewSendMessageCommand(kernel.Identity(drv.ID().Uint64()), d.ID(), drv.ID(), "hello")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestDeleteMessageCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	sendMessage := func(t *testing.T, f *fixture, senderID, recipientID kernel.ID) kernel.ID {
		t.Helper()
		handler := commands.NewSendMessageCommandHandler(f.messageSessions(), f.policy, f.clock)
		cmd, err := commands.NewSendMessageCommand(council, senderID, recipientID, "hello")
		require.NoError(t, err)
		stored, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		return stored.ID()
	}

	t.Run("sender_deletes_own_message", func(t *testing.T) {
		f := newFixture()
		d := f.seedDonor(t)
		drv := f.seedDriver(t)
		messageID := sendMessage(t, f, d.ID(), drv.ID())

		handler := commands.NewDeleteMessageCommandHandler(f.messageSessions(), f.policy)
		cmd, err := commands.NewDeleteMessageCommand(kernel.Identity(d.ID().Uint64()), messageID)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		all, err := f.store.Messages().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("recipient_cannot_delete", func(t *testing.T) {
		f := newFixture()
		d := f.seedDonor(t)
		drv := f.seedDriver(t)
		messageID := sendMessage(t, f, d.ID(), drv.ID())

		handler := commands.NewDeleteMessageCommandHandler(f.messageSessions(), f.policy)
		cmd, err := commands.NewDeleteMessageCommand(kernel.Identity(drv.ID().Uint64()), messageID)
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrUnauthorized)
	})

	t.Run("unknown_message_fails", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewDeleteMessageCommandHandler(f.messageSessions(), f.policy)

		cmd, err := commands.NewDeleteMessageCommand(council, kernel.ID(77))
		require.NoError(t, err)

		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})
}
