package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReceiverProfileCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	newCommand := func(t *testing.T, actor kernel.Identity, email string) commands.CreateReceiverProfileCommand {
		t.Helper()
		cmd, err := commands.NewCreateReceiverProfileCommand(actor,
			"City Shelter", "5550199887", email, "7 Oak Ave")
		require.NoError(t, err)
		return cmd
	}

	t.Run("approved_actor_creates_profile", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateReceiverProfileCommandHandler(f.receiverSessions(), f.policy, f.clock)

		stored, err := handler.Handle(ctx, newCommand(t, council, "shelter@x.com"))
		require.NoError(t, err)
		assert.False(t, stored.ID().IsZero())
	})

	t.Run("unapproved_actor_is_rejected", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateReceiverProfileCommandHandler(f.receiverSessions(), f.policy, f.clock)

		_, err := handler.Handle(ctx, newCommand(t, kernel.Identity(42), "shelter@x.com"))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateReceiverProfileCommandHandler(f.receiverSessions(), f.policy, f.clock)

		_, err := handler.Handle(ctx, newCommand(t, council, "shelter@x.com"))
		require.NoError(t, err)

		_, err = handler.Handle(ctx, newCommand(t, council, "shelter@x.com"))
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("missing_fields_fail_in_command", func(t *testing.T) {
		_, err := commands.NewCreateReceiverProfileCommand(council, "City Shelter", "", "shelter@x.com", "7 Oak Ave")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
