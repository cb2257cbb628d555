package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDriverProfileCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	newCommand := func(t *testing.T, actor kernel.Identity, email string) commands.CreateDriverProfileCommand {
		t.Helper()
		cmd, err := commands.NewCreateDriverProfileCommand(actor,
			"Sam Reed", "5550177665", email, "3 Pine Rd")
		require.NoError(t, err)
		return cmd
	}

	t.Run("approved_actor_creates_profile", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateDriverProfileCommandHandler(f.driverSessions(), f.policy, f.clock)

		stored, err := handler.Handle(ctx, newCommand(t, council, "sam@x.com"))
		require.NoError(t, err)
		assert.False(t, stored.ID().IsZero())
	})

	t.Run("unapproved_actor_is_rejected", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateDriverProfileCommandHandler(f.driverSessions(), f.policy, f.clock)

		_, err := handler.Handle(ctx, newCommand(t, kernel.Identity(42), "sam@x.com"))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateDriverProfileCommandHandler(f.driverSessions(), f.policy, f.clock)

		_, err := handler.Handle(ctx, newCommand(t, council, "sam@x.com"))
		require.NoError(t, err)

		_, err = handler.Handle(ctx, newCommand(t, council, "sam@x.com"))
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("bad_phone_fails_in_entity", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateDriverProfileCommandHandler(f.driverSessions(), f.policy, f.clock)

		cmd, err := commands.NewCreateDriverProfileCommand(council, "Sam Reed", "12345", "sam@x.com", "3 Pine Rd")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
