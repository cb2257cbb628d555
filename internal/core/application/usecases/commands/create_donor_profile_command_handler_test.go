package commands_test

import (
	"errors"
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDonorProfileCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateDonorProfileCommand(council,
			"Corner Bakery", "5550123456", "bakery@x.com", "12 Main St", donor.Bakery)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Corner Bakery", cmd.Name())
	})

	t.Run("missing_fields_fail", func(t *testing.T) {
		_, err := commands.NewCreateDonorProfileCommand(council,
			"", "5550123456", "bakery@x.com", "12 Main St", donor.Bakery)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_business_type_fails", func(t *testing.T) {
		_, err := commands.NewCreateDonorProfileCommand(council,
			"Corner Bakery", "5550123456", "bakery@x.com", "12 Main St", donor.UnknownBusiness)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not_constructed_fails_validate", func(t *testing.T) {
		var cmd commands.CreateDonorProfileCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDonorProfileCommandIsNotConstructed)
	})
}

func TestCreateDonorProfileCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	newCommand := func(t *testing.T, actor kernel.Identity, email string) commands.CreateDonorProfileCommand {
		t.Helper()
		cmd, err := commands.NewCreateDonorProfileCommand(actor,
			"Corner Bakery", "5550123456", email, "12 Main St", donor.Bakery)
		require.NoError(t, err)
		return cmd
	}

	t.Run("approved_actor_creates_profile", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateDonorProfileCommandHandler(f.donorSessions(), f.policy, f.clock)

		stored, err := handler.Handle(ctx, newCommand(t, council, "bakery@x.com"))
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(1), stored.ID())
		assert.Equal(t, f.clock.Now(), stored.CreatedAt())

		found, err := f.store.Donors().Find(ctx, stored.ID())
		require.NoError(t, err)
		assert.Equal(t, "Corner Bakery", found.Name())
	})

	t.Run("unapproved_actor_is_rejected", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateDonorProfileCommandHandler(f.donorSessions(), f.policy, f.clock)

		_, err := handler.Handle(ctx, newCommand(t, kernel.Identity(42), "bakery@x.com"))
		require.ErrorIs(t, err, errs.ErrUnauthorized)

		all, err := f.store.Donors().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("oracle_failure_fails_closed", func(t *testing.T) {
		f := newFixture()
		f.governance.err = errors.New("connection refused")
		handler := commands.NewCreateDonorProfileCommandHandler(f.donorSessions(), f.policy, f.clock)

		_, err := handler.Handle(ctx, newCommand(t, council, "bakery@x.com"))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateDonorProfileCommandHandler(f.donorSessions(), f.policy, f.clock)

		_, err := handler.Handle(ctx, newCommand(t, council, "bakery@x.com"))
		require.NoError(t, err)

		_, err = handler.Handle(ctx, newCommand(t, council, "bakery@x.com"))
		require.ErrorIs(t, err, errs.ErrConflict)

		all, err := f.store.Donors().List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("unconstructed_command_fails", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateDonorProfileCommandHandler(f.donorSessions(), f.policy, f.clock)

		_, err := handler.Handle(ctx, commands.CreateDonorProfileCommand{})
		require.ErrorIs(t, err, commands.ErrCreateDonorProfileCommandIsNotConstructed)
	})
}
