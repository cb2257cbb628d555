package commands_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSurplusPostingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	bestBefore := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	newCommand := func(t *testing.T, actor kernel.Identity, donorID kernel.ID) commands.CreateSurplusPostingCommand {
		t.Helper()
		cmd, err := commands.NewCreateSurplusPostingCommand(actor, donorID,
			posting.Bakery, 15, bestBefore, "keep dry")
		require.NoError(t, err)
		return cmd
	}

	t.Run("donor_posts_own_surplus", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedDonor(t)
		handler := commands.NewCreateSurplusPostingCommandHandler(f.postingSessions(), f.policy)

		actor := kernel.Identity(seeded.ID().Uint64())
		stored, err := handler.Handle(ctx, newCommand(t, actor, seeded.ID()))
		require.NoError(t, err)
		assert.Equal(t, posting.Open, stored.Status())
		assert.Equal(t, seeded.ID(), stored.DonorID())
		assert.False(t, stored.ID().IsZero())
	})

	t.Run("governance_posts_for_donor", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedDonor(t)
		handler := commands.NewCreateSurplusPostingCommandHandler(f.postingSessions(), f.policy)

		stored, err := handler.Handle(ctx, newCommand(t, council, seeded.ID()))
		require.NoError(t, err)
		assert.Equal(t, seeded.ID(), stored.DonorID())
	})

	t.Run("stranger_is_rejected", func(t *testing.T) {
		f := newFixture()
		seeded := f.seedDonor(t)
		handler := commands.NewCreateSurplusPostingCommandHandler(f.postingSessions(), f.policy)

		_, err := handler.Handle(ctx, newCommand(t, kernel.Identity(999), seeded.ID()))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("unknown_donor_fails", func(t *testing.T) {
		f := newFixture()
		handler := commands.NewCreateSurplusPostingCommandHandler(f.postingSessions(), f.policy)

		_, err := handler.Handle(ctx, newCommand(t, council, kernel.ID(77)))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("command_rejects_bad_quantity", func(t *testing.T) {
		_, err := commands.NewCreateSurplusPostingCommand(council, kernel.ID(1),
			posting.Bakery, 0, bestBefore, "keep dry")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
