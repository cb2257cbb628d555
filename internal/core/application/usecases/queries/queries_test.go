package queries_test

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/adapters/out/memory"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/message"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowAllGovernance struct{}

func (allowAllGovernance) IsApproved(context.Context, kernel.Identity) (bool, error) {
	return true, nil
}

type denyAllGovernance struct{}

func (denyAllGovernance) IsApproved(context.Context, kernel.Identity) (bool, error) {
	return false, nil
}

func TestListDonorsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()

	t.Run("empty_registry_lists_nothing", func(t *testing.T) {
		handler := queries.NewListDonorsQueryHandler(store.Donors())
		all, err := handler.Handle(ctx, queries.NewListDonorsQuery())
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("lists_in_registration_order", func(t *testing.T) {
		for _, name := range []string{"first", "second"} {
			profile, err := donor.NewProfile(name, "5550001111", name+"@x.com", "1 St", donor.Grocery, time.Now())
			require.NoError(t, err)
			_, err = store.Donors().Insert(ctx, profile)
			require.NoError(t, err)
		}

		handler := queries.NewListDonorsQueryHandler(store.Donors())
		all, err := handler.Handle(ctx, queries.NewListDonorsQuery())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "first", all[0].Name())
		assert.Equal(t, "second", all[1].Name())
	})

	t.Run("unconstructed_query_fails", func(t *testing.T) {
		handler := queries.NewListDonorsQueryHandler(store.Donors())
		_, err := handler.Handle(ctx, queries.ListDonorsQuery{})
		require.ErrorIs(t, err, queries.ErrListDonorsQueryIsNotConstructed)
	})
}

func TestListPostingsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()

	p, err := posting.NewPosting(kernel.ID(1), posting.Dairy, 4, time.Now().Add(24*time.Hour), "chilled")
	require.NoError(t, err)
	_, err = store.Postings().Insert(ctx, p)
	require.NoError(t, err)

	handler := queries.NewListPostingsQueryHandler(store.Postings())
	all, err := handler.Handle(ctx, queries.NewListPostingsQuery())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, posting.Open, all[0].Status())
}

func TestGetMessagesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	now := time.Now()

	send := func(t *testing.T, senderID, recipientID kernel.ID) {
		t.Helper()
		m, err := message.NewMessage(senderID, recipientID, "hi", now)
		require.NoError(t, err)
		_, err = store.Messages().Insert(ctx, m)
		require.NoError(t, err)
	}

	send(t, kernel.ID(1), kernel.ID(2))
	send(t, kernel.ID(2), kernel.ID(1))
	send(t, kernel.ID(3), kernel.ID(4))

	t.Run("participant_sees_own_messages", func(t *testing.T) {
		policy := services.NewAccessPolicy(denyAllGovernance{})
		handler := queries.NewGetMessagesQueryHandler(store.Messages(), policy)

		query, err := queries.NewGetMessagesQuery(kernel.Identity(1), kernel.ID(1))
		require.NoError(t, err)

		involved, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Len(t, involved, 2)
	})

	t.Run("governance_sees_anyones_messages", func(t *testing.T) {
		policy := services.NewAccessPolicy(allowAllGovernance{})
		handler := queries.NewGetMessagesQueryHandler(store.Messages(), policy)

		query, err := queries.NewGetMessagesQuery(kernel.Identity(999), kernel.ID(3))
		require.NoError(t, err)

		involved, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Len(t, involved, 1)
	})

	t.Run("stranger_is_rejected", func(t *testing.T) {
		policy := services.NewAccessPolicy(denyAllGovernance{})
		handler := queries.NewGetMessagesQueryHandler(store.Messages(), policy)

		query, err := queries.NewGetMessagesQuery(kernel.Identity(999), kernel.ID(1))
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
