package memory_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"foodbridge/internal/adapters/out/memory"
	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonor(t *testing.T, name string) donor.Profile {
	t.Helper()
	profile, err := donor.NewProfile(name, "5550001111", name+"@x.com", "1 St", donor.Restaurant, time.Now())
	require.NoError(t, err)
	return profile
}

func newPosting(t *testing.T, donorID kernel.ID) posting.Posting {
	t.Helper()
	p, err := posting.NewPosting(donorID, posting.Fruits, 5, time.Now().Add(24*time.Hour), "boxed")
	require.NoError(t, err)
	return p
}

func TestRegistryCRUD(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	t.Run("insert_assigns_id_and_find_returns_copy", func(t *testing.T) {
		stored, err := store.Donors().Insert(ctx, newDonor(t, "al"))
		require.NoError(t, err)
		assert.False(t, stored.ID().IsZero())

		found, err := store.Donors().Find(ctx, stored.ID())
		require.NoError(t, err)
		assert.Equal(t, stored.Name(), found.Name())

		exists, err := store.Donors().Exists(ctx, stored.ID())
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("find_unknown_id_fails", func(t *testing.T) {
		_, err := store.Donors().Find(ctx, kernel.ID(9999))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		exists, err := store.Donors().Exists(ctx, kernel.ID(9999))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("list_preserves_insertion_order", func(t *testing.T) {
		local := memory.NewStore()
		first, err := local.Donors().Insert(ctx, newDonor(t, "first"))
		require.NoError(t, err)
		second, err := local.Donors().Insert(ctx, newDonor(t, "second"))
		require.NoError(t, err)

		all, err := local.Donors().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID(), all[0].ID())
		assert.Equal(t, second.ID(), all[1].ID())
	})

	t.Run("mutate_replaces_stored_entity", func(t *testing.T) {
		local := memory.NewStore()
		d, err := local.Donors().Insert(ctx, newDonor(t, "al"))
		require.NoError(t, err)
		stored, err := local.Postings().Insert(ctx, newPosting(t, d.ID()))
		require.NoError(t, err)

		updated, err := local.Postings().Mutate(ctx, stored.ID(), posting.Posting.Assign)
		require.NoError(t, err)
		assert.Equal(t, posting.Assigned, updated.Status())

		found, err := local.Postings().Find(ctx, stored.ID())
		require.NoError(t, err)
		assert.Equal(t, posting.Assigned, found.Status())
	})

	t.Run("failed_mutate_leaves_entity_untouched", func(t *testing.T) {
		local := memory.NewStore()
		d, err := local.Donors().Insert(ctx, newDonor(t, "al"))
		require.NoError(t, err)
		stored, err := local.Postings().Insert(ctx, newPosting(t, d.ID()))
		require.NoError(t, err)

		_, err = local.Postings().Mutate(ctx, stored.ID(), posting.Posting.Deliver)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		found, err := local.Postings().Find(ctx, stored.ID())
		require.NoError(t, err)
		assert.Equal(t, posting.Open, found.Status())
	})

	t.Run("remove_deletes_entity", func(t *testing.T) {
		local := memory.NewStore()
		stored, err := local.Donors().Insert(ctx, newDonor(t, "al"))
		require.NoError(t, err)

		require.NoError(t, local.Donors().Remove(ctx, stored.ID()))
		_, err = local.Donors().Find(ctx, stored.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		require.ErrorIs(t, local.Donors().Remove(ctx, stored.ID()), errs.ErrObjectNotFound)
	})
}

func TestSharedSequence(t *testing.T) {
	ctx := context.Background()

	t.Run("ids_are_unique_across_registries", func(t *testing.T) {
		store := memory.NewStore()

		d, err := store.Donors().Insert(ctx, newDonor(t, "al"))
		require.NoError(t, err)
		p, err := store.Postings().Insert(ctx, newPosting(t, d.ID()))
		require.NoError(t, err)
		d2, err := store.Donors().Insert(ctx, newDonor(t, "bo"))
		require.NoError(t, err)

		assert.Equal(t, kernel.ID(1), d.ID())
		assert.Equal(t, kernel.ID(2), p.ID())
		assert.Equal(t, kernel.ID(3), d2.ID())
	})

	t.Run("concurrent_inserts_never_reuse_an_id", func(t *testing.T) {
		store := memory.NewStore()

		const workers = 16
		const perWorker = 50

		var wg sync.WaitGroup
		idsCh := make(chan kernel.ID, workers*perWorker)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					stored, err := store.Donors().Insert(ctx, newDonor(t, "w"))
					assert.NoError(t, err)
					idsCh <- stored.ID()
				}
			}()
		}
		wg.Wait()
		close(idsCh)

		ids := make([]kernel.ID, 0, workers*perWorker)
		seen := make(map[kernel.ID]bool)
		for id := range idsCh {
			assert.False(t, seen[id], "id %d issued twice", id)
			seen[id] = true
			ids = append(ids, id)
		}
		require.Len(t, ids, workers*perWorker)

		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		assert.Equal(t, kernel.ID(1), ids[0])
		assert.Equal(t, kernel.ID(workers*perWorker), ids[len(ids)-1])
	})
}
