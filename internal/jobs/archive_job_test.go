package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodbridge/internal/adapters/out/memory"
	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubArchive collects saved records in memory and remembers the highest
// identifier seen, mimicking the durable archive.
type stubArchive struct {
	saved []delivery.Record
}

func (s *stubArchive) Save(_ context.Context, record delivery.Record) error {
	s.saved = append(s.saved, record)
	return nil
}

func (s *stubArchive) LastRecordID(context.Context) (kernel.ID, error) {
	if len(s.saved) == 0 {
		return kernel.ID(0), nil
	}
	return s.saved[len(s.saved)-1].ID(), nil
}

func TestArchiveJobRun(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	archive := &stubArchive{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	job := NewArchiveJob(store.Deliveries(), archive, logger)

	insert := func(t *testing.T) delivery.Record {
		t.Helper()
		record, err := delivery.NewRecord(kernel.ID(1), kernel.ID(2), time.Now(), delivery.NoRating())
		require.NoError(t, err)
		stored, err := store.Deliveries().Insert(ctx, record)
		require.NoError(t, err)
		return stored
	}

	t.Run("empty_registry_archives_nothing", func(t *testing.T) {
		require.NoError(t, job.run(ctx))
		assert.Empty(t, archive.saved)
	})

	t.Run("copies_new_records", func(t *testing.T) {
		first := insert(t)
		second := insert(t)

		require.NoError(t, job.run(ctx))
		require.Len(t, archive.saved, 2)
		assert.Equal(t, first.ID(), archive.saved[0].ID())
		assert.Equal(t, second.ID(), archive.saved[1].ID())
	})

	t.Run("rerun_skips_already_archived_records", func(t *testing.T) {
		require.NoError(t, job.run(ctx))
		assert.Len(t, archive.saved, 2)

		third := insert(t)
		require.NoError(t, job.run(ctx))
		require.Len(t, archive.saved, 3)
		assert.Equal(t, third.ID(), archive.saved[2].ID())
	})
}
