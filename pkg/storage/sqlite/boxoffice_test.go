package sqlite_test

import (
	"context"
	"testing"

	"github.com/jshim/cinesync/pkg/storage"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyEntries(targetDate string) []model.BoxOfficeEntry {
	return []model.BoxOfficeEntry{
		{
			MovieCode:     "20231234",
			Title:         "Example Title",
			TargetDate:    targetDate,
			Rank:          1,
			RankChange:    2,
			AudienceCount: 35000,
			AudienceTotal: 120000,
			ScreenCount:   900,
			ShowCount:     4100,
		},
		{
			MovieCode:     "20235678",
			Title:         "Another Title",
			TargetDate:    targetDate,
			Rank:          2,
			NewEntry:      true,
			AudienceCount: 21000,
			AudienceTotal: 21000,
			ScreenCount:   700,
			ShowCount:     3200,
		},
	}
}

func TestSQLite_UpsertBoxOfficeEntries(t *testing.T) {
	t.Run("second pull of the same date writes nothing", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)

		inserted, err := store.UpsertBoxOfficeEntries(ctx, dailyEntries("20231117"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), inserted)

		again := dailyEntries("20231117")
		again[0].AudienceCount = 99999
		inserted, err = store.UpsertBoxOfficeEntries(ctx, again)
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)

		entries, err := store.ListBoxOfficeEntries(ctx, "20231117")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(35000), entries[0].AudienceCount)
	})

	t.Run("same movie on a new date is a new snapshot", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)

		_, err := store.UpsertBoxOfficeEntries(ctx, dailyEntries("20231117"))
		require.NoError(t, err)

		inserted, err := store.UpsertBoxOfficeEntries(ctx, dailyEntries("20231118"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), inserted)
	})

	t.Run("empty pull is a no-op", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)

		inserted, err := store.UpsertBoxOfficeEntries(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
	})
}

func TestSQLite_ListBoxOfficeEntries(t *testing.T) {
	t.Run("entries come back rank ordered", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)

		entries := dailyEntries("20231117")
		entries[0], entries[1] = entries[1], entries[0]
		_, err := store.UpsertBoxOfficeEntries(ctx, entries)
		require.NoError(t, err)

		got, err := store.ListBoxOfficeEntries(ctx, "20231117")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int32(1), got[0].Rank)
		assert.Equal(t, int32(2), got[1].Rank)
	})

	t.Run("unknown date is empty", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)

		got, err := store.ListBoxOfficeEntries(ctx, "20231117")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSQLite_GetBoxOfficeEntry(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)

		got, err := store.GetBoxOfficeEntry(ctx, 42)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestSQLite_LinkBoxOfficeMetadata(t *testing.T) {
	seed := func(t *testing.T, ctx context.Context, store storage.Storage) (entryID, metadataID int32) {
		t.Helper()

		_, err := store.UpsertBoxOfficeEntries(ctx, dailyEntries("20231117"))
		require.NoError(t, err)

		_, err = store.BatchCreateMovieMetadata(ctx, []model.MovieMetadata{{
			TmdbID:    999,
			Title:     "Example Title",
			MediaType: "movie",
		}})
		require.NoError(t, err)

		metas, err := store.ListMovieMetadataByTmdbIDs(ctx, []int32{999})
		require.NoError(t, err)
		require.Len(t, metas, 1)

		entries, err := store.ListUnmappedBoxOfficeEntries(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		return entries[0].ID, metas[0].ID
	}

	t.Run("linking closes the mapping", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)
		entryID, metadataID := seed(t, ctx, store)

		err := store.LinkBoxOfficeMetadata(ctx, entryID, metadataID)
		require.NoError(t, err)

		entry, err := store.GetBoxOfficeEntry(ctx, int64(entryID))
		require.NoError(t, err)
		require.NotNil(t, entry.MovieMetadataID)
		assert.Equal(t, metadataID, *entry.MovieMetadataID)

		unmapped, err := store.ListUnmappedBoxOfficeEntries(ctx)
		require.NoError(t, err)
		assert.Len(t, unmapped, 1)
	})

	t.Run("an entry maps at most once", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)
		entryID, metadataID := seed(t, ctx, store)

		err := store.LinkBoxOfficeMetadata(ctx, entryID, metadataID)
		require.NoError(t, err)

		err = store.LinkBoxOfficeMetadata(ctx, entryID, metadataID)
		assert.ErrorIs(t, err, storage.ErrAlreadyLinked)
	})

	t.Run("linking an unknown entry", func(t *testing.T) {
		ctx := context.Background()
		store := initTestDB(t)

		err := store.LinkBoxOfficeMetadata(ctx, 42, 1)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
