package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jshim/cinesync/pkg/kobis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestBoxOffice(t *testing.T) {
	t.Run("rejects a malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, _, _ := newTestManager(t, ctrl, newTestStore(t))

		err := m.IngestBoxOffice(context.Background(), "2023-11-17")
		assert.Error(t, err)
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, _, kobisMock := newTestManager(t, ctrl, newTestStore(t))

		kobisMock.EXPECT().DailyBoxOffice(gomock.Any(), "20231117").
			Return(nil, kobis.ErrRateLimited).Times(1)

		err := m.IngestBoxOffice(context.Background(), "20231117")
		assert.ErrorIs(t, err, kobis.ErrRateLimited)
	})

	t.Run("empty report stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newTestStore(t)
		m, _, kobisMock := newTestManager(t, ctrl, store)

		kobisMock.EXPECT().DailyBoxOffice(gomock.Any(), "20231117").
			Return(dailyReport("20231117"), nil).Times(1)

		require.NoError(t, m.IngestBoxOffice(context.Background(), "20231117"))

		entries, err := store.ListBoxOfficeEntries(context.Background(), "20231117")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("stores a ranked snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newTestStore(t)
		m, _, kobisMock := newTestManager(t, ctrl, store)
		ctx := context.Background()

		kobisMock.EXPECT().DailyBoxOffice(gomock.Any(), "20231117").
			Return(dailyReport("20231117",
				kobis.Entry{Rank: 2, MovieCode: "b", Name: "Second", AudienceCount: 10},
				kobis.Entry{Rank: 1, MovieCode: "a", Name: "First", AudienceCount: 20, NewEntry: true},
			), nil).Times(1)

		require.NoError(t, m.IngestBoxOffice(ctx, "20231117"))

		entries, err := store.ListBoxOfficeEntries(ctx, "20231117")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		// listed in rank order regardless of report order
		assert.Equal(t, "a", entries[0].MovieCode)
		assert.True(t, entries[0].NewEntry)
		assert.Equal(t, "b", entries[1].MovieCode)
		assert.Equal(t, int64(10), entries[1].AudienceCount)
	})

	t.Run("same day twice is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newTestStore(t)
		m, _, kobisMock := newTestManager(t, ctrl, store)
		ctx := context.Background()

		// the second report even carries different numbers; the snapshot
		// is immutable so they are ignored
		kobisMock.EXPECT().DailyBoxOffice(gomock.Any(), "20231117").
			Return(dailyReport("20231117",
				kobis.Entry{Rank: 1, MovieCode: "a", Name: "First", AudienceCount: 20},
			), nil).Times(1)
		kobisMock.EXPECT().DailyBoxOffice(gomock.Any(), "20231117").
			Return(dailyReport("20231117",
				kobis.Entry{Rank: 1, MovieCode: "a", Name: "First", AudienceCount: 999},
			), nil).Times(1)

		require.NoError(t, m.IngestBoxOffice(ctx, "20231117"))
		require.NoError(t, m.IngestBoxOffice(ctx, "20231117"))

		entries, err := store.ListBoxOfficeEntries(ctx, "20231117")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(20), entries[0].AudienceCount)
	})

	t.Run("different days coexist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newTestStore(t)
		m, _, kobisMock := newTestManager(t, ctrl, store)
		ctx := context.Background()

		for _, date := range []string{"20231117", "20231118"} {
			kobisMock.EXPECT().DailyBoxOffice(gomock.Any(), date).
				Return(dailyReport(date,
					kobis.Entry{Rank: 1, MovieCode: "a", Name: "First"},
				), nil).Times(1)
			require.NoError(t, m.IngestBoxOffice(ctx, date))
		}

		for _, date := range []string{"20231117", "20231118"} {
			entries, err := store.ListBoxOfficeEntries(ctx, date)
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		}
	})
}

func TestYesterdayTargetDate(t *testing.T) {
	now := time.Date(2023, 11, 18, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "20231117", YesterdayTargetDate(now))

	// month boundary
	now = time.Date(2023, 12, 1, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "20231130", YesterdayTargetDate(now))
}

func TestIngestBoxOfficeWrapsStorageErrors(t *testing.T) {
	// a cancelled context surfaces as an error, not a silent skip
	ctrl := gomock.NewController(t)
	m, _, kobisMock := newTestManager(t, ctrl, newTestStore(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wantErr := errors.New("expected testing error")
	kobisMock.EXPECT().DailyBoxOffice(gomock.Any(), "20231117").Return(nil, wantErr).Times(1)

	err := m.IngestBoxOffice(ctx, "20231117")
	assert.ErrorIs(t, err, wantErr)
}
