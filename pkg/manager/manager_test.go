package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/jshim/cinesync/config"
	"github.com/jshim/cinesync/pkg/kobis"
	kobisMocks "github.com/jshim/cinesync/pkg/kobis/mocks"
	"github.com/jshim/cinesync/pkg/storage"
	mediaSqlite "github.com/jshim/cinesync/pkg/storage/sqlite"
	"github.com/jshim/cinesync/pkg/tmdb"
	tmdbMocks "github.com/jshim/cinesync/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T) storage.Storage {
	t.Helper()

	store, err := mediaSqlite.New(":memory:")
	require.NoError(t, err)

	err = store.Init(context.Background())
	require.NoError(t, err)

	return store
}

func newTestManager(t *testing.T, ctrl *gomock.Controller, store storage.Storage) (MediaManager, *tmdbMocks.MockITmdb, *kobisMocks.MockIBoxOffice) {
	t.Helper()

	tmdbMock := tmdbMocks.NewMockITmdb(ctrl)
	kobisMock := kobisMocks.NewMockIBoxOffice(ctrl)

	m := New(tmdbMock, kobisMock, store, config.Manager{})
	return m, tmdbMock, kobisMock
}

func ptr[T any](v T) *T {
	return &v
}

func TestSearchMovie(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, _, _ := newTestManager(t, ctrl, newTestStore(t))

		_, err := m.SearchMovie(context.Background(), "   ")
		assert.Error(t, err)
	})

	t.Run("passes query through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, tmdbMock, _ := newTestManager(t, ctrl, newTestStore(t))

		want := &tmdb.SearchResponse{
			Results: []tmdb.SearchResult{{ID: 42, Title: "The Answer"}},
		}
		tmdbMock.EXPECT().SearchMovie(gomock.Any(), "The Answer").Return(want, nil).Times(1)

		got, err := m.SearchMovie(context.Background(), " The Answer ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, tmdbMock, _ := newTestManager(t, ctrl, newTestStore(t))

		wantErr := errors.New("expected testing error")
		tmdbMock.EXPECT().SearchMovie(gomock.Any(), gomock.Any()).Return(nil, wantErr).Times(1)

		_, err := m.SearchMovie(context.Background(), "anything")
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestNewAppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestManager(t, ctrl, newTestStore(t))

	assert.Equal(t, DefaultWorkers, m.config.Workers)
	assert.Equal(t, DefaultBatchSize, m.config.BatchSize)
	assert.Equal(t, DefaultRegion, m.config.Region)
	assert.Equal(t, DefaultLanguage, m.config.Language)
}

func dailyReport(targetDate string, entries ...kobis.Entry) *kobis.DailyBoxOffice {
	return &kobis.DailyBoxOffice{
		BoxOfficeType: "daily",
		ShowRange:     targetDate + "~" + targetDate,
		Entries:       entries,
	}
}

func movieDetails(id int, title string) *tmdb.MovieDetails {
	return &tmdb.MovieDetails{
		ID:          id,
		Title:       title,
		Overview:    "overview of " + title,
		Status:      "Released",
		ReleaseDate: "2023-11-15",
		Runtime:     120,
		VoteAverage: 7.5,
		VoteCount:   100,
		Popularity:  50.5,
	}
}

// expectOptionalSectionsMissing makes every optional collector fetch fail so
// a test can focus on the detail path.
func expectOptionalSectionsMissing(tmdbMock *tmdbMocks.MockITmdb, id int) {
	notFound := tmdb.ErrNotFound
	tmdbMock.EXPECT().MovieCredits(gomock.Any(), id).Return(nil, notFound).Times(1)
	tmdbMock.EXPECT().MovieImages(gomock.Any(), id).Return(nil, notFound).Times(1)
	tmdbMock.EXPECT().MovieVideos(gomock.Any(), id).Return(nil, notFound).Times(1)
	tmdbMock.EXPECT().MovieWatchProviders(gomock.Any(), id).Return(nil, notFound).Times(1)
}
