package manager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jshim/cinesync/config"
	kobisMocks "github.com/jshim/cinesync/pkg/kobis/mocks"
	storageMocks "github.com/jshim/cinesync/pkg/storage/mocks"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/tmdb"
	tmdbMocks "github.com/jshim/cinesync/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestPersistGraphsBatchShape pins the storage access pattern for a mixed
// batch: the query count scales with entity types, not with records. Thirty
// records where ten already exist cost two id lookups, one grouped insert and
// ten row updates.
func TestPersistGraphsBatchShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := storageMocks.NewMockStorage(ctrl)
	m := New(tmdbMocks.NewMockITmdb(ctrl), kobisMocks.NewMockIBoxOffice(ctrl), storeMock, config.Manager{BatchSize: 50})
	ctx := context.Background()

	graphs := make([]*TransferGraph, 0, 30)
	for i := 1; i <= 30; i++ {
		graphs = append(graphs, &TransferGraph{Detail: movieDetails(i, fmt.Sprintf("Movie %d", i))})
	}

	// ids 1..10 exist already with a stale title, 11..30 are new
	existing := make([]*model.MovieMetadata, 0, 10)
	for i := 1; i <= 10; i++ {
		existing = append(existing, &model.MovieMetadata{
			ID:     int32(i),
			TmdbID: int32(i),
			Title:  fmt.Sprintf("Old Movie %d", i),
		})
	}

	all := make([]*model.MovieMetadata, 0, 30)
	for i := 1; i <= 30; i++ {
		all = append(all, &model.MovieMetadata{ID: int32(i), TmdbID: int32(i)})
	}

	gomock.InOrder(
		storeMock.EXPECT().ListMovieMetadataByTmdbIDs(gomock.Any(), gomock.Len(30)).Return(existing, nil).Times(1),
		storeMock.EXPECT().ListMovieMetadataByTmdbIDs(gomock.Any(), gomock.Len(30)).Return(all, nil).Times(1),
	)
	storeMock.EXPECT().UpdateMovieMetadata(gomock.Any(), gomock.Any()).Return(nil).Times(10)
	storeMock.EXPECT().BatchCreateMovieMetadata(gomock.Any(), gomock.Len(20)).Return(int64(20), nil).Times(1)

	ids, err := m.persistGraphs(ctx, graphs)
	require.NoError(t, err)
	assert.Len(t, ids, 30)
}

// TestPersistGraphsChunkIsolation shows a failed chunk does not take the rest
// of the run down with it.
func TestPersistGraphsChunkIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := storageMocks.NewMockStorage(ctrl)
	m := New(tmdbMocks.NewMockITmdb(ctrl), kobisMocks.NewMockIBoxOffice(ctrl), storeMock, config.Manager{BatchSize: 1})
	ctx := context.Background()

	graphs := []*TransferGraph{
		{Detail: movieDetails(1, "Doomed")},
		{Detail: movieDetails(2, "Survivor")},
	}

	wantErr := errors.New("expected testing error")
	gomock.InOrder(
		storeMock.EXPECT().ListMovieMetadataByTmdbIDs(gomock.Any(), []int32{1}).Return(nil, wantErr).Times(1),
		storeMock.EXPECT().ListMovieMetadataByTmdbIDs(gomock.Any(), []int32{2}).Return([]*model.MovieMetadata{}, nil).Times(1),
		storeMock.EXPECT().BatchCreateMovieMetadata(gomock.Any(), gomock.Len(1)).Return(int64(1), nil).Times(1),
		storeMock.EXPECT().ListMovieMetadataByTmdbIDs(gomock.Any(), []int32{2}).
			Return([]*model.MovieMetadata{{ID: 7, TmdbID: 2}}, nil).Times(1),
	)

	ids, err := m.persistGraphs(ctx, graphs)
	require.NoError(t, err)
	assert.Equal(t, map[int32]int32{2: 7}, ids)
}

// TestPersistGraphsIdempotent runs the same batch twice against a real store
// and shows the second pass writes nothing.
func TestPersistGraphsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := newTestStore(t)
	m, _, _ := newTestManager(t, ctrl, store)
	ctx := context.Background()

	detail := movieDetails(999, "Example Title")
	detail.Genres = []tmdb.Genre{{ID: 18, Name: "Drama"}}

	graphs := []*TransferGraph{{
		Detail: detail,
		Credits: &tmdb.Credits{
			ID:   999,
			Cast: []tmdb.CastMember{{ID: 1, Name: "Lead", Character: "Hero", Order: 0}},
			Crew: []tmdb.CrewMember{{ID: 2, Name: "Director", Department: "Directing", Job: "Director"}},
		},
		Images: &tmdb.Images{ID: 999, Posters: []tmdb.Image{{FilePath: "/p.jpg", Width: 500, Height: 750}}},
		Videos: &tmdb.Videos{ID: 999, Results: []tmdb.Video{{Key: "abc123", Name: "Trailer", Site: "YouTube", Type: "Trailer", Official: true}}},
		Providers: &tmdb.WatchProviders{ID: 999, Results: map[string]tmdb.RegionOffers{
			"KR": {Flatrate: []tmdb.ProviderOffer{{ProviderID: 8, ProviderName: "Streamflix"}}},
		}},
	}}

	ids, err := m.persistGraphs(ctx, graphs)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	metadataID := ids[999]

	first, err := m.GetMovieMetadata(ctx, 999)
	require.NoError(t, err)

	// second pass with identical data
	ids, err = m.persistGraphs(ctx, graphs)
	require.NoError(t, err)
	assert.Equal(t, metadataID, ids[999])

	second, err := m.GetMovieMetadata(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)

	genres, err := store.ListMovieGenres(ctx, metadataID)
	require.NoError(t, err)
	assert.Len(t, genres, 1)

	cast, err := store.ListMovieCast(ctx, metadataID)
	require.NoError(t, err)
	assert.Len(t, cast, 1)

	crew, err := store.ListMovieCrew(ctx, metadataID)
	require.NoError(t, err)
	assert.Len(t, crew, 1)

	images, err := store.ListMovieImages(ctx, metadataID)
	require.NoError(t, err)
	assert.Len(t, images, 1)

	videos, err := store.ListMovieVideos(ctx, metadataID)
	require.NoError(t, err)
	assert.Len(t, videos, 1)

	providers, err := store.ListMovieWatchProviders(ctx, metadataID)
	require.NoError(t, err)
	assert.Len(t, providers, 1)
}

// TestPersistGraphsUpdatesChangedRecord exercises the update partition
// against a real store.
func TestPersistGraphsUpdatesChangedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := newTestStore(t)
	m, _, _ := newTestManager(t, ctrl, store)
	ctx := context.Background()

	detail := movieDetails(555, "Working Title")
	_, err := m.persistGraphs(ctx, []*TransferGraph{{Detail: detail}})
	require.NoError(t, err)

	changed := *detail
	changed.Title = "Final Title"
	changed.VoteCount = 250

	_, err = m.persistGraphs(ctx, []*TransferGraph{{Detail: &changed}})
	require.NoError(t, err)

	meta, err := m.GetMovieMetadata(ctx, 555)
	require.NoError(t, err)
	assert.Equal(t, "Final Title", meta.Title)
	require.NotNil(t, meta.VoteCount)
	assert.Equal(t, int32(250), *meta.VoteCount)
	assert.NotNil(t, meta.UpdatedAt)
}

func TestMetadataChanged(t *testing.T) {
	base := func() model.MovieMetadata {
		return model.MovieMetadata{
			TmdbID:      1,
			Title:       "Same",
			Overview:    ptr("same overview"),
			Runtime:     ptr(int32(100)),
			VoteAverage: ptr(7.0),
		}
	}

	t.Run("identical", func(t *testing.T) {
		a, b := base(), base()
		assert.False(t, metadataChanged(&a, &b))
	})

	t.Run("scalar change", func(t *testing.T) {
		a, b := base(), base()
		b.Title = "Different"
		assert.True(t, metadataChanged(&a, &b))
	})

	t.Run("pointer change", func(t *testing.T) {
		a, b := base(), base()
		b.Overview = ptr("new overview")
		assert.True(t, metadataChanged(&a, &b))
	})

	t.Run("nil to value", func(t *testing.T) {
		a, b := base(), base()
		b.Status = ptr("Released")
		assert.True(t, metadataChanged(&a, &b))
	})
}
