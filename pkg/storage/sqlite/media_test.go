package sqlite_test

import (
	"context"
	"testing"

	"github.com/jshim/cinesync/pkg/storage"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovie(t *testing.T, ctx context.Context, store storage.Storage) int32 {
	t.Helper()

	_, err := store.BatchCreateMovieMetadata(ctx, []model.MovieMetadata{
		{TmdbID: 999, Title: "Example Title", MediaType: "movie"},
	})
	require.NoError(t, err)

	metas, err := store.ListMovieMetadataByTmdbIDs(ctx, []int32{999})
	require.NoError(t, err)
	require.Len(t, metas, 1)

	return metas[0].ID
}

func TestSQLite_MovieGenres(t *testing.T) {
	ctx := context.Background()
	store := initTestDB(t)
	movieID := seedMovie(t, ctx, store)

	require.NoError(t, store.BatchCreateGenres(ctx, []model.Genre{
		{ID: 28, Name: "Action"},
		{ID: 18, Name: "Drama"},
	}))

	links := []model.MovieGenre{
		{MovieMetadataID: movieID, GenreID: 28},
		{MovieMetadataID: movieID, GenreID: 18},
	}
	require.NoError(t, store.BatchLinkMovieGenres(ctx, links))
	require.NoError(t, store.BatchLinkMovieGenres(ctx, links))

	genres, err := store.ListMovieGenres(ctx, movieID)
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, int32(18), genres[0].ID)
}

func TestSQLite_MovieCredits(t *testing.T) {
	ctx := context.Background()
	store := initTestDB(t)
	movieID := seedMovie(t, ctx, store)

	require.NoError(t, store.BatchCreatePeople(ctx, []model.Person{
		{TmdbID: 500, Name: "A Director"},
		{TmdbID: 501, Name: "An Actor"},
	}))

	people, err := store.ListPeopleByTmdbIDs(ctx, []int32{500, 501})
	require.NoError(t, err)
	require.Len(t, people, 2)

	byTmdb := map[int32]int32{}
	for _, p := range people {
		byTmdb[p.TmdbID] = p.ID
	}

	cast := []model.MovieCast{
		{MovieMetadataID: movieID, PersonID: byTmdb[501], CharacterName: ptr("The Lead"), CastOrder: 0},
	}
	require.NoError(t, store.BatchCreateMovieCast(ctx, cast))
	require.NoError(t, store.BatchCreateMovieCast(ctx, cast))

	crew := []model.MovieCrew{
		{MovieMetadataID: movieID, PersonID: byTmdb[500], Department: ptr("Directing"), Job: "Director"},
	}
	require.NoError(t, store.BatchCreateMovieCrew(ctx, crew))
	require.NoError(t, store.BatchCreateMovieCrew(ctx, crew))

	gotCast, err := store.ListMovieCast(ctx, movieID)
	require.NoError(t, err)
	require.Len(t, gotCast, 1)
	assert.Equal(t, byTmdb[501], gotCast[0].PersonID)

	gotCrew, err := store.ListMovieCrew(ctx, movieID)
	require.NoError(t, err)
	require.Len(t, gotCrew, 1)
	assert.Equal(t, "Director", gotCrew[0].Job)
}

func TestSQLite_MovieImagesAndVideos(t *testing.T) {
	ctx := context.Background()
	store := initTestDB(t)
	movieID := seedMovie(t, ctx, store)

	images := []model.MovieImage{
		{MovieMetadataID: movieID, FilePath: "/poster.jpg", ImageType: "poster", Locale: ptr("ko")},
		{MovieMetadataID: movieID, FilePath: "/backdrop.jpg", ImageType: "backdrop"},
	}
	inserted, err := store.BatchCreateMovieImages(ctx, images)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	inserted, err = store.BatchCreateMovieImages(ctx, images)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	gotImages, err := store.ListMovieImages(ctx, movieID)
	require.NoError(t, err)
	assert.Len(t, gotImages, 2)

	videos := []model.MovieVideo{
		{MovieMetadataID: movieID, VideoKey: "abc123", Site: ptr("YouTube"), VideoType: ptr("Trailer"), Official: true},
	}
	inserted, err = store.BatchCreateMovieVideos(ctx, videos)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	inserted, err = store.BatchCreateMovieVideos(ctx, videos)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)
}

func TestSQLite_MovieWatchProviders(t *testing.T) {
	ctx := context.Background()
	store := initTestDB(t)
	movieID := seedMovie(t, ctx, store)

	require.NoError(t, store.BatchCreateWatchProviders(ctx, []model.WatchProvider{
		{TmdbID: 8, Name: "A Streamer", DisplayPriority: 1},
	}))

	providers, err := store.ListWatchProvidersByTmdbIDs(ctx, []int32{8})
	require.NoError(t, err)
	require.Len(t, providers, 1)

	links := []model.MovieWatchProvider{
		{MovieMetadataID: movieID, WatchProviderID: providers[0].ID, OfferType: "flatrate", Region: "KR"},
	}
	require.NoError(t, store.BatchLinkMovieWatchProviders(ctx, links))
	require.NoError(t, store.BatchLinkMovieWatchProviders(ctx, links))

	got, err := store.ListMovieWatchProviders(ctx, movieID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "flatrate", got[0].OfferType)
}
