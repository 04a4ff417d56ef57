package manager

import (
	"context"
	"testing"

	"github.com/jshim/cinesync/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCollectMovie(t *testing.T) {
	t.Run("detail failure aborts the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, tmdbMock, _ := newTestManager(t, ctrl, newTestStore(t))

		tmdbMock.EXPECT().MovieDetails(gomock.Any(), 999).
			Return(nil, tmdb.ErrNotFound).Times(1)

		_, err := m.CollectMovie(context.Background(), 999)
		assert.ErrorIs(t, err, tmdb.ErrNotFound)
	})

	t.Run("optional failures only land in missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, tmdbMock, _ := newTestManager(t, ctrl, newTestStore(t))

		tmdbMock.EXPECT().MovieDetails(gomock.Any(), 999).
			Return(movieDetails(999, "Partial"), nil).Times(1)
		tmdbMock.EXPECT().MovieCredits(gomock.Any(), 999).
			Return(nil, tmdb.ErrRateLimited).Times(1)
		tmdbMock.EXPECT().MovieImages(gomock.Any(), 999).
			Return(&tmdb.Images{ID: 999}, nil).Times(1)
		tmdbMock.EXPECT().MovieVideos(gomock.Any(), 999).
			Return(&tmdb.Videos{ID: 999}, nil).Times(1)
		tmdbMock.EXPECT().MovieWatchProviders(gomock.Any(), 999).
			Return(nil, tmdb.ErrNotFound).Times(1)

		graph, err := m.CollectMovie(context.Background(), 999)
		require.NoError(t, err)
		require.NotNil(t, graph.Detail)
		assert.Nil(t, graph.Credits)
		assert.NotNil(t, graph.Images)
		assert.NotNil(t, graph.Videos)
		assert.Nil(t, graph.Providers)
		assert.Equal(t, []string{"credits", "watch_providers"}, graph.Missing)
	})
}

func TestTrimCredits(t *testing.T) {
	cast := make([]tmdb.CastMember, 0, 15)
	for i := 14; i >= 0; i-- {
		cast = append(cast, tmdb.CastMember{ID: i, Name: "actor", Order: i})
	}

	credits := &tmdb.Credits{
		ID:   1,
		Cast: cast,
		Crew: []tmdb.CrewMember{
			{ID: 100, Name: "director", Department: "Directing", Job: "Director"},
			{ID: 101, Name: "editor", Department: "Editing", Job: "Editor"},
			{ID: 102, Name: "second unit", Department: "Directing", Job: "Second Unit Director"},
		},
	}

	trimmed := trimCredits(credits)

	require.Len(t, trimmed.Cast, maxCastMembers)
	for i, member := range trimmed.Cast {
		assert.Equal(t, i, member.Order)
	}

	require.Len(t, trimmed.Crew, 2)
	for _, crew := range trimmed.Crew {
		assert.Equal(t, "Directing", crew.Department)
	}
}

func TestFilterImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestManager(t, ctrl, newTestStore(t))

	images := &tmdb.Images{
		ID: 1,
		Posters: []tmdb.Image{
			{FilePath: "/a.jpg", ISO6391: ptr("ko")},
			{FilePath: "/a.jpg", ISO6391: ptr("ko")}, // duplicate path
			{FilePath: "/b.jpg", ISO6391: ptr("fr")},
			{FilePath: "/c.jpg"}, // no locale, always kept
		},
		Backdrops: []tmdb.Image{
			{FilePath: "/d.jpg", ISO6391: ptr("ko")},
			{FilePath: "/e.jpg", ISO6391: ptr("ja")},
		},
	}

	filtered := m.filterImages(images)

	paths := func(images []tmdb.Image) []string {
		out := make([]string, 0, len(images))
		for _, img := range images {
			out = append(out, img.FilePath)
		}
		return out
	}

	assert.Equal(t, []string{"/a.jpg", "/c.jpg"}, paths(filtered.Posters))
	assert.Equal(t, []string{"/d.jpg"}, paths(filtered.Backdrops))
}
