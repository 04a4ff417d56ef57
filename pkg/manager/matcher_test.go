package manager

import (
	"context"
	"testing"

	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedBoxOfficeEntries(t *testing.T, m MediaManager, targetDate string, titles ...string) {
	t.Helper()

	entries := make([]model.BoxOfficeEntry, 0, len(titles))
	for i, title := range titles {
		entries = append(entries, model.BoxOfficeEntry{
			MovieCode:  targetDate + "-code-" + title,
			Title:      title,
			TargetDate: targetDate,
			Rank:       int32(i + 1),
		})
	}

	_, err := m.storage.UpsertBoxOfficeEntries(context.Background(), entries)
	require.NoError(t, err)
}

func TestMatchUnmapped(t *testing.T) {
	t.Run("nothing to match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, _, _ := newTestManager(t, ctrl, newTestStore(t))

		results, err := m.MatchUnmapped(context.Background())
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("classifies new, existing and unmatched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newTestStore(t)
		m, tmdbMock, _ := newTestManager(t, ctrl, store)
		ctx := context.Background()

		// one movie is already in the catalog
		_, err := m.persistGraphs(ctx, []*TransferGraph{{Detail: movieDetails(100, "Already Here")}})
		require.NoError(t, err)

		seedBoxOfficeEntries(t, m, "20231117", "Already Here", "Brand New", "No Hit")

		tmdbMock.EXPECT().SearchMovie(gomock.Any(), "Already Here").
			Return(&tmdb.SearchResponse{Results: []tmdb.SearchResult{{ID: 100}}}, nil).Times(1)
		tmdbMock.EXPECT().SearchMovie(gomock.Any(), "Brand New").
			Return(&tmdb.SearchResponse{Results: []tmdb.SearchResult{{ID: 200}}}, nil).Times(1)
		tmdbMock.EXPECT().SearchMovie(gomock.Any(), "No Hit").
			Return(&tmdb.SearchResponse{}, nil).Times(1)

		results, err := m.MatchUnmapped(ctx)
		require.NoError(t, err)
		require.Len(t, results, 3)

		byTitle := make(map[string]MatchResult, len(results))
		for _, r := range results {
			byTitle[r.Entry.Title] = r
		}

		assert.Equal(t, MatchExisting, byTitle["Already Here"].Class)
		assert.NotZero(t, byTitle["Already Here"].MetadataID)
		assert.Equal(t, int32(100), byTitle["Already Here"].TmdbID)

		assert.Equal(t, MatchNew, byTitle["Brand New"].Class)
		assert.Equal(t, int32(200), byTitle["Brand New"].TmdbID)
		assert.Zero(t, byTitle["Brand New"].MetadataID)

		assert.Equal(t, MatchUnmatched, byTitle["No Hit"].Class)
	})

	t.Run("takes the top ranked hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, tmdbMock, _ := newTestManager(t, ctrl, newTestStore(t))

		seedBoxOfficeEntries(t, m, "20231118", "Remake")

		tmdbMock.EXPECT().SearchMovie(gomock.Any(), "Remake").
			Return(&tmdb.SearchResponse{Results: []tmdb.SearchResult{
				{ID: 11, Title: "Remake", Popularity: 80},
				{ID: 22, Title: "Remake", Popularity: 80},
			}}, nil).Times(1)

		results, err := m.MatchUnmapped(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, int32(11), results[0].TmdbID)
	})

	t.Run("search failure leaves the entry unmatched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, tmdbMock, _ := newTestManager(t, ctrl, newTestStore(t))

		seedBoxOfficeEntries(t, m, "20231119", "Flaky")

		tmdbMock.EXPECT().SearchMovie(gomock.Any(), "Flaky").
			Return(nil, tmdb.ErrRateLimited).Times(1)

		results, err := m.MatchUnmapped(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, MatchUnmatched, results[0].Class)
	})
}
