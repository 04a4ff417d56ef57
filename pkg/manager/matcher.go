package manager

import (
	"context"
	"errors"
	"strings"

	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

// MatchUnmapped pairs every unmapped box office entry with a catalog identity.
// Each entry is searched by its exact reported title and classified by whether
// the catalog already holds the top hit. Entries with no usable hit stay
// unmapped and are retried on the next run.
func (m MediaManager) MatchUnmapped(ctx context.Context) ([]MatchResult, error) {
	log := logger.FromCtx(ctx)

	entries, err := m.storage.ListUnmappedBoxOfficeEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	results := make([]MatchResult, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := m.matchEntry(ctx, entry)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	// one lookup for the whole run, not one per entry
	tmdbIDs := make([]int32, 0, len(results))
	for _, r := range results {
		if r.Class != MatchUnmatched {
			tmdbIDs = append(tmdbIDs, r.TmdbID)
		}
	}

	known, err := m.storage.ListMovieMetadataByTmdbIDs(ctx, tmdbIDs)
	if err != nil {
		return nil, err
	}

	knownByTmdbID := make(map[int32]*model.MovieMetadata, len(known))
	for _, meta := range known {
		knownByTmdbID[meta.TmdbID] = meta
	}

	for i := range results {
		if results[i].Class == MatchUnmatched {
			continue
		}
		if meta, ok := knownByTmdbID[results[i].TmdbID]; ok {
			results[i].Class = MatchExisting
			results[i].MetadataID = meta.ID
			continue
		}
		results[i].Class = MatchNew
	}

	log.Info("matched box office entries",
		zap.Int("total", len(results)),
		zap.Int("identified", len(tmdbIDs)))

	return results, nil
}

func (m MediaManager) matchEntry(ctx context.Context, entry *model.BoxOfficeEntry) (MatchResult, error) {
	log := logger.FromCtx(ctx)
	result := MatchResult{Entry: entry, Class: MatchUnmatched}

	title := strings.TrimSpace(entry.Title)
	if title == "" {
		log.Debug("box office entry has no title", zap.String("movie_code", entry.MovieCode))
		return result, nil
	}

	resp, err := m.tmdb.SearchMovie(ctx, title)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return result, err
		}
		// a failed search leaves the entry for the next run
		log.Debug("catalog search failed",
			zap.String("movie_code", entry.MovieCode),
			zap.String("title", title),
			zap.Error(err))
		return result, nil
	}

	if len(resp.Results) == 0 {
		log.Debug("no catalog hit",
			zap.String("movie_code", entry.MovieCode),
			zap.String("title", title))
		return result, nil
	}

	// take the provider's top-ranked hit as-is, ties included
	top := resp.Results[0]
	result.TmdbID = int32(top.ID)
	result.Class = MatchNew

	return result, nil
}
