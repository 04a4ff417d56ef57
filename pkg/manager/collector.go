package manager

import (
	"context"
	"fmt"
	"sort"

	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/tmdb"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// CollectMovie assembles the full transfer graph for one catalog movie. The
// detail fetch is mandatory; credits, images, videos and watch providers are
// each optional and a failure there only lands the section name in Missing.
func (m MediaManager) CollectMovie(ctx context.Context, tmdbID int) (*TransferGraph, error) {
	log := logger.FromCtx(ctx).With(zap.Int("tmdb_id", tmdbID))

	detail, err := m.tmdb.MovieDetails(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("movie detail fetch: %w", err)
	}

	graph := &TransferGraph{Detail: detail}

	credits, err := m.tmdb.MovieCredits(ctx, tmdbID)
	if err != nil {
		log.Debug("credits fetch failed", zap.Error(err))
		graph.Missing = append(graph.Missing, "credits")
	} else {
		graph.Credits = trimCredits(credits)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	images, err := m.tmdb.MovieImages(ctx, tmdbID)
	if err != nil {
		log.Debug("images fetch failed", zap.Error(err))
		graph.Missing = append(graph.Missing, "images")
	} else {
		graph.Images = m.filterImages(images)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	videos, err := m.tmdb.MovieVideos(ctx, tmdbID)
	if err != nil {
		log.Debug("videos fetch failed", zap.Error(err))
		graph.Missing = append(graph.Missing, "videos")
	} else {
		graph.Videos = videos
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	providers, err := m.tmdb.MovieWatchProviders(ctx, tmdbID)
	if err != nil {
		log.Debug("watch providers fetch failed", zap.Error(err))
		graph.Missing = append(graph.Missing, "watch_providers")
	} else {
		graph.Providers = providers
	}

	return graph, nil
}

// trimCredits keeps the top of the billing order and the directing crew
func trimCredits(credits *tmdb.Credits) *tmdb.Credits {
	trimmed := &tmdb.Credits{ID: credits.ID}

	cast := make([]tmdb.CastMember, len(credits.Cast))
	copy(cast, credits.Cast)
	sort.SliceStable(cast, func(i, j int) bool {
		return cast[i].Order < cast[j].Order
	})
	if len(cast) > maxCastMembers {
		cast = cast[:maxCastMembers]
	}
	trimmed.Cast = cast

	for _, crew := range credits.Crew {
		if crew.Department == "Directing" || crew.Job == "Director" {
			trimmed.Crew = append(trimmed.Crew, crew)
		}
	}

	return trimmed
}

// filterImages deduplicates by file path and keeps only images in the
// configured locale or without one
func (m MediaManager) filterImages(images *tmdb.Images) *tmdb.Images {
	want, err := language.Parse(m.config.Language)
	if err != nil {
		want = language.Korean
	}
	matcher := language.NewMatcher([]language.Tag{want})

	filtered := &tmdb.Images{ID: images.ID}
	seen := make(map[string]struct{})

	keep := func(img tmdb.Image) bool {
		if _, ok := seen[img.FilePath]; ok {
			return false
		}
		if img.ISO6391 == nil {
			seen[img.FilePath] = struct{}{}
			return true
		}
		tag, err := language.Parse(*img.ISO6391)
		if err != nil {
			return false
		}
		_, _, confidence := matcher.Match(tag)
		if confidence < language.High {
			return false
		}
		seen[img.FilePath] = struct{}{}
		return true
	}

	for _, img := range images.Posters {
		if keep(img) {
			filtered.Posters = append(filtered.Posters, img)
		}
	}
	for _, img := range images.Backdrops {
		if keep(img) {
			filtered.Backdrops = append(filtered.Backdrops, img)
		}
	}

	return filtered
}
