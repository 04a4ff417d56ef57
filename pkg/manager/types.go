package manager

import (
	"time"

	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/tmdb"
)

const (
	DefaultWorkers   = 4
	DefaultBatchSize = 25
	DefaultRegion    = "KR"
	DefaultLanguage  = "ko"

	// maxCastMembers keeps only the top of the billing order
	maxCastMembers = 10

	mediaTypeMovie = "movie"

	releaseDateFormat = "2006-01-02"
)

// MatchClass says what the matcher decided for one box office entry
type MatchClass string

const (
	// MatchExisting means the catalog already holds the movie
	MatchExisting MatchClass = "existing"
	// MatchNew means the provider knows the movie but the catalog does not
	MatchNew MatchClass = "new"
	// MatchUnmatched means the provider search returned nothing usable
	MatchUnmatched MatchClass = "unmatched"
)

// MatchResult pairs a box office entry with the catalog identity found for it
type MatchResult struct {
	Entry *model.BoxOfficeEntry
	Class MatchClass
	// TmdbID is set for existing and new matches
	TmdbID int32
	// MetadataID is set only for existing matches
	MetadataID int32
}

// TransferGraph is everything collected for one movie before persistence.
// Detail is always present; the optional sections may be nil with the failed
// fetch named in Missing.
type TransferGraph struct {
	Detail    *tmdb.MovieDetails
	Credits   *tmdb.Credits
	Images    *tmdb.Images
	Videos    *tmdb.Videos
	Providers *tmdb.WatchProviders
	// Missing names the optional sections that could not be fetched
	Missing []string
}

// FromMovieDetails maps a provider detail payload onto a catalog record
func FromMovieDetails(det tmdb.MovieDetails) model.MovieMetadata {
	meta := model.MovieMetadata{
		TmdbID:    int32(det.ID),
		Title:     det.Title,
		MediaType: mediaTypeMovie,
	}

	if det.OriginalTitle != "" {
		meta.OriginalTitle = &det.OriginalTitle
	}
	if det.Overview != "" {
		meta.Overview = &det.Overview
	}
	if det.Status != "" {
		meta.Status = &det.Status
	}
	if det.Runtime != 0 {
		runtime := int32(det.Runtime)
		meta.Runtime = &runtime
	}
	if det.ReleaseDate != "" {
		if parsed, err := time.Parse(releaseDateFormat, det.ReleaseDate); err == nil {
			meta.ReleaseDate = &parsed
		}
	}

	voteAverage := det.VoteAverage
	meta.VoteAverage = &voteAverage
	voteCount := int32(det.VoteCount)
	meta.VoteCount = &voteCount
	popularity := det.Popularity
	meta.Popularity = &popularity
	meta.PosterPath = det.PosterPath

	return meta
}
