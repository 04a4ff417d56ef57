package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/table"
)

// BatchLinkMovieGenres links movies to genres, ignoring links that already exist
func (s *SQLite) BatchLinkMovieGenres(ctx context.Context, links []model.MovieGenre) error {
	if len(links) == 0 {
		return nil
	}

	stmt := table.MovieGenre.
		INSERT(table.MovieGenre.AllColumns).
		MODELS(links).
		ON_CONFLICT(table.MovieGenre.MovieMetadataID, table.MovieGenre.GenreID).
		DO_NOTHING()

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to link movie genres: %w", err)
	}

	return nil
}

// ListMovieGenres lists the genres linked to one catalog movie
func (s *SQLite) ListMovieGenres(ctx context.Context, movieMetadataID int32) ([]*model.Genre, error) {
	genres := make([]*model.Genre, 0)
	stmt := table.Genre.
		SELECT(table.Genre.AllColumns).
		FROM(
			table.Genre.INNER_JOIN(
				table.MovieGenre,
				table.Genre.ID.EQ(table.MovieGenre.GenreID),
			),
		).
		WHERE(table.MovieGenre.MovieMetadataID.EQ(sqlite.Int32(movieMetadataID))).
		ORDER_BY(table.Genre.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &genres)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie genres: %w", err)
	}

	return genres, nil
}

// BatchCreateMovieCast inserts cast credits, ignoring credits that already exist
func (s *SQLite) BatchCreateMovieCast(ctx context.Context, cast []model.MovieCast) error {
	if len(cast) == 0 {
		return nil
	}

	stmt := table.MovieCast.
		INSERT(table.MovieCast.MutableColumns).
		MODELS(cast).
		ON_CONFLICT(table.MovieCast.MovieMetadataID, table.MovieCast.PersonID, table.MovieCast.CastOrder).
		DO_NOTHING()

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to batch create movie cast: %w", err)
	}

	return nil
}

// ListMovieCast lists the cast credits of one catalog movie in billing order
func (s *SQLite) ListMovieCast(ctx context.Context, movieMetadataID int32) ([]*model.MovieCast, error) {
	cast := make([]*model.MovieCast, 0)
	stmt := table.MovieCast.
		SELECT(table.MovieCast.AllColumns).
		FROM(table.MovieCast).
		WHERE(table.MovieCast.MovieMetadataID.EQ(sqlite.Int32(movieMetadataID))).
		ORDER_BY(table.MovieCast.CastOrder.ASC())

	err := stmt.QueryContext(ctx, s.db, &cast)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie cast: %w", err)
	}

	return cast, nil
}

// BatchCreateMovieCrew inserts crew credits, ignoring credits that already exist
func (s *SQLite) BatchCreateMovieCrew(ctx context.Context, crew []model.MovieCrew) error {
	if len(crew) == 0 {
		return nil
	}

	stmt := table.MovieCrew.
		INSERT(table.MovieCrew.MutableColumns).
		MODELS(crew).
		ON_CONFLICT(table.MovieCrew.MovieMetadataID, table.MovieCrew.PersonID, table.MovieCrew.Job).
		DO_NOTHING()

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to batch create movie crew: %w", err)
	}

	return nil
}

// ListMovieCrew lists the crew credits of one catalog movie
func (s *SQLite) ListMovieCrew(ctx context.Context, movieMetadataID int32) ([]*model.MovieCrew, error) {
	crew := make([]*model.MovieCrew, 0)
	stmt := table.MovieCrew.
		SELECT(table.MovieCrew.AllColumns).
		FROM(table.MovieCrew).
		WHERE(table.MovieCrew.MovieMetadataID.EQ(sqlite.Int32(movieMetadataID))).
		ORDER_BY(table.MovieCrew.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &crew)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie crew: %w", err)
	}

	return crew, nil
}

// BatchCreateMovieImages inserts image rows, skipping file paths already
// recorded for the movie. Returns the number of rows actually inserted.
func (s *SQLite) BatchCreateMovieImages(ctx context.Context, images []model.MovieImage) (int64, error) {
	if len(images) == 0 {
		return 0, nil
	}

	stmt := table.MovieImage.
		INSERT(table.MovieImage.MutableColumns).
		MODELS(images).
		ON_CONFLICT(table.MovieImage.MovieMetadataID, table.MovieImage.FilePath).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to batch create movie images: %w", err)
	}

	return result.RowsAffected()
}

// ListMovieImages lists the image rows of one catalog movie
func (s *SQLite) ListMovieImages(ctx context.Context, movieMetadataID int32) ([]*model.MovieImage, error) {
	images := make([]*model.MovieImage, 0)
	stmt := table.MovieImage.
		SELECT(table.MovieImage.AllColumns).
		FROM(table.MovieImage).
		WHERE(table.MovieImage.MovieMetadataID.EQ(sqlite.Int32(movieMetadataID))).
		ORDER_BY(table.MovieImage.FilePath.ASC())

	err := stmt.QueryContext(ctx, s.db, &images)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie images: %w", err)
	}

	return images, nil
}

// BatchCreateMovieVideos inserts video rows, skipping keys already recorded
// for the movie. Returns the number of rows actually inserted.
func (s *SQLite) BatchCreateMovieVideos(ctx context.Context, videos []model.MovieVideo) (int64, error) {
	if len(videos) == 0 {
		return 0, nil
	}

	stmt := table.MovieVideo.
		INSERT(table.MovieVideo.MutableColumns).
		MODELS(videos).
		ON_CONFLICT(table.MovieVideo.MovieMetadataID, table.MovieVideo.VideoKey).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to batch create movie videos: %w", err)
	}

	return result.RowsAffected()
}

// ListMovieVideos lists the video rows of one catalog movie
func (s *SQLite) ListMovieVideos(ctx context.Context, movieMetadataID int32) ([]*model.MovieVideo, error) {
	videos := make([]*model.MovieVideo, 0)
	stmt := table.MovieVideo.
		SELECT(table.MovieVideo.AllColumns).
		FROM(table.MovieVideo).
		WHERE(table.MovieVideo.MovieMetadataID.EQ(sqlite.Int32(movieMetadataID))).
		ORDER_BY(table.MovieVideo.VideoKey.ASC())

	err := stmt.QueryContext(ctx, s.db, &videos)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie videos: %w", err)
	}

	return videos, nil
}

// BatchLinkMovieWatchProviders links movies to watch providers, ignoring
// offers that already exist
func (s *SQLite) BatchLinkMovieWatchProviders(ctx context.Context, links []model.MovieWatchProvider) error {
	if len(links) == 0 {
		return nil
	}

	stmt := table.MovieWatchProvider.
		INSERT(table.MovieWatchProvider.MutableColumns).
		MODELS(links).
		ON_CONFLICT(
			table.MovieWatchProvider.MovieMetadataID,
			table.MovieWatchProvider.WatchProviderID,
			table.MovieWatchProvider.OfferType,
			table.MovieWatchProvider.Region,
		).
		DO_NOTHING()

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to link movie watch providers: %w", err)
	}

	return nil
}

// ListMovieWatchProviders lists the provider offers of one catalog movie
func (s *SQLite) ListMovieWatchProviders(ctx context.Context, movieMetadataID int32) ([]*model.MovieWatchProvider, error) {
	links := make([]*model.MovieWatchProvider, 0)
	stmt := table.MovieWatchProvider.
		SELECT(table.MovieWatchProvider.AllColumns).
		FROM(table.MovieWatchProvider).
		WHERE(table.MovieWatchProvider.MovieMetadataID.EQ(sqlite.Int32(movieMetadataID))).
		ORDER_BY(table.MovieWatchProvider.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &links)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie watch providers: %w", err)
	}

	return links, nil
}
