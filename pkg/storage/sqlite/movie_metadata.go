package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/pkg/storage"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/table"
)

// GetMovieMetadata gets a movie metadata for the given where
func (s *SQLite) GetMovieMetadata(ctx context.Context, where sqlite.BoolExpression) (*model.MovieMetadata, error) {
	meta := &model.MovieMetadata{}
	stmt := table.MovieMetadata.
		SELECT(table.MovieMetadata.AllColumns).
		FROM(table.MovieMetadata).
		WHERE(where).
		LIMIT(1)

	err := stmt.QueryContext(ctx, s.db, meta)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie metadata: %w", err)
	}

	return meta, nil
}

// ListMovieMetadata lists movie metadata matching the optional where expressions
func (s *SQLite) ListMovieMetadata(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.MovieMetadata, error) {
	metas := make([]*model.MovieMetadata, 0)
	stmt := table.MovieMetadata.
		SELECT(table.MovieMetadata.AllColumns).
		FROM(table.MovieMetadata).
		ORDER_BY(table.MovieMetadata.TmdbID.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	err := stmt.QueryContext(ctx, s.db, &metas)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie metadata: %w", err)
	}

	return metas, nil
}

// ListMovieMetadataByTmdbIDs finds the already-known rows for a batch of
// catalog ids in a single query.
func (s *SQLite) ListMovieMetadataByTmdbIDs(ctx context.Context, tmdbIDs []int32) ([]*model.MovieMetadata, error) {
	metas := make([]*model.MovieMetadata, 0)
	if len(tmdbIDs) == 0 {
		return metas, nil
	}

	ids := make([]sqlite.Expression, len(tmdbIDs))
	for i, id := range tmdbIDs {
		ids[i] = sqlite.Int32(id)
	}

	stmt := table.MovieMetadata.
		SELECT(table.MovieMetadata.AllColumns).
		FROM(table.MovieMetadata).
		WHERE(table.MovieMetadata.TmdbID.IN(ids...))

	err := stmt.QueryContext(ctx, s.db, &metas)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie metadata by tmdb ids: %w", err)
	}

	return metas, nil
}

// BatchCreateMovieMetadata inserts the missing rows of a batch in one
// statement. Conflicting tmdb ids are skipped, not rewritten.
func (s *SQLite) BatchCreateMovieMetadata(ctx context.Context, metas []model.MovieMetadata) (int64, error) {
	if len(metas) == 0 {
		return 0, nil
	}

	stmt := table.MovieMetadata.
		INSERT(table.MovieMetadata.MutableColumns.
			Except(table.MovieMetadata.CreatedAt, table.MovieMetadata.UpdatedAt, table.MovieMetadata.DeletedAt)).
		MODELS(metas).
		ON_CONFLICT(table.MovieMetadata.TmdbID).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to batch create movie metadata: %w", err)
	}

	return result.RowsAffected()
}

// UpdateMovieMetadata rewrites the refreshable fields of an existing row. The
// caller is expected to have bumped UpdatedAt.
func (s *SQLite) UpdateMovieMetadata(ctx context.Context, meta model.MovieMetadata) error {
	stmt := table.MovieMetadata.
		UPDATE(table.MovieMetadata.MutableColumns.
			Except(table.MovieMetadata.TmdbID, table.MovieMetadata.CreatedAt, table.MovieMetadata.DeletedAt)).
		MODEL(meta).
		WHERE(table.MovieMetadata.ID.EQ(sqlite.Int32(meta.ID)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update movie metadata: %w", err)
	}

	return nil
}

// SoftDeleteMovieMetadata marks a catalog movie deleted. The pipeline never
// hard-deletes metadata rows.
func (s *SQLite) SoftDeleteMovieMetadata(ctx context.Context, id int32) error {
	stmt := table.MovieMetadata.
		UPDATE(table.MovieMetadata.DeletedAt).
		SET(sqlite.CURRENT_TIMESTAMP()).
		WHERE(table.MovieMetadata.ID.EQ(sqlite.Int32(id)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to soft delete movie metadata: %w", err)
	}

	return nil
}
