package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/table"
)

func int32Expressions(ids []int32) []sqlite.Expression {
	exprs := make([]sqlite.Expression, len(ids))
	for i, id := range ids {
		exprs[i] = sqlite.Int32(id)
	}
	return exprs
}

// ListGenres returns the known genres among the given catalog genre ids
func (s *SQLite) ListGenres(ctx context.Context, ids []int32) ([]*model.Genre, error) {
	genres := make([]*model.Genre, 0)
	if len(ids) == 0 {
		return genres, nil
	}

	stmt := table.Genre.
		SELECT(table.Genre.AllColumns).
		FROM(table.Genre).
		WHERE(table.Genre.ID.IN(int32Expressions(ids)...))

	err := stmt.QueryContext(ctx, s.db, &genres)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	return genres, nil
}

// BatchCreateGenres inserts the given genres, ignoring ids that already exist
func (s *SQLite) BatchCreateGenres(ctx context.Context, genres []model.Genre) error {
	if len(genres) == 0 {
		return nil
	}

	stmt := table.Genre.
		INSERT(table.Genre.AllColumns).
		MODELS(genres).
		ON_CONFLICT(table.Genre.ID).
		DO_NOTHING()

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to batch create genres: %w", err)
	}

	return nil
}

// ListPeopleByTmdbIDs returns the known people among the given catalog ids
func (s *SQLite) ListPeopleByTmdbIDs(ctx context.Context, tmdbIDs []int32) ([]*model.Person, error) {
	people := make([]*model.Person, 0)
	if len(tmdbIDs) == 0 {
		return people, nil
	}

	stmt := table.Person.
		SELECT(table.Person.AllColumns).
		FROM(table.Person).
		WHERE(table.Person.TmdbID.IN(int32Expressions(tmdbIDs)...))

	err := stmt.QueryContext(ctx, s.db, &people)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	return people, nil
}

// BatchCreatePeople inserts the given people, ignoring catalog ids that
// already exist
func (s *SQLite) BatchCreatePeople(ctx context.Context, people []model.Person) error {
	if len(people) == 0 {
		return nil
	}

	stmt := table.Person.
		INSERT(table.Person.MutableColumns).
		MODELS(people).
		ON_CONFLICT(table.Person.TmdbID).
		DO_NOTHING()

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to batch create people: %w", err)
	}

	return nil
}

// ListWatchProvidersByTmdbIDs returns the known providers among the given
// catalog ids
func (s *SQLite) ListWatchProvidersByTmdbIDs(ctx context.Context, tmdbIDs []int32) ([]*model.WatchProvider, error) {
	providers := make([]*model.WatchProvider, 0)
	if len(tmdbIDs) == 0 {
		return providers, nil
	}

	stmt := table.WatchProvider.
		SELECT(table.WatchProvider.AllColumns).
		FROM(table.WatchProvider).
		WHERE(table.WatchProvider.TmdbID.IN(int32Expressions(tmdbIDs)...))

	err := stmt.QueryContext(ctx, s.db, &providers)
	if err != nil {
		return nil, fmt.Errorf("failed to list watch providers: %w", err)
	}

	return providers, nil
}

// BatchCreateWatchProviders inserts the given providers, ignoring catalog ids
// that already exist
func (s *SQLite) BatchCreateWatchProviders(ctx context.Context, providers []model.WatchProvider) error {
	if len(providers) == 0 {
		return nil
	}

	stmt := table.WatchProvider.
		INSERT(table.WatchProvider.MutableColumns).
		MODELS(providers).
		ON_CONFLICT(table.WatchProvider.TmdbID).
		DO_NOTHING()

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to batch create watch providers: %w", err)
	}

	return nil
}
