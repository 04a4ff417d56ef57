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

// UpsertBoxOfficeEntries inserts a pull's ranked entries in one statement.
// Rows whose (movie_code, target_date) snapshot already exists are skipped so
// re-running the same pull writes nothing.
func (s *SQLite) UpsertBoxOfficeEntries(ctx context.Context, entries []model.BoxOfficeEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	stmt := table.BoxOfficeEntry.
		INSERT(table.BoxOfficeEntry.MutableColumns.Except(table.BoxOfficeEntry.CreatedAt)).
		MODELS(entries).
		ON_CONFLICT(table.BoxOfficeEntry.MovieCode, table.BoxOfficeEntry.TargetDate).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert box office entries: %w", err)
	}

	return result.RowsAffected()
}

func (s *SQLite) GetBoxOfficeEntry(ctx context.Context, id int64) (*model.BoxOfficeEntry, error) {
	entry := &model.BoxOfficeEntry{}
	stmt := table.BoxOfficeEntry.
		SELECT(table.BoxOfficeEntry.AllColumns).
		FROM(table.BoxOfficeEntry).
		WHERE(table.BoxOfficeEntry.ID.EQ(sqlite.Int(id))).
		LIMIT(1)

	err := stmt.QueryContext(ctx, s.db, entry)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get box office entry: %w", err)
	}

	return entry, nil
}

// ListBoxOfficeEntries lists the ranked entries of one reporting date
func (s *SQLite) ListBoxOfficeEntries(ctx context.Context, targetDate string) ([]*model.BoxOfficeEntry, error) {
	entries := make([]*model.BoxOfficeEntry, 0)
	stmt := table.BoxOfficeEntry.
		SELECT(table.BoxOfficeEntry.AllColumns).
		FROM(table.BoxOfficeEntry).
		WHERE(table.BoxOfficeEntry.TargetDate.EQ(sqlite.String(targetDate))).
		ORDER_BY(table.BoxOfficeEntry.Rank.ASC())

	err := stmt.QueryContext(ctx, s.db, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to list box office entries: %w", err)
	}

	return entries, nil
}

// ListUnmappedBoxOfficeEntries lists every entry not yet reconciled against
// the catalog, oldest reporting date first.
func (s *SQLite) ListUnmappedBoxOfficeEntries(ctx context.Context) ([]*model.BoxOfficeEntry, error) {
	entries := make([]*model.BoxOfficeEntry, 0)
	stmt := table.BoxOfficeEntry.
		SELECT(table.BoxOfficeEntry.AllColumns).
		FROM(table.BoxOfficeEntry).
		WHERE(table.BoxOfficeEntry.MovieMetadataID.IS_NULL()).
		ORDER_BY(table.BoxOfficeEntry.TargetDate.ASC(), table.BoxOfficeEntry.Rank.ASC())

	err := stmt.QueryContext(ctx, s.db, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to list unmapped box office entries: %w", err)
	}

	return entries, nil
}

// LinkBoxOfficeMetadata closes the mapping for one entry. An entry maps at
// most once; linking an already-linked entry returns ErrAlreadyLinked.
func (s *SQLite) LinkBoxOfficeMetadata(ctx context.Context, entryID, metadataID int32) error {
	entry, err := s.GetBoxOfficeEntry(ctx, int64(entryID))
	if err != nil {
		return err
	}

	state := storage.BoxOfficeEntry{BoxOfficeEntry: *entry, State: storage.MappingStateOf(*entry)}
	if err := state.Machine().ToState(storage.MappingMapped); err != nil {
		return fmt.Errorf("%w: entry %d already references metadata %d", storage.ErrAlreadyLinked, entryID, *entry.MovieMetadataID)
	}

	stmt := table.BoxOfficeEntry.
		UPDATE(table.BoxOfficeEntry.MovieMetadataID).
		SET(sqlite.Int32(metadataID)).
		WHERE(
			table.BoxOfficeEntry.ID.EQ(sqlite.Int32(entryID)).
				AND(table.BoxOfficeEntry.MovieMetadataID.IS_NULL()),
		)

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to link box office entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// lost the race between the state check and the update
		return storage.ErrAlreadyLinked
	}

	return nil
}
