package manager

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

const defaultCatalogRefreshAge = 7 * 24 * time.Hour

// RefreshCatalog re-collects every live catalog record whose last update is
// older than the configured staleness window. Records whose provider payload
// has not changed are left untouched.
func (m MediaManager) RefreshCatalog(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	age := m.config.Jobs.CatalogRefreshAge
	if age <= 0 {
		age = defaultCatalogRefreshAge
	}
	cutoff := time.Now().Add(-age)

	stale, err := m.storage.ListMovieMetadata(ctx,
		table.MovieMetadata.DeletedAt.IS_NULL(),
		table.MovieMetadata.UpdatedAt.LT(sqlite.TimestampExp(sqlite.String(cutoff.Format(time.DateTime)))),
	)
	if err != nil {
		return err
	}

	if len(stale) == 0 {
		log.Debug("no stale catalog records")
		return nil
	}

	log.Info("refreshing stale catalog records", zap.Int("count", len(stale)))

	tmdbIDs := make([]int, 0, len(stale))
	for _, meta := range stale {
		tmdbIDs = append(tmdbIDs, int(meta.TmdbID))
	}

	graphs := m.collectAll(ctx, tmdbIDs)
	if len(graphs) == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return errors.New("no catalog records could be collected")
	}

	_, err = m.persistGraphs(ctx, graphs)
	return err
}
