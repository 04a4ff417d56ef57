package manager

import (
	"context"
	"errors"
	"strings"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jshim/cinesync/config"
	"github.com/jshim/cinesync/pkg/kobis"
	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/storage"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/table"
	"github.com/jshim/cinesync/pkg/tmdb"
	"go.uber.org/zap"
)

type MediaManager struct {
	tmdb    tmdb.ITmdb
	kobis   kobis.IBoxOffice
	storage storage.Storage
	config  config.Manager
}

func New(tmdbClient tmdb.ITmdb, kobisClient kobis.IBoxOffice, storage storage.Storage, config config.Manager) MediaManager {
	if config.Workers <= 0 {
		config.Workers = DefaultWorkers
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.Region == "" {
		config.Region = DefaultRegion
	}
	if config.Language == "" {
		config.Language = DefaultLanguage
	}
	return MediaManager{
		tmdb:    tmdbClient,
		kobis:   kobisClient,
		storage: storage,
		config:  config,
	}
}

// SearchMovie queries the catalog provider for a movie
func (m MediaManager) SearchMovie(ctx context.Context, query string) (*tmdb.SearchResponse, error) {
	log := logger.FromCtx(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		log.Debug("search movie query is empty")
		return nil, errors.New("query is empty")
	}

	res, err := m.tmdb.SearchMovie(ctx, query)
	if err != nil {
		log.Error("search movie failed request", zap.Error(err))
		return nil, err
	}

	return res, nil
}

// GetMovieMetadata fetches one stored catalog record by provider id
func (m MediaManager) GetMovieMetadata(ctx context.Context, tmdbID int) (*model.MovieMetadata, error) {
	return m.storage.GetMovieMetadata(ctx, table.MovieMetadata.TmdbID.EQ(sqlite.Int(int64(tmdbID))))
}

// ListMovieMetadata lists stored catalog records, live ones only
func (m MediaManager) ListMovieMetadata(ctx context.Context) ([]*model.MovieMetadata, error) {
	return m.storage.ListMovieMetadata(ctx, table.MovieMetadata.DeletedAt.IS_NULL())
}

// DeleteMovie retires a stored catalog record. The row is soft-deleted so
// historical box office mappings keep resolving.
func (m MediaManager) DeleteMovie(ctx context.Context, id int32) error {
	meta, err := m.storage.GetMovieMetadata(ctx, table.MovieMetadata.ID.EQ(sqlite.Int32(id)))
	if err != nil {
		return err
	}

	return m.storage.SoftDeleteMovieMetadata(ctx, meta.ID)
}

// ListBoxOfficeEntries lists the stored snapshot for one target date
func (m MediaManager) ListBoxOfficeEntries(ctx context.Context, targetDate string) ([]*model.BoxOfficeEntry, error) {
	return m.storage.ListBoxOfficeEntries(ctx, targetDate)
}
