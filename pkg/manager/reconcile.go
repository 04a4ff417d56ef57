package manager

import (
	"context"
	"errors"
	"sync"

	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/storage"
	"go.uber.org/zap"
)

// ReconcileBoxOffice closes the gap between stored box office entries and the
// catalog. Unmapped entries are matched against the provider; entries the
// catalog already knows are linked immediately, new ones are collected with a
// bounded worker pool, persisted, and then linked.
func (m MediaManager) ReconcileBoxOffice(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	results, err := m.MatchUnmapped(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		log.Debug("no unmapped box office entries")
		return nil
	}

	var unmatched int
	var collectIDs []int
	pendingLinks := make(map[int32][]int32)

	for _, result := range results {
		switch result.Class {
		case MatchExisting:
			if err := m.linkEntry(ctx, result.Entry.ID, result.MetadataID); err != nil {
				return err
			}
		case MatchNew:
			if len(pendingLinks[result.TmdbID]) == 0 {
				collectIDs = append(collectIDs, int(result.TmdbID))
			}
			pendingLinks[result.TmdbID] = append(pendingLinks[result.TmdbID], result.Entry.ID)
		case MatchUnmatched:
			unmatched++
		}
	}

	if len(collectIDs) == 0 {
		log.Info("reconciliation complete, nothing to collect",
			zap.Int("unmatched", unmatched))
		return nil
	}

	graphs := m.collectAll(ctx, collectIDs)
	if err := ctx.Err(); err != nil {
		return err
	}

	ids, err := m.persistGraphs(ctx, graphs)
	if err != nil {
		return err
	}

	var linked int
	for tmdbID, metadataID := range ids {
		for _, entryID := range pendingLinks[tmdbID] {
			if err := m.linkEntry(ctx, entryID, metadataID); err != nil {
				return err
			}
			linked++
		}
	}

	log.Info("reconciliation complete",
		zap.Int("collected", len(graphs)),
		zap.Int("linked", linked),
		zap.Int("unmatched", unmatched))

	return nil
}

func (m MediaManager) linkEntry(ctx context.Context, entryID, metadataID int32) error {
	err := m.storage.LinkBoxOfficeMetadata(ctx, entryID, metadataID)
	if errors.Is(err, storage.ErrAlreadyLinked) {
		// loud by contract, a second link is a pipeline bug
		logger.FromCtx(ctx).Error("box office entry already linked",
			zap.Int32("entry_id", entryID),
			zap.Int32("metadata_id", metadataID),
			zap.Error(err))
		return err
	}
	return err
}

// collectAll runs the collector over the given provider ids with a bounded
// worker pool. A record that fails to collect is logged and dropped; the
// remaining records still come back.
func (m MediaManager) collectAll(ctx context.Context, tmdbIDs []int) []*TransferGraph {
	log := logger.FromCtx(ctx)

	var mu sync.Mutex
	graphs := make([]*TransferGraph, 0, len(tmdbIDs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, m.config.Workers)

	for _, tmdbID := range tmdbIDs {
		if err := ctx.Err(); err != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(tmdbID int) {
			defer wg.Done()
			defer func() { <-sem }()

			graph, err := m.CollectMovie(ctx, tmdbID)
			if err != nil {
				log.Warn("failed to collect movie",
					zap.Int("tmdb_id", tmdbID),
					zap.Error(err))
				return
			}

			mu.Lock()
			graphs = append(graphs, graph)
			mu.Unlock()
		}(tmdbID)
	}
	wg.Wait()

	return graphs
}
