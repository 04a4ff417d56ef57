package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/jshim/cinesync/pkg/kobis"
	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

// IngestBoxOffice pulls one day's ranked report and stores it as an immutable
// snapshot. A repeated pull for the same date inserts nothing.
func (m MediaManager) IngestBoxOffice(ctx context.Context, targetDate string) error {
	log := logger.FromCtx(ctx).With(zap.String("target_date", targetDate))

	if _, err := time.Parse(kobis.TargetDateFormat, targetDate); err != nil {
		return fmt.Errorf("invalid target date %q: %w", targetDate, err)
	}

	report, err := m.kobis.DailyBoxOffice(ctx, targetDate)
	if err != nil {
		return fmt.Errorf("daily box office fetch: %w", err)
	}

	if len(report.Entries) == 0 {
		log.Warn("daily box office report is empty")
		return nil
	}

	entries := make([]model.BoxOfficeEntry, 0, len(report.Entries))
	for _, e := range report.Entries {
		entries = append(entries, model.BoxOfficeEntry{
			MovieCode:     e.MovieCode,
			Title:         e.Name,
			TargetDate:    targetDate,
			Rank:          e.Rank,
			RankChange:    e.RankChange,
			NewEntry:      e.NewEntry,
			AudienceCount: e.AudienceCount,
			AudienceTotal: e.AudienceTotal,
			ScreenCount:   e.ScreenCount,
			ShowCount:     e.ShowCount,
		})
	}

	inserted, err := m.storage.UpsertBoxOfficeEntries(ctx, entries)
	if err != nil {
		return fmt.Errorf("box office snapshot insert: %w", err)
	}

	log.Info("ingested daily box office",
		zap.Int("reported", len(entries)),
		zap.Int64("inserted", inserted))

	return nil
}

// YesterdayTargetDate is the default pull target, the most recent day the
// reporting service has finalized
func YesterdayTargetDate(now time.Time) string {
	return now.AddDate(0, 0, -1).Format(kobis.TargetDateFormat)
}
