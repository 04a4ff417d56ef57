package cmd

import (
	"context"
	"time"

	"github.com/jshim/cinesync/config"
	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/manager"
	"github.com/jshim/cinesync/pkg/storage/sqlite"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runDate string

// runCmd runs one pipeline stage to completion without the server
var runCmd = &cobra.Command{
	Use:       "run [stage]",
	Short:     "run a pipeline stage once",
	Long:      `run one pipeline stage to completion: boxoffice, reconcile, catalog, or all`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"boxoffice", "reconcile", "catalog", "all"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		tmdbClient, kobisClient := newProviderClients(cfg)

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ctx = logger.WithCtx(ctx, log)

		err = store.Init(ctx)
		if err != nil {
			log.Fatal("failed to init database", zap.Error(err))
		}

		m := manager.New(tmdbClient, kobisClient, store, cfg.Manager)

		date := runDate
		if date == "" {
			date = manager.YesterdayTargetDate(time.Now())
		}

		stage := args[0]
		if stage == "boxoffice" || stage == "all" {
			if err := m.IngestBoxOffice(ctx, date); err != nil {
				log.Fatal("box office ingestion failed", zap.Error(err))
			}
		}
		if stage == "reconcile" || stage == "all" {
			if err := m.ReconcileBoxOffice(ctx); err != nil {
				log.Fatal("box office reconciliation failed", zap.Error(err))
			}
		}
		if stage == "catalog" || stage == "all" {
			if err := m.RefreshCatalog(ctx); err != nil {
				log.Fatal("catalog refresh failed", zap.Error(err))
			}
		}
	},
}

func init() {
	runCmd.Flags().StringVar(&runDate, "date", "", "reporting date as yyyyMMdd, defaults to yesterday")
	rootCmd.AddCommand(runCmd)
}
