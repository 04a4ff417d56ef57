package cmd

import (
	"context"
	"net/url"

	"github.com/jshim/cinesync/config"
	cinehttp "github.com/jshim/cinesync/pkg/http"
	"github.com/jshim/cinesync/pkg/kobis"
	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/manager"
	"github.com/jshim/cinesync/pkg/storage/sqlite"
	"github.com/jshim/cinesync/pkg/tmdb"
	"github.com/jshim/cinesync/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the catalog server",
	Long:  `start the catalog server and its background jobs`,
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
		scheduler := manager.NewScheduler(store, cfg.Manager, manager.Executors(m))
		go func() {
			if err := scheduler.Run(ctx); err != nil {
				log.Error("scheduler stopped", zap.Error(err))
			}
		}()

		srv := server.New(log, m, scheduler)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

// newProviderClients wires both provider clients from configuration, sharing
// the retry and backoff knobs with the rate limited transport.
func newProviderClients(cfg config.Config) (tmdb.ITmdb, kobis.IBoxOffice) {
	tmdbURL := url.URL{
		Scheme: cfg.TMDB.Scheme,
		Host:   cfg.TMDB.Host,
	}

	tmdbOpts := []cinehttp.ClientOption{}
	if cfg.TMDB.MaxRetries > 0 {
		tmdbOpts = append(tmdbOpts, cinehttp.WithMaxRetries(cfg.TMDB.MaxRetries))
	}
	if cfg.TMDB.BaseBackoff > 0 {
		tmdbOpts = append(tmdbOpts, cinehttp.WithBaseBackoff(cfg.TMDB.BaseBackoff))
	}

	kobisURL := url.URL{
		Scheme: cfg.KOBIS.Scheme,
		Host:   cfg.KOBIS.Host,
	}

	kobisOpts := []cinehttp.ClientOption{}
	if cfg.KOBIS.MaxRetries > 0 {
		kobisOpts = append(kobisOpts, cinehttp.WithMaxRetries(cfg.KOBIS.MaxRetries))
	}
	if cfg.KOBIS.BaseBackoff > 0 {
		kobisOpts = append(kobisOpts, cinehttp.WithBaseBackoff(cfg.KOBIS.BaseBackoff))
	}

	tmdbClient := tmdb.New(tmdbURL.String(), cfg.TMDB.APIKey,
		tmdb.WithHTTPClient(cinehttp.NewRateLimitedHTTPClient(tmdbOpts...)))
	kobisClient := kobis.New(kobisURL.String(), cfg.KOBIS.APIKey,
		kobis.WithHTTPClient(cinehttp.NewRateLimitedHTTPClient(kobisOpts...)))

	return tmdbClient, kobisClient
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
