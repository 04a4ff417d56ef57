package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cinesync",
	Short: "cinesync cli",
	Long:  `cinesync cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

const (
	defaultJobTicker = time.Hour * 6
)

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("CINESYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")

	viper.SetDefault("kobis.scheme", "https")
	viper.SetDefault("kobis.host", "www.kobis.or.kr")
	viper.SetDefault("kobis.apiKey", "")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "cinesync.sqlite")

	viper.SetDefault("manager.workers", 4)
	viper.SetDefault("manager.batchSize", 25)
	viper.SetDefault("manager.region", "KR")
	viper.SetDefault("manager.language", "ko")

	viper.SetDefault("manager.jobs.boxOfficeIngest", defaultJobTicker)
	viper.SetDefault("manager.jobs.boxOfficeReconcile", defaultJobTicker)
	viper.SetDefault("manager.jobs.catalogRefresh", time.Hour*24)
	viper.SetDefault("manager.jobs.cleanupPeriod", time.Hour*24*7)
	viper.SetDefault("manager.jobs.minJobsToKeep", 10)
}
