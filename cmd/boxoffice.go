package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jshim/cinesync/config"
	"github.com/jshim/cinesync/pkg/manager"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var boxOfficeDate string

// boxOfficeCmd fetches one day's report straight from the provider and prints it
var boxOfficeCmd = &cobra.Command{
	Use:   "boxoffice",
	Short: "fetch a daily box office report",
	Long:  `fetch a daily box office report and print the ranking`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		_, kobisClient := newProviderClients(cfg)

		date := boxOfficeDate
		if date == "" {
			date = manager.YesterdayTargetDate(time.Now())
		}

		report, err := kobisClient.DailyBoxOffice(context.TODO(), date)
		if err != nil {
			log.Fatalf("failed to fetch box office report: %v", err)
		}

		fmt.Printf("%s (%s)\n", report.ShowRange, report.BoxOfficeType)
		for _, e := range report.Entries {
			marker := " "
			if e.NewEntry {
				marker = "*"
			}
			fmt.Printf("%2d%s %-40s audience %s total %s screens %s\n",
				e.Rank, marker, e.Name,
				humanize.Comma(e.AudienceCount),
				humanize.Comma(e.AudienceTotal),
				humanize.Comma(int64(e.ScreenCount)))
		}
	},
}

func init() {
	boxOfficeCmd.Flags().StringVar(&boxOfficeDate, "date", "", "reporting date as yyyyMMdd, defaults to yesterday")
	rootCmd.AddCommand(boxOfficeCmd)
}
