package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/jshim/cinesync/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var searchQuery string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search the catalog provider for a movie",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		tmdbClient, _ := newProviderClients(cfg)

		resp, err := tmdbClient.SearchMovie(context.TODO(), searchQuery)
		if err != nil {
			log.Fatalf("failed to search movies: %v", err)
		}

		if len(resp.Results) == 0 {
			log.Fatal("no results found")
		}

		for _, r := range resp.Results {
			fmt.Printf("%d\t%s (%s)\n", r.ID, r.Title, r.ReleaseDate)
		}
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "a query for movies")
	_ = searchCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(searchCmd)
}
