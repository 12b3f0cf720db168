package db

import (
	"log"

	"github.com/memocash/tweetparse/db"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists archived statuses in id order",
	Run: func(c *cobra.Command, args []string) {
		defer db.Close()
		start, _ := c.Flags().GetUint64(FlagStart)
		max, _ := c.Flags().GetInt(FlagMax)
		archived, err := db.GetTweets(start, max)
		if err != nil {
			log.Fatalf("error getting archived tweets; %v", err)
		}
		for _, item := range archived {
			tweet, err := item.Parse()
			if err != nil {
				log.Fatalf("error parsing archived tweet; %v", err)
			}
			log.Printf("%d %s: %s\n", tweet.ID, tweet.Permalink(), tweet.FullText())
		}
		log.Printf("listed %d tweets\n", len(archived))
	},
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Prints the archived status with the highest id",
	Run: func(c *cobra.Command, args []string) {
		defer db.Close()
		tweet, err := db.GetLatestTweet()
		if err != nil {
			log.Fatalf("error getting latest tweet; %v", err)
		}
		log.Printf("%d %s %s: %s\n", tweet.ID, tweet.CreatedAt, tweet.Permalink(), tweet.FullText())
	},
}
