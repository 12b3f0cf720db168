package db

import (
	"log"

	"github.com/memocash/tweetparse/db"
	"github.com/spf13/cobra"
)

var hashtagCmd = &cobra.Command{
	Use:   "hashtag [tag]",
	Short: "Lists archived statuses carrying a hashtag",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		defer db.Close()
		ids, err := db.GetHashtagTweetIds(args[0])
		if err != nil {
			log.Fatalf("error getting hashtag tweets; %v", err)
		}
		for _, id := range ids {
			tweet, err := db.GetTweet(id)
			if err != nil {
				log.Fatalf("error getting archived tweet %d; %v", id, err)
			}
			log.Printf("%d %s: %s\n", tweet.ID, tweet.Permalink(), tweet.FullText())
		}
		log.Printf("found %d tweets for #%s\n", len(ids), args[0])
	},
}
