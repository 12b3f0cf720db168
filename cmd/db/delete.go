package db

import (
	"log"
	"strconv"

	"github.com/memocash/tweetparse/db"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Removes an archived status and its hashtag index entries",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		defer db.Close()
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			log.Fatalf("error parsing tweet id; %v", err)
		}
		if err := db.DeleteTweet(id); err != nil {
			log.Fatalf("error deleting tweet; %v", err)
		}
		log.Printf("deleted tweet %d\n", id)
	},
}
