package db

import (
	"fmt"
	"log"
	"strconv"

	"github.com/memocash/tweetparse/db"
	"github.com/memocash/tweetparse/tweets/obj"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Prints an archived status",
	Args:  cobra.ExactArgs(1),
	Run: func(c *cobra.Command, args []string) {
		defer db.Close()
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			log.Fatalf("error parsing tweet id; %v", err)
		}
		tweet, err := db.GetTweet(id)
		if err != nil {
			log.Fatalf("error getting archived tweet; %v", err)
		}
		data, err := obj.Encode(tweet)
		if err != nil {
			log.Fatalf("error encoding tweet; %v", err)
		}
		fmt.Printf("%s\n", data)
	},
}
