package db

import (
	"log"

	"github.com/memocash/tweetparse/db"
	"github.com/spf13/cobra"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Lists archived limit notices",
	Run: func(c *cobra.Command, args []string) {
		defer db.Close()
		limits, err := db.GetLimits(0)
		if err != nil {
			log.Fatalf("error getting limit notices; %v", err)
		}
		for _, limit := range limits {
			ts, _ := limit.Limit.Time()
			log.Printf("limit: %d undelivered at %s\n", limit.Limit.Track, ts)
		}
	},
}
