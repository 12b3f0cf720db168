package stream

import (
	"context"
	"time"

	"github.com/jchavannes/jgo/jerr"
	"github.com/jchavannes/jgo/jlog"
	"github.com/memocash/tweetparse/db"
	"github.com/memocash/tweetparse/tweets/obj"
	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [file]",
	Short: "Stores decoded statuses and limit notices in the archive",
	Args:  cobra.MaximumNArgs(1),
	Run: func(c *cobra.Command, args []string) {
		defer db.Close()
		var tweetCount, limitCount int64
		handler := archiveHandler{
			tweet: func(tweet *obj.Tweet) error {
				tweetCount++
				return db.ArchiveTweet(tweet)
			},
			limit: func(limit *obj.Limit) error {
				limitCount++
				return db.ArchiveLimit(limit, time.Now())
			},
		}
		if err := run(args, handler); err != nil {
			jerr.Get("error archiving stream", err).Fatal()
		}
		jlog.Logf("archived %d tweets, %d limit notices\n", tweetCount, limitCount)
	},
}

type archiveHandler struct {
	tweet func(*obj.Tweet) error
	limit func(*obj.Limit) error
}

func (a archiveHandler) OnTweet(_ context.Context, tweet *obj.Tweet) error {
	return a.tweet(tweet)
}

func (a archiveHandler) OnLimit(_ context.Context, limit *obj.Limit) error {
	return a.limit(limit)
}
