package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jchavannes/jgo/jerr"
	"github.com/memocash/tweetparse/config"
	"github.com/memocash/tweetparse/tweets"
	"github.com/memocash/tweetparse/tweets/obj"
	"github.com/memocash/tweetparse/tweets/summary"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Decodes newline delimited stream messages",
	Long:  "Prints each status with its derived views. Reads stdin without a file.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(c *cobra.Command, args []string) {
		showSummary, _ := c.Flags().GetBool(FlagSummary)
		encode, _ := c.Flags().GetBool(FlagEncode)
		goTwitter, _ := c.Flags().GetBool(FlagGoTwitter)
		summaryConf := config.GetSummaryConfig()
		handler := tweets.HandlerFuncs{
			Tweet: func(_ context.Context, tweet *obj.Tweet) error {
				fmt.Printf("tweet %d %s\n", tweet.ID, tweet.Permalink())
				fmt.Printf("  text: %s\n", tweet.FullText())
				if hashtags := tweet.Hashtags(); len(hashtags) > 0 {
					fmt.Printf("  hashtags: %s\n", strings.Join(hashtags, ", "))
				}
				for _, url := range tweet.MediaURLs() {
					fmt.Printf("  media: %s\n", url)
				}
				if tweet.IsRetweet() {
					fmt.Printf("  retweet of: %d\n", tweet.BaseID())
				}
				if showSummary {
					text := summary.FromTweet(tweet, summary.Flags{
						Link:  summaryConf.Link,
						Date:  summaryConf.Date,
						Media: summaryConf.Media,
					})
					fmt.Printf("  summary:\n%s\n", text.Gen(summaryConf.Size))
				}
				if encode {
					data, err := obj.Encode(tweet)
					if err != nil {
						return jerr.Get("error encoding tweet", err)
					}
					fmt.Printf("  encoded: %s\n", data)
				}
				if goTwitter {
					data, err := json.MarshalIndent(tweets.GoTwitter(tweet), "  ", "  ")
					if err != nil {
						return jerr.Get("error marshalling go-twitter tweet", err)
					}
					fmt.Printf("  go-twitter: %s\n", data)
				}
				return nil
			},
			Limit: func(_ context.Context, limit *obj.Limit) error {
				if ts, ok := limit.Limit.Time(); ok {
					fmt.Printf("limit %d undelivered as of %s\n", limit.Limit.Track, ts)
				} else {
					fmt.Printf("limit %d undelivered\n", limit.Limit.Track)
				}
				return nil
			},
		}
		if err := run(args, handler); err != nil {
			jerr.Get("error parsing stream", err).Fatal()
		}
	},
}
