package cmd

import (
	"github.com/jchavannes/jgo/jerr"
	"github.com/memocash/tweetparse/cmd/db"
	"github.com/memocash/tweetparse/cmd/stream"
	"github.com/memocash/tweetparse/config"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "tweetparse",
	Short: "Twitter stream JSON -> typed statuses",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.InitConfig(); err != nil {
			jerr.Get("error initializing config", err).Fatal()
		}
	},
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() error {
	parseCmd.AddCommand(
		stream.GetParseCommand(),
		stream.GetArchiveCommand(),
		db.GetCommand(),
	)
	if err := parseCmd.Execute(); err != nil {
		return jerr.Get("error executing tweetparse command", err)
	}
	return nil
}
