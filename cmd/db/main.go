package db

import "github.com/spf13/cobra"

const (
	FlagStart = "start"
	FlagMax   = "max"
)

var dbCmd = &cobra.Command{
	Use: "db",
}

func GetCommand() *cobra.Command {
	listCmd.Flags().Uint64P(FlagStart, "s", 0, "first tweet id")
	listCmd.Flags().IntP(FlagMax, "m", 100, "max tweets, 0 for all")
	dbCmd.AddCommand(
		showCmd,
		listCmd,
		latestCmd,
		deleteCmd,
		hashtagCmd,
		limitsCmd,
	)
	return dbCmd
}
