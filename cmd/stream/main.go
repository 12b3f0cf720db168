package stream

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/jchavannes/jgo/jerr"
	"github.com/memocash/tweetparse/config"
	"github.com/memocash/tweetparse/tweets"
	"github.com/spf13/cobra"
)

const (
	FlagSummary   = "summary"
	FlagEncode    = "encode"
	FlagGoTwitter = "go-twitter"
)

func GetParseCommand() *cobra.Command {
	parseCmd.Flags().BoolP(FlagSummary, "s", false, "print summary text")
	parseCmd.Flags().BoolP(FlagEncode, "e", false, "print re-encoded json")
	parseCmd.Flags().BoolP(FlagGoTwitter, "g", false, "print go-twitter rendition")
	return parseCmd
}

func GetArchiveCommand() *cobra.Command {
	return archiveCmd
}

// openInput reads from the named file, or stdin for "-" or no argument.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, jerr.Get("error opening stream input", err)
	}
	return f, nil
}

func run(args []string, handler tweets.Handler) error {
	input, err := openInput(args)
	if err != nil {
		return err
	}
	defer input.Close()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	conf := config.GetConfig()
	stream := tweets.NewStream(input, handler)
	stream.StopOnError = conf.StopOnError
	stream.Verbose = conf.Verbose
	if err := stream.Run(ctx); err != nil {
		return jerr.Get("error running stream", err)
	}
	return nil
}
