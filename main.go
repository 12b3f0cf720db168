package main

import (
	"github.com/jchavannes/jgo/jerr"
	"github.com/memocash/tweetparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		jerr.Get("error executing command", err).Fatal()
	}
}
