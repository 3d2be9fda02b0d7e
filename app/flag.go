package app

import "github.com/urfave/cli/v2"

var (
	tagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Label the session (e.g. deep-work)",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Audio file to play when the session ends (wav, mp3, flac, or ogg)",
	}

	lastFlag = &cli.IntFlag{
		Name:    "last",
		Aliases: []string{"n"},
		Usage:   "Show only the last `N` sessions",
		Value:   10,
	}
)
