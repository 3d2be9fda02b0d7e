// Package app defines the command-line interface for focus-tracker
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/sanyam-singhal/focus-tracker-lite/internal/config"
	"github.com/sanyam-singhal/focus-tracker-lite/report"
)

// Get retrieves the focus-tracker app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focus-tracker",
		Usage: `
		focus-tracker runs a countdown for a focus session, rings an alarm when
		time is up, and keeps a journal of what you accomplished in each
		session.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Begin a focus session",
				UsageText: "start <minutes> [OPTIONS]",
				Flags: []cli.Flag{
					tagFlag,
					soundFlag,
				},
				Action: startAction,
			},
			{
				Name:    "history",
				Aliases: []string{"log"},
				Usage:   "Show recently completed sessions",
				Flags: []cli.Flag{
					lastFlag,
				},
				Action: historyAction,
			},
		},
		Before: beforeAction,
	}
}

func beforeAction(_ *cli.Context) error {
	config.InitializePaths()
	report.InitLogging(config.LogFilePath())

	return nil
}
