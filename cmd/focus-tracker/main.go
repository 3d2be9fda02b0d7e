package main

import (
	"os"

	"github.com/sanyam-singhal/focus-tracker-lite/app"
	"github.com/sanyam-singhal/focus-tracker-lite/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
