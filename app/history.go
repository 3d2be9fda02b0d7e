package app

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/sanyam-singhal/focus-tracker-lite/internal/config"
	"github.com/sanyam-singhal/focus-tracker-lite/internal/models"
	"github.com/sanyam-singhal/focus-tracker-lite/internal/ui"
	"github.com/sanyam-singhal/focus-tracker-lite/store"
)

const noSessionsMsg = "No completed sessions yet"

func historyAction(ctx *cli.Context) error {
	limit := ctx.Int("last")
	if limit <= 0 {
		limit = lastFlag.Value
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	records, err := db.Recent(limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printHistoryTable(os.Stdout, records)

	return nil
}

// printHistoryTable prints recent sessions to the command-line, most recent
// first.
func printHistoryTable(w io.Writer, records []models.SessionRecord) {
	tableBody := make([][]string, len(records))

	for i := range records {
		rec := records[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", rec.ID),
			rec.StartTime.Format("Jan 02, 2006 03:04 PM"),
			fmt.Sprintf("%d min", rec.DurationMinutes),
			rec.Tag,
			rec.Notes,
		}
	}

	tableBody = append([][]string{
		{"#", "START DATE", "DURATION", "TAG", "NOTES"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}
