// Package report prints user-facing messages and maintains the log file
package report

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging routes slog output to a size-rotated log file in the data
// directory.
func InitLogging(path string) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))
}

// SessionSaved confirms that a completed session was persisted.
func SessionSaved() {
	pterm.Success.Println("Session saved. Keep it up!")
}

// Warn surfaces a non-fatal problem without interrupting the session flow.
func Warn(err error) {
	pterm.Warning.Println(err)
	slog.Warn(err.Error())
}

func Error(err error) {
	pterm.Error.Println(err)
	slog.Error(err.Error())
}

// Quit prints the error and terminates the process.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
