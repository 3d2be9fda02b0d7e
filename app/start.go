package app

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/sanyam-singhal/focus-tracker-lite/internal/config"
	"github.com/sanyam-singhal/focus-tracker-lite/internal/timeutil"
	"github.com/sanyam-singhal/focus-tracker-lite/internal/ui"
	"github.com/sanyam-singhal/focus-tracker-lite/notify"
	"github.com/sanyam-singhal/focus-tracker-lite/report"
	"github.com/sanyam-singhal/focus-tracker-lite/session"
	"github.com/sanyam-singhal/focus-tracker-lite/store"
)

func startAction(ctx *cli.Context) error {
	cfg, err := config.New(config.WithViperConfig(config.ConfigFilePath()))
	if err != nil {
		return err
	}

	if sound := ctx.String("sound"); sound != "" {
		cfg.Sound = sound
	}

	// an omitted duration falls back to the configured default; an
	// explicit value is passed through unchanged so the controller can
	// reject it
	minutes := cfg.DefaultMinutes

	if arg := ctx.Args().First(); arg != "" {
		minutes, err = strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid duration %q: expected a number of minutes", arg)
		}
	}

	tag := ctx.String("tag")
	if tag == "" {
		tag = cfg.DefaultTag
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	notifier := &notify.Alert{
		SoundPath: cfg.Sound,
		Desktop:   cfg.Notify,
	}

	ctrl := session.New(db, notifier, cfg)

	err = ctrl.Start(minutes, tag)
	if err != nil {
		return err
	}

	printSessionBanner(minutes, tag)

	return runSession(ctrl)
}

// printSessionBanner announces the new session and its expected end time.
func printSessionBanner(minutes int, tag string) {
	end := time.Now().Add(time.Duration(minutes) * time.Minute)

	var tagInfo string
	if tag != "" {
		tagInfo = " [tag: " + tag + "]"
	}

	pterm.Printfln(
		"%s focus session started%s (until %s)",
		ui.Green(fmt.Sprintf("%d-minute", minutes)),
		tagInfo,
		ui.Highlight(end.Format("03:04:05 PM")),
	)
}

// runSession redraws the countdown once per second until the timer expires
// or the user interrupts with Ctrl-C.
func runSession(ctrl *session.Controller) error {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	fmt.Fprint(os.Stdout, "\033[s")

	drawCountdown(ctrl.Remaining())

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fmt.Fprint(os.Stdout, "\033[u\033[K")
			drawCountdown(ctrl.Remaining())
		case <-sig:
			// a cancel may race a just-fired expiry; if it lost,
			// keep going and let the expiry path finish
			if err := ctrl.Cancel(); err == nil {
				pterm.Println()
				pterm.Info.Println("Session cancelled")

				return nil
			}
		case <-ctrl.Expired():
			fmt.Fprint(os.Stdout, "\033[u\033[K")
			pterm.Printfln("%s", ui.Green("Session completed!"))

			return collectNote(ctrl)
		}
	}
}

// drawCountdown prints the remaining time on the current line.
func drawCountdown(left time.Duration) {
	mins, secs := timeutil.MinSec(left)

	fmt.Fprintf(
		os.Stdout,
		"\r🕒%s:%s",
		pterm.Yellow(fmt.Sprintf("%02d", mins)),
		pterm.Yellow(fmt.Sprintf("%02d", secs)),
	)
}

// collectNote prompts for the session note and retries persistence on
// storage failures so the entered note is never lost.
func collectNote(ctrl *session.Controller) error {
	var note string

	input := huh.NewInput().
		Title("What did you get done?").
		Value(&note)

	if err := input.Run(); err != nil {
		return err
	}

	for {
		_, err := ctrl.SubmitNote(note)
		if err == nil {
			report.SessionSaved()
			return nil
		}

		if !errors.Is(err, store.ErrStorage) {
			return err
		}

		report.Error(err)

		var retry bool

		confirm := huh.NewConfirm().
			Title("Saving the session failed. Try again?").
			Affirmative("Retry").
			Negative("Discard").
			Value(&retry)

		if cerr := confirm.Run(); cerr != nil || !retry {
			return err
		}
	}
}
