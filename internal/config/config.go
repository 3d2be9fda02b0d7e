// Package config handles the application configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

const Version = "v0.1.0"

type (
	// TimerConfig holds the settings consumed by the session controller
	// and the notifier.
	TimerConfig struct {
		// Sound is the path to the alarm sound file played on expiry.
		Sound string
		// SessionCmd is run after a completed session is saved.
		SessionCmd string
		// DefaultTag labels sessions started without an explicit tag.
		DefaultTag string
		// DefaultMinutes is the session length used when none is given.
		DefaultMinutes int
		// Notify controls the desktop notification on expiry.
		Notify bool
	}

	// Option is a function that modifies TimerConfig
	Option func(*TimerConfig) error
)

var (
	configDir      = "focus-tracker"
	configFileName = "config.yml"
	dbFileName     = "focus-tracker.db"
	logFileName    = "focus-tracker.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database, and log file locations.
// FOCUS_TRACKER_ENV suffixes the filenames so test runs never touch real
// data.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("FOCUS_TRACKER_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("focus-tracker_%s.db", env)
		logFileName = fmt.Sprintf("focus-tracker_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(
		filepath.Join(configDir, configFileName),
	)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a TimerConfig with default values and applies options.
func New(opts ...Option) (*TimerConfig, error) {
	cfg := &TimerConfig{
		Notify:         true,
		DefaultMinutes: 25,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}
