package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keySound          = "settings.sound"
	keyNotify         = "settings.notify"
	keySessionCmd     = "settings.cmd"
	keyDefaultMinutes = "defaults.duration"
	keyDefaultTag     = "defaults.tag"
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing a default config file on first run.
func WithViperConfig(configPath string) Option {
	return func(c *TimerConfig) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keySound, "alarm.wav")
	v.SetDefault(keyNotify, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDefaultMinutes, 25)
	v.SetDefault(keyDefaultTag, "")
}

// loadViperConfig loads configuration from Viper into the TimerConfig.
func loadViperConfig(v *viper.Viper, c *TimerConfig) error {
	c.Sound = v.GetString(keySound)
	c.Notify = v.GetBool(keyNotify)
	c.SessionCmd = v.GetString(keySessionCmd)
	c.DefaultMinutes = v.GetInt(keyDefaultMinutes)
	c.DefaultTag = v.GetString(keyDefaultTag)

	return nil
}
