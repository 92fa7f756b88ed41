// Package config defines the data structures related to configuration and
// includes functions for loading and defaulting the config.
package config

import (
	"fmt"
	"os"

	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the loan payment tracker.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Files   FilesConfig   `yaml:"files,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// FilesConfig holds the locations of the flat files the tracker maintains.
type FilesConfig struct {
	LedgerFile  string `yaml:"ledgerFile,omitempty"`
	ReceiptsDir string `yaml:"receiptsDir,omitempty"`
}

// LoadConfiguration loads the YAML-formatted configuration at the given
// path. An empty path or a missing file yields the defaults; the tracker is
// fully usable without a config file.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			viper.SetConfigFile(configPath)
			viper.AutomaticEnv()

			viper.SetConfigType("yml")

			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}

			if err := viper.Unmarshal(&configuration); err != nil {
				return nil, fmt.Errorf("unable to decode into struct, %s", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error checking config file, %s", err)
		}
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Files.LedgerFile == "" {
		conf.Files.LedgerFile = constants.DefaultLedgerFile
	}
	if conf.Files.ReceiptsDir == "" {
		conf.Files.ReceiptsDir = constants.DefaultReceiptsDir
	}
}
