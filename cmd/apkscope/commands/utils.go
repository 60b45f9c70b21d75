/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the APKScope commands. Provides common
configuration loading and logger construction used across command
implementations.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/apkscope/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from the config file and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("APKSCOPE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logger from the resolved configuration
func SetupLogging() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Colors:    !viper.GetBool("no_colors"),
	}
	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}
