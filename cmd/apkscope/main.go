/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for APKScope. Wires the root command with
configuration and logging flags, and registers the analyze command for running
manifest reconstruction and security triage.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/apkscope/cmd/apkscope/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile  string
	logLevel    string
	logFormat   string
	logDir      string
	logMaxFiles int
	noColors    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "apkscope",
		Short: "APKScope - Android manifest reconstruction and security triage",
		Long: `APKScope reconstructs a typed AndroidManifest model from the flattened
aapt xmltree dump, back-fills missing fields from the badging summary, and runs a
fixed security rule set over the result: debuggable and backup flags, unprotected
exported components, dangerous-permission pressure, and legacy SDK targets.`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().BoolVar(&noColors, "no-colors", false, "Disable colored log output")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("no_colors", rootCmd.PersistentFlags().Lookup("no-colors"))

	rootCmd.AddCommand(commands.AnalyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
