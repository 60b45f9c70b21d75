/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: CLI command for manifest analysis. Accepts either an APK path
(runs aapt for the dumps) or pre-captured xmltree/badging text files, runs the
analysis pipeline, and writes the JSON report.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kleascm/apkscope/pkg/apk"
	"github.com/kleascm/apkscope/pkg/manifest"
	"github.com/kleascm/apkscope/pkg/report"
	"github.com/kleascm/apkscope/pkg/security"
	"github.com/spf13/cobra"
)

var (
	analyzeAPK     string
	analyzeXMLTree string
	analyzeBadging string
	analyzeOutput  string
	analyzeAapt    string
)

func init() {
	AnalyzeCmd.Flags().StringVar(&analyzeAPK, "apk", "", "Path to APK file (invokes aapt)")
	AnalyzeCmd.Flags().StringVar(&analyzeXMLTree, "xmltree", "", "Path to pre-captured aapt xmltree dump")
	AnalyzeCmd.Flags().StringVar(&analyzeBadging, "badging", "", "Path to pre-captured aapt badging dump (optional)")
	AnalyzeCmd.Flags().StringVar(&analyzeOutput, "output", "./reports", "Directory for JSON reports")
	AnalyzeCmd.Flags().StringVar(&analyzeAapt, "aapt", "", "Path to aapt binary (default: aapt on PATH)")
}

// AnalyzeCmd reconstructs and triages a manifest from an APK or dump text
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an APK manifest for security issues",
	Long: `Analyze reconstructs the AndroidManifest model from aapt dump output and
evaluates the security rule set. Give it an APK to run aapt directly, or point it at
pre-captured xmltree (and optionally badging) dump files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeAPK == "" && analyzeXMLTree == "" {
			return fmt.Errorf("either --apk or --xmltree is required")
		}

		if err := LoadConfig(); err != nil {
			return err
		}
		logger, err := SetupLogging()
		if err != nil {
			return err
		}
		defer logger.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c
			cancel()
		}()

		parser := manifest.NewParser(security.ClassifyPermission)
		merger := manifest.NewBadgingMerger()
		analyzer := security.NewAnalyzer()

		var doc *manifest.Document
		if analyzeAPK != "" {
			runner := apk.NewAaptRunner(analyzeAapt, logger.Logrus())
			if err := runner.Check(); err != nil {
				return err
			}
			pipeline := apk.NewPipeline(parser, merger, analyzer, runner, logger.Logrus())
			doc, err = pipeline.Run(ctx, analyzeAPK)
			if err != nil {
				return err
			}
		} else {
			xmltree, err := os.ReadFile(analyzeXMLTree)
			if err != nil {
				return fmt.Errorf("failed to read xmltree dump: %w", err)
			}
			badging := ""
			if analyzeBadging != "" {
				data, err := os.ReadFile(analyzeBadging)
				if err != nil {
					return fmt.Errorf("failed to read badging dump: %w", err)
				}
				badging = string(data)
			}
			pipeline := apk.NewPipeline(parser, merger, analyzer, nil, logger.Logrus())
			doc = pipeline.RunOnText(string(xmltree), badging)
		}

		rep := report.New(doc)
		rep.LogSummary(logger.Logrus())

		path, err := rep.Write(analyzeOutput)
		if err != nil {
			return err
		}
		logger.Logrus().WithField("path", path).Info("report written")
		return nil
	},
}
