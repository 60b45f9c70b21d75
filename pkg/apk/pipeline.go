/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline.go
Description: Analysis pipeline for APKScope. Wires the tool runner, tree
parser, badging merger, export inference, and security analyzer into the
fixed one-directional flow: dump text -> document -> enriched document.
*/

package apk

import (
	"context"
	"fmt"

	"github.com/kleascm/apkscope/pkg/interfaces"
	"github.com/kleascm/apkscope/pkg/manifest"
	"github.com/sirupsen/logrus"
)

// Pipeline runs the full manifest analysis flow. Each Run is independent and
// stateless across calls; a Pipeline may serve concurrent analyses of
// different inputs.
type Pipeline struct {
	parser   interfaces.ManifestParser
	merger   interfaces.BadgingMerger
	analyzer interfaces.SecurityAnalyzer
	runner   interfaces.ToolRunner
	logger   *logrus.Logger
}

// NewPipeline wires the pipeline components. The runner may be nil when the
// caller supplies pre-captured dump text via RunOnText.
func NewPipeline(parser interfaces.ManifestParser, merger interfaces.BadgingMerger, analyzer interfaces.SecurityAnalyzer, runner interfaces.ToolRunner, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.New()
	}
	return &Pipeline{parser: parser, merger: merger, analyzer: analyzer, runner: runner, logger: logger}
}

// Run dumps the APK's manifest through the tool runner and analyzes it. The
// badging dump is best-effort: its absence degrades to a plain xmltree parse.
func (p *Pipeline) Run(ctx context.Context, apkPath string) (*manifest.Document, error) {
	if p.runner == nil {
		return nil, fmt.Errorf("pipeline has no tool runner configured")
	}

	xmltree, err := p.runner.DumpXMLTree(ctx, apkPath)
	if err != nil {
		return nil, fmt.Errorf("manifest dump failed: %w", err)
	}

	badging, err := p.runner.DumpBadging(ctx, apkPath)
	if err != nil {
		p.logger.WithError(err).Warn("badging dump unavailable, continuing without back-fill")
		badging = ""
	}

	return p.RunOnText(xmltree, badging), nil
}

// RunOnText analyzes pre-captured dump text. Content-level badness never
// fails: garbage input produces a valid document with defaults and whatever
// findings the defaults imply.
func (p *Pipeline) RunOnText(xmltreeText, badgingText string) *manifest.Document {
	doc := p.parser.Parse(xmltreeText)

	if doc.DroppedComponents > 0 {
		p.logger.WithField("dropped", doc.DroppedComponents).Debug("components without a resolved name were discarded")
	}

	if badgingText != "" && p.merger != nil {
		p.merger.Merge(doc, badgingText)
	}
	manifest.InferImplicitExport(doc)

	doc.SecurityIssues = append(doc.SecurityIssues, p.analyzer.Analyze(doc)...)

	p.logger.WithFields(logrus.Fields{
		"package":    doc.PackageName,
		"activities": len(doc.Activities),
		"services":   len(doc.Services),
		"receivers":  len(doc.Receivers),
		"providers":  len(doc.Providers),
		"findings":   len(doc.SecurityIssues),
	}).Info("manifest analysis complete")

	return doc
}
