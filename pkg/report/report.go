/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Report boundary for APKScope. Serializes an analyzed manifest
document as a JSON report with derived collection stats and a unique report
id, writes timestamped report files, and logs a terminal findings summary.
*/

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/apkscope/pkg/manifest"
	"github.com/sirupsen/logrus"
)

// Stats holds the derived per-collection counts for the report consumer
type Stats struct {
	Permissions int `json:"permissions"`
	Activities  int `json:"activities"`
	Services    int `json:"services"`
	Receivers   int `json:"receivers"`
	Providers   int `json:"providers"`
	Issues      int `json:"securityIssues"`
	Dropped     int `json:"droppedComponents"`
}

// Report is the serialized boundary object handed to consumers
type Report struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Manifest    *manifest.Document `json:"manifest"`
	Stats       Stats              `json:"stats"`
}

// New builds a report for an analyzed document
func New(doc *manifest.Document) *Report {
	return &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Manifest:    doc,
		Stats: Stats{
			Permissions: len(doc.Permissions),
			Activities:  len(doc.Activities),
			Services:    len(doc.Services),
			Receivers:   len(doc.Receivers),
			Providers:   len(doc.Providers),
			Issues:      len(doc.SecurityIssues),
			Dropped:     doc.DroppedComponents,
		},
	}
}

// Write stores the report as an indented JSON file in outputDir using a
// timestamped, package-qualified filename, and returns the file path
func (r *Report) Write(outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	name := r.Manifest.PackageName
	if name == "" {
		name = "unknown"
	}
	timestamp := r.GeneratedAt.Format("2006-01-02_15-04-05")
	filePath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.json", timestamp, name))

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return filePath, nil
}

// LogSummary emits a per-finding summary through the logger, mapping finding
// severity onto log levels
func (r *Report) LogSummary(logger *logrus.Logger) {
	logger.WithFields(logrus.Fields{
		"report":   r.ID,
		"package":  r.Manifest.PackageName,
		"version":  r.Manifest.VersionName,
		"findings": r.Stats.Issues,
	}).Info("analysis report")

	for _, issue := range r.Manifest.SecurityIssues {
		fields := logrus.Fields{"severity": issue.Severity}
		if issue.Component != "" {
			fields["component"] = issue.Component
		}
		switch issue.Severity {
		case manifest.SeverityHigh:
			logger.WithFields(fields).Error(issue.Issue)
		case manifest.SeverityMedium:
			logger.WithFields(fields).Warn(issue.Issue)
		default:
			logger.WithFields(fields).Info(issue.Issue)
		}
	}
}
