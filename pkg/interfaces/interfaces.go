/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for APKScope. Defines the contracts between the
manifest parser, badging merger, security analyzer, and tool runner so the
pipeline stays pluggable and packages avoid import cycles.
*/

package interfaces

import (
	"context"

	"github.com/kleascm/apkscope/pkg/manifest"
)

// ManifestParser reconstructs a manifest document from xmltree dump text.
// Implementations never fail on malformed content; garbage input yields an
// empty, valid document.
type ManifestParser interface {
	// Parse runs a single forward pass over the dump text
	Parse(dumperText string) *manifest.Document
}

// BadgingMerger back-fills document fields from badging text without
// overwriting anything the parser resolved
type BadgingMerger interface {
	Merge(doc *manifest.Document, badgingText string)
}

// SecurityAnalyzer evaluates a populated document against a fixed rule set
// and returns findings in deterministic order
type SecurityAnalyzer interface {
	Analyze(doc *manifest.Document) []manifest.SecurityIssue
}

// ToolRunner captures the stdout of the external dump tool for an APK.
// Timeouts and cancellation live behind this boundary, never in the parsing
// or analysis logic.
type ToolRunner interface {
	// DumpXMLTree returns the flattened manifest dump for the APK
	DumpXMLTree(ctx context.Context, apkPath string) (string, error)

	// DumpBadging returns the badging summary for the APK
	DumpBadging(ctx context.Context, apkPath string) (string, error)
}
