/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Rule-based security analyzer for APKScope. Evaluates a fixed,
ordered rule set over a parsed manifest document and returns severity-tagged
findings: manifest-wide flags, unprotected exported components with the
launcher and system-broadcast exemptions, dangerous-permission pressure, and
legacy SDK targets.
*/

package security

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kleascm/apkscope/pkg/manifest"
)

// Analyzer evaluates the fixed rule set. It is stateless; Analyze is a pure
// function of the document and may run concurrently for independent documents.
type Analyzer struct{}

// NewAnalyzer creates a security analyzer instance
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze returns the findings for a fully populated document in fixed rule
// order. The document is not mutated; callers append the result to the
// document's SecurityIssues themselves.
func (a *Analyzer) Analyze(doc *manifest.Document) []manifest.SecurityIssue {
	issues := []manifest.SecurityIssue{}

	// Rule 1: debuggable build
	if doc.Debuggable {
		issues = append(issues, manifest.SecurityIssue{
			Severity: manifest.SeverityHigh,
			Issue:    "Application is debuggable: debug builds expose the app to runtime inspection and code injection",
		})
	}

	// Rule 2: backup allowed (the platform default when unset)
	if doc.AllowBackup {
		issues = append(issues, manifest.SecurityIssue{
			Severity: manifest.SeverityMedium,
			Issue:    "Application allows backup: app data can be extracted via adb backup",
		})
	}

	// Rule 3: exported activities without a guarding permission. A launcher
	// entry point is exported by design and exempt.
	for _, act := range doc.Activities {
		if act.Exported && act.Permission == "" && !isLauncherActivity(act) {
			issues = append(issues, manifest.SecurityIssue{
				Severity:  manifest.SeverityHigh,
				Issue:     fmt.Sprintf("Exported activity without permission protection: %s", act.Name),
				Component: act.Name,
			})
		}
	}

	// Rule 4: exported services without a guarding permission, no exemption
	for _, svc := range doc.Services {
		if svc.Exported && svc.Permission == "" {
			issues = append(issues, manifest.SecurityIssue{
				Severity:  manifest.SeverityHigh,
				Issue:     fmt.Sprintf("Exported service without permission protection: %s", svc.Name),
				Component: svc.Name,
			})
		}
	}

	// Rule 5: exported receivers listening on filters. Subscriptions to
	// system broadcasts (android.intent.*) are the normal case and exempt.
	for _, rcv := range doc.Receivers {
		if rcv.Exported && len(rcv.IntentFilters) > 0 && !listensToSystemBroadcast(rcv) {
			issues = append(issues, manifest.SecurityIssue{
				Severity:  manifest.SeverityMedium,
				Issue:     fmt.Sprintf("Exported broadcast receiver with custom intent filter: %s", rcv.Name),
				Component: rcv.Name,
			})
		}
	}

	// Rule 6: exported providers with no permission guard at all
	for _, prv := range doc.Providers {
		if prv.Exported && prv.Permission == "" && prv.ReadPermission == "" && prv.WritePermission == "" {
			issues = append(issues, manifest.SecurityIssue{
				Severity:  manifest.SeverityHigh,
				Issue:     fmt.Sprintf("Exported content provider without any permission protection: %s", prv.Name),
				Component: prv.Name,
			})
		}
	}

	// Rule 7: dangerous-permission pressure
	if n := countDangerous(doc.Permissions); n > 5 {
		issues = append(issues, manifest.SecurityIssue{
			Severity: manifest.SeverityMedium,
			Issue:    fmt.Sprintf("Application requests %d dangerous permissions", n),
		})
	}

	// Rules 8 and 9: legacy SDK targets. An unparseable SDK string is treated
	// as absent, so the explicit > 0 guard is load-bearing here.
	if target := sdkLevel(doc.TargetSdk); target > 0 && target < 28 {
		issues = append(issues, manifest.SecurityIssue{
			Severity: manifest.SeverityLow,
			Issue:    fmt.Sprintf("Target SDK %d predates Android 9: modern platform mitigations do not apply", target),
		})
	}
	if min := sdkLevel(doc.MinSdk); min > 0 && min < 21 {
		issues = append(issues, manifest.SecurityIssue{
			Severity: manifest.SeverityMedium,
			Issue:    fmt.Sprintf("Minimum SDK %d allows installation on Android versions older than 5.0 with known platform vulnerabilities", min),
		})
	}

	return issues
}

// isLauncherActivity reports whether any filter marks the activity as the
// MAIN/LAUNCHER entry point
func isLauncherActivity(c manifest.Component) bool {
	for _, f := range c.IntentFilters {
		if f.Action == "android.intent.action.MAIN" && f.Category == "android.intent.category.LAUNCHER" {
			return true
		}
	}
	return false
}

// listensToSystemBroadcast reports whether any filter action is a platform
// broadcast rather than a custom one
func listensToSystemBroadcast(c manifest.Component) bool {
	for _, f := range c.IntentFilters {
		if strings.HasPrefix(f.Action, "android.intent.") {
			return true
		}
	}
	return false
}

func countDangerous(perms []manifest.Permission) int {
	n := 0
	for _, p := range perms {
		if p.ProtectionLevel == manifest.ProtectionDangerous {
			n++
		}
	}
	return n
}

// sdkLevel parses an SDK string, returning 0 for absent or unparseable values
func sdkLevel(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
