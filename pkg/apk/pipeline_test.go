/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline_test.go
Description: Tests for the analysis pipeline. Covers the full text-to-findings
flow with badging back-fill and export inference, plus the runner-backed path
with a stub tool runner.
*/

package apk_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/kleascm/apkscope/pkg/apk"
	"github.com/kleascm/apkscope/pkg/interfaces"
	"github.com/kleascm/apkscope/pkg/manifest"
	"github.com/kleascm/apkscope/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleXMLTree = strings.Join([]string{
	`E: manifest (line=2)`,
	`  A: package="com.pipeline.app" (Raw: "com.pipeline.app")`,
	`  E: application (line=5)`,
	`    A: android:debuggable(0x0101000f)=(type 0x12)0xffffffff`,
	`    E: activity (line=8)`,
	`      A: android:name(0x01010003)=".Share" (Raw: ".Share")`,
	`      E: intent-filter (line=10)`,
	`        E: action (line=11)`,
	`          A: android:name(0x01010003)="com.pipeline.SHARE" (Raw: "com.pipeline.SHARE")`,
}, "\n")

const sampleBadging = `package: name='com.pipeline.app' versionCode='3' versionName='1.2'
sdkVersion:'23'
targetSdkVersion:'30'`

func newTestPipeline(runner interfaces.ToolRunner) *apk.Pipeline {
	return apk.NewPipeline(
		manifest.NewParser(security.ClassifyPermission),
		manifest.NewBadgingMerger(),
		security.NewAnalyzer(),
		runner,
		nil,
	)
}

// TestPipelineRunOnText tests the full flow: parse, badging back-fill,
// implicit-export inference, analysis
func TestPipelineRunOnText(t *testing.T) {
	doc := newTestPipeline(nil).RunOnText(sampleXMLTree, sampleBadging)

	assert.Equal(t, "com.pipeline.app", doc.PackageName)
	assert.Equal(t, "3", doc.VersionCode) // badging back-fill
	assert.Equal(t, "30", doc.TargetSdk)

	// targetSdk 30 plus an intent-filter makes the activity implicitly exported
	require.Len(t, doc.Activities, 1)
	assert.True(t, doc.Activities[0].Exported)

	// debuggable, allowBackup default, exported activity
	require.Len(t, doc.SecurityIssues, 3)
	assert.Contains(t, doc.SecurityIssues[0].Issue, "debuggable")
	assert.Contains(t, doc.SecurityIssues[1].Issue, "backup")
	assert.Equal(t, ".Share", doc.SecurityIssues[2].Component)
}

// TestPipelineExplicitExport tests a dump with an explicitly exported
// activity and no badging: findings come out in rule order with the
// allowBackup default in between
func TestPipelineExplicitExport(t *testing.T) {
	input := strings.Join([]string{
		`E: manifest (line=2)`,
		`  A: package="com.test.app" (Raw: "com.test.app")`,
		`  E: application (line=5)`,
		`    A: android:debuggable(0x0101000f)=(type 0x12)0xffffffff`,
		`    E: activity (line=8)`,
		`      A: android:name(0x01010003)=".Main" (Raw: ".Main")`,
		`      A: android:exported(0x01010010)=(type 0x12)0xffffffff`,
	}, "\n")

	doc := newTestPipeline(nil).RunOnText(input, "")

	assert.Equal(t, "com.test.app", doc.PackageName)
	require.Len(t, doc.Activities, 1)
	assert.True(t, doc.Activities[0].Exported)
	assert.Empty(t, doc.Activities[0].Permission)

	require.Len(t, doc.SecurityIssues, 3)
	assert.Equal(t, manifest.SeverityHigh, doc.SecurityIssues[0].Severity)
	assert.Contains(t, doc.SecurityIssues[0].Issue, "debuggable")
	assert.Equal(t, manifest.SeverityMedium, doc.SecurityIssues[1].Severity)
	assert.Contains(t, doc.SecurityIssues[1].Issue, "backup")
	assert.Equal(t, manifest.SeverityHigh, doc.SecurityIssues[2].Severity)
	assert.Equal(t, ".Main", doc.SecurityIssues[2].Component)
}

// stubRunner serves canned dump text
type stubRunner struct {
	xmltree    string
	badging    string
	badgingErr error
}

func (s *stubRunner) DumpXMLTree(ctx context.Context, apkPath string) (string, error) {
	return s.xmltree, nil
}

func (s *stubRunner) DumpBadging(ctx context.Context, apkPath string) (string, error) {
	return s.badging, s.badgingErr
}

// TestPipelineRun tests the runner-backed path
func TestPipelineRun(t *testing.T) {
	pipeline := newTestPipeline(&stubRunner{xmltree: sampleXMLTree, badging: sampleBadging})

	doc, err := pipeline.Run(context.Background(), "app.apk")
	require.NoError(t, err)
	assert.Equal(t, "com.pipeline.app", doc.PackageName)
	assert.Equal(t, "1.2", doc.VersionName)
}

// TestPipelineRunBadgingBestEffort tests that a failing badging dump degrades
// to a plain xmltree parse instead of failing the run
func TestPipelineRunBadgingBestEffort(t *testing.T) {
	pipeline := newTestPipeline(&stubRunner{
		xmltree:    sampleXMLTree,
		badgingErr: fmt.Errorf("aapt exited 1"),
	})

	doc, err := pipeline.Run(context.Background(), "app.apk")
	require.NoError(t, err)
	assert.Equal(t, "com.pipeline.app", doc.PackageName)
	assert.Empty(t, doc.VersionCode) // no back-fill happened
}
