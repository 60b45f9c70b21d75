/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: badging_test.go
Description: Tests for the badging merger. Covers empty-field back-fill,
never-overwrite semantics, and no-op behavior on missing or unmatched text.
*/

package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleBadging = `package: name='com.badging.app' versionCode='7' versionName='2.1'
sdkVersion:'23'
targetSdkVersion:'33'
application-label:'Badging App'`

// TestMergeBadgingBackfill tests that empty fields are filled from badging
func TestMergeBadgingBackfill(t *testing.T) {
	doc := NewDocument()
	MergeBadging(doc, sampleBadging)

	assert.Equal(t, "com.badging.app", doc.PackageName)
	assert.Equal(t, "7", doc.VersionCode)
	assert.Equal(t, "2.1", doc.VersionName)
	assert.Equal(t, "23", doc.MinSdk)
	assert.Equal(t, "33", doc.TargetSdk)
}

// TestMergeBadgingNeverOverwrites tests that parser-resolved values stand
func TestMergeBadgingNeverOverwrites(t *testing.T) {
	doc := NewDocument()
	doc.PackageName = "com.parsed.app"
	doc.VersionCode = "1"
	doc.MinSdk = "21"

	MergeBadging(doc, sampleBadging)

	assert.Equal(t, "com.parsed.app", doc.PackageName)
	assert.Equal(t, "1", doc.VersionCode)
	assert.Equal(t, "21", doc.MinSdk)
	// Fields the parser left empty still back-fill
	assert.Equal(t, "2.1", doc.VersionName)
	assert.Equal(t, "33", doc.TargetSdk)
}

// TestMergeBadgingNoOp tests that missing or unmatched text changes nothing
func TestMergeBadgingNoOp(t *testing.T) {
	doc := NewDocument()
	MergeBadging(doc, "")
	MergeBadging(doc, "no badging patterns here")

	assert.Empty(t, doc.PackageName)
	assert.Empty(t, doc.VersionCode)
	assert.Empty(t, doc.MinSdk)
	assert.Empty(t, doc.TargetSdk)
}

// TestMergeBadgingSdkAnchoring tests that targetSdkVersion does not satisfy
// the sdkVersion pattern
func TestMergeBadgingSdkAnchoring(t *testing.T) {
	doc := NewDocument()
	MergeBadging(doc, "targetSdkVersion:'33'\n")

	assert.Empty(t, doc.MinSdk)
	assert.Equal(t, "33", doc.TargetSdk)
}

// TestMergeBadgingNeverTouchesComponents tests the fields-only contract
func TestMergeBadgingNeverTouchesComponents(t *testing.T) {
	doc := NewDocument()
	MergeBadging(doc, sampleBadging+"\nlaunchable-activity: name='com.badging.app.Main'\n")

	assert.Empty(t, doc.Activities)
	assert.Empty(t, doc.Services)
}
