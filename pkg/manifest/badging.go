/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: badging.go
Description: BadgingMerger for aapt badging output. Back-fills document fields
the xmltree parse could not determine from the looser key='value' badging
format. Never overwrites a value the tree parser already resolved.
*/

package manifest

import "regexp"

// Badging output carries four extractable facts:
//
//	package: name='com.example' versionCode='1' versionName='1.0'
//	sdkVersion:'21'
//	targetSdkVersion:'33'
var (
	badgingPackageRe   = regexp.MustCompile(`package: name='([^']*)' versionCode='([^']*)' versionName='([^']*)'`)
	badgingSdkRe       = regexp.MustCompile(`(?m)^sdkVersion:'([^']*)'`)
	badgingTargetSdkRe = regexp.MustCompile(`(?m)^targetSdkVersion:'([^']*)'`)
)

// BadgingMerger back-fills a document from badging output. Stateless; one
// merger serves concurrent merges of independent documents.
type BadgingMerger struct{}

// NewBadgingMerger creates a badging merger instance
func NewBadgingMerger() *BadgingMerger {
	return &BadgingMerger{}
}

// Merge implements the merge contract over MergeBadging
func (m *BadgingMerger) Merge(doc *Document, badgingText string) {
	MergeBadging(doc, badgingText)
}

// MergeBadging back-fills empty document fields from badging text. Missing
// text or unmatched patterns are a no-op, never an error. Components are
// never created here; this covers fields only.
func MergeBadging(doc *Document, badgingText string) {
	if m := badgingPackageRe.FindStringSubmatch(badgingText); m != nil {
		if doc.PackageName == "" {
			doc.PackageName = m[1]
		}
		if doc.VersionCode == "" {
			doc.VersionCode = m[2]
		}
		if doc.VersionName == "" {
			doc.VersionName = m[3]
		}
	}
	if m := badgingSdkRe.FindStringSubmatch(badgingText); m != nil && doc.MinSdk == "" {
		doc.MinSdk = m[1]
	}
	if m := badgingTargetSdkRe.FindStringSubmatch(badgingText); m != nil && doc.TargetSdk == "" {
		doc.TargetSdk = m[1]
	}
}
