/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: export.go
Description: Implicit-export inference. Reproduces the pre-Android-12 platform
behavior where an activity or receiver with an intent-filter is exported even
without an explicit android:exported attribute.
*/

package manifest

import "strconv"

// InferImplicitExport forces exported=true on activities and receivers that
// carry at least one intent-filter when the document targets an SDK below 31.
// Android 12 (API 31) removed the implicit default, so at or above 31 the
// parsed value stands. Runs exactly once, after parsing and badging merge,
// before security analysis.
func InferImplicitExport(doc *Document) {
	target, err := strconv.Atoi(doc.TargetSdk)
	if err != nil || target <= 0 || target >= 31 {
		return
	}
	for i := range doc.Activities {
		if !doc.Activities[i].Exported && len(doc.Activities[i].IntentFilters) > 0 {
			doc.Activities[i].Exported = true
		}
	}
	for i := range doc.Receivers {
		if !doc.Receivers[i].Exported && len(doc.Receivers[i].IntentFilters) > 0 {
			doc.Receivers[i].Exported = true
		}
	}
}
