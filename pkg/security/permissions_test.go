/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: permissions_test.go
Description: Tests for the permission knowledge base. Covers dangerous and
signature set membership and the BIND_ prefix heuristic.
*/

package security_test

import (
	"testing"

	"github.com/kleascm/apkscope/pkg/manifest"
	"github.com/kleascm/apkscope/pkg/security"
	"github.com/stretchr/testify/assert"
)

// TestClassifyPermission tests protection level derivation by name
func TestClassifyPermission(t *testing.T) {
	cases := []struct {
		name string
		want manifest.ProtectionLevel
	}{
		{"android.permission.CAMERA", manifest.ProtectionDangerous},
		{"android.permission.READ_SMS", manifest.ProtectionDangerous},
		{"android.permission.ACCESS_FINE_LOCATION", manifest.ProtectionDangerous},
		{"android.permission.INSTALL_PACKAGES", manifest.ProtectionSignature},
		{"android.permission.WRITE_SECURE_SETTINGS", manifest.ProtectionSignature},
		{"android.permission.BIND_ACCESSIBILITY_SERVICE", manifest.ProtectionSignature},
		{"com.vendor.permission.BIND_CUSTOM_SERVICE", manifest.ProtectionSignature},
		{"android.permission.INTERNET", manifest.ProtectionNormal},
		{"android.permission.VIBRATE", manifest.ProtectionNormal},
		{"com.vendor.CUSTOM", manifest.ProtectionNormal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, security.ClassifyPermission(tc.name), tc.name)
	}
}
