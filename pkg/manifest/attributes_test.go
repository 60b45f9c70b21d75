/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: attributes_test.go
Description: Tests for the xmltree line decoding helpers. Covers element and
attribute matching, the boolean all-ones convention, hex re-stringification,
and depth derivation.
*/

package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseElementLine tests tag extraction from E: lines
func TestParseElementLine(t *testing.T) {
	tag, ok := parseElementLine("E: manifest (line=2)")
	require.True(t, ok)
	assert.Equal(t, "manifest", tag)

	tag, ok = parseElementLine("      E: intent-filter (line=12)")
	require.True(t, ok)
	assert.Equal(t, "intent-filter", tag)

	_, ok = parseElementLine("N: android=http://schemas.android.com/apk/res/android")
	assert.False(t, ok)

	_, ok = parseElementLine("")
	assert.False(t, ok)
}

// TestParseAttributeLine tests the three attribute value encodings
func TestParseAttributeLine(t *testing.T) {
	// Quoted string with raw echo
	attr, ok := parseAttributeLine(`A: package="com.example.app" (Raw: "com.example.app")`)
	require.True(t, ok)
	assert.Equal(t, "package", attr.name)
	assert.Equal(t, "com.example.app", attr.stringValue())

	// Namespaced name with resource id and typed hex value
	attr, ok = parseAttributeLine(`A: android:versionCode(0x0101021b)=(type 0x10)0x1`)
	require.True(t, ok)
	assert.Equal(t, "versionCode", attr.name)
	assert.Equal(t, "1", attr.intValue())

	// Signed integer literal
	attr, ok = parseAttributeLine(`A: android:exported(0x01010010)=(type 0x12)-1`)
	require.True(t, ok)
	assert.True(t, attr.boolValue())

	// Malformed lines contribute nothing
	_, ok = parseAttributeLine("A: garbage without equals")
	assert.False(t, ok)
	_, ok = parseAttributeLine("completely unrelated text")
	assert.False(t, ok)
}

// TestBoolValue tests the all-ones boolean convention. Anything other than
// 0xffffffff or -1 is false, including non-zero values.
func TestBoolValue(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{`A: android:debuggable(0x0101000f)=(type 0x12)0xffffffff`, true},
		{`A: android:debuggable(0x0101000f)=(type 0x12)-1`, true},
		{`A: android:debuggable(0x0101000f)=(type 0x12)0x0`, false},
		{`A: android:debuggable(0x0101000f)=(type 0x12)0x1`, false},
	}
	for _, tc := range cases {
		attr, ok := parseAttributeLine(tc.line)
		require.True(t, ok, tc.line)
		assert.Equal(t, tc.want, attr.boolValue(), tc.line)
	}
}

// TestIntValue tests hex to decimal re-stringification and the fallback to
// the raw string form
func TestIntValue(t *testing.T) {
	attr, ok := parseAttributeLine(`A: android:versionCode(0x0101021b)=(type 0x10)0x1f`)
	require.True(t, ok)
	assert.Equal(t, "31", attr.intValue())

	attr, ok = parseAttributeLine(`A: android:minSdkVersion(0x0101020c)=(type 0x10)0x15`)
	require.True(t, ok)
	assert.Equal(t, "21", attr.intValue())

	// Quoted values pass through verbatim
	attr, ok = parseAttributeLine(`A: android:versionName(0x0101021c)="1.0" (Raw: "1.0")`)
	require.True(t, ok)
	assert.Equal(t, "1.0", attr.intValue())
}

// TestLineDepth tests depth derivation from 2-space indentation
func TestLineDepth(t *testing.T) {
	assert.Equal(t, 0, lineDepth("E: manifest (line=2)"))
	assert.Equal(t, 1, lineDepth("  E: application (line=5)"))
	assert.Equal(t, 2, lineDepth("    E: activity (line=8)"))
	assert.Equal(t, 3, lineDepth("      A: android:name(0x01010003)=\".Main\""))
	// Odd indentation floors
	assert.Equal(t, 1, lineDepth("   E: odd (line=1)"))
}
