/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: attributes.go
Description: Line-level decoding helpers for aapt xmltree output. Isolates the
regex matching and hex/boolean value conventions from the parser state machine
so each decode rule stays independently testable.
*/

package manifest

import (
	"regexp"
	"strconv"
	"strings"
)

// Attribute lines look like one of:
//
//	A: package="com.example.app" (Raw: "com.example.app")
//	A: android:versionCode(0x0101021b)=(type 0x10)0x1
//	A: android:exported(0x01010010)=(type 0x12)0xffffffff
//
// The name may carry an android: prefix and a resource id suffix; the value is
// either a double-quoted string or a typed integer literal.
var (
	elementRe   = regexp.MustCompile(`^E:\s+([\w.-]+)`)
	attributeRe = regexp.MustCompile(`^A:\s+(?:[\w.]+:)?([\w-]+)(?:\(0x[0-9a-fA-F]+\))?=(?:"([^"]*)"|\(type\s+0x[0-9a-fA-F]+\)(-?(?:0x)?[0-9a-fA-F]+))`)
)

// attribute is one decoded A: line. Exactly one of strValue/rawValue is
// populated depending on which alternative matched.
type attribute struct {
	name     string
	strValue string
	rawValue string // typed integer literal, possibly 0x-prefixed or negative
}

// lineDepth derives the nesting depth from leading whitespace. The dumper
// indents two spaces per level; any other indentation is unsupported input and
// will misattribute scope rather than be auto-detected.
func lineDepth(line string) int {
	leading := len(line) - len(strings.TrimLeft(line, " "))
	return leading / 2
}

// parseElementLine extracts the tag name from an E: line, or ok=false
func parseElementLine(line string) (string, bool) {
	m := elementRe.FindStringSubmatch(strings.TrimLeft(line, " "))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// parseAttributeLine extracts the attribute name and value from an A: line.
// Malformed lines return ok=false and contribute nothing.
func parseAttributeLine(line string) (attribute, bool) {
	m := attributeRe.FindStringSubmatch(strings.TrimLeft(line, " "))
	if m == nil {
		return attribute{}, false
	}
	return attribute{name: m[1], strValue: m[2], rawValue: m[3]}, true
}

// boolValue applies the platform encoding of booleans as 32-bit all-ones:
// only 0xffffffff or -1 mean true. This is deliberately not a generic
// non-zero check.
func (a attribute) boolValue() bool {
	return a.rawValue == "0xffffffff" || a.rawValue == "-1"
}

// intValue re-stringifies a typed integer literal in base 10, falling back to
// the quoted string value verbatim when no literal was present
func (a attribute) intValue() string {
	if a.rawValue == "" {
		return a.strValue
	}
	if v, err := strconv.ParseInt(strings.TrimPrefix(a.rawValue, "0x"), parseBase(a.rawValue), 64); err == nil {
		return strconv.FormatInt(v, 10)
	}
	return a.strValue
}

// stringValue prefers the quoted form, falling back to the raw literal
func (a attribute) stringValue() string {
	if a.strValue != "" {
		return a.strValue
	}
	return a.rawValue
}

func parseBase(raw string) int {
	if strings.HasPrefix(raw, "0x") {
		return 16
	}
	return 10
}
