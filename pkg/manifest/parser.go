/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: TreeParser for aapt xmltree dumps. Reconstructs a typed manifest
document from the flattened, indentation-depth-encoded element/attribute text.
Tracks element, component, and intent-filter scopes independently and closes
each one from depth alone, since the dump carries no closing tags.
*/

package manifest

import (
	"bufio"
	"strings"
)

// PermissionClassifier derives a protection level from a permission name.
// The xmltree format does not expose protection levels, so classification is
// always injected knowledge, never parsed.
type PermissionClassifier func(name string) ProtectionLevel

// Parser converts xmltree dump text into a Document. A Parser is stateless
// across calls; every Parse builds its scope state on the call stack, so one
// Parser is safe to use concurrently for independent inputs.
type Parser struct {
	classify PermissionClassifier
}

// NewParser creates a parser. A nil classifier marks every permission normal.
func NewParser(classify PermissionClassifier) *Parser {
	if classify == nil {
		classify = func(string) ProtectionLevel { return ProtectionNormal }
	}
	return &Parser{classify: classify}
}

// componentTags maps openable element tags to their component kind. An
// activity-alias is modeled as a plain activity.
var componentTags = map[string]ComponentKind{
	"activity":       KindActivity,
	"activity-alias": KindActivity,
	"service":        KindService,
	"receiver":       KindReceiver,
	"provider":       KindProvider,
}

// parseState is the open-scope state threaded through one Parse call
type parseState struct {
	element      string // tag of the most recently opened element
	elementDepth int

	component      *Component // partially built component, nil when closed
	componentDepth int

	filter      *IntentFilter // open intent-filter, nil when closed
	filterDepth int
}

// Parse runs a single forward pass over the dump text and returns the
// reconstructed document. Malformed lines are skipped; empty or garbage input
// yields a valid document with defaults and empty lists, never an error.
func (p *Parser) Parse(dumperText string) *Document {
	doc := NewDocument()
	st := &parseState{}

	scanner := bufio.NewScanner(strings.NewReader(dumperText))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(trimmed, "E:"):
			p.handleElement(doc, st, line)
		case strings.HasPrefix(trimmed, "A:"):
			p.handleAttribute(doc, st, line)
		}
	}

	// A trailing component or filter has no following element line to close
	// it, so flush whatever is still open.
	p.closeComponent(doc, st)
	p.closeFilter(doc, st)

	return doc
}

// handleElement closes any scopes the new element's depth falls out of, then
// opens the scopes the element starts
func (p *Parser) handleElement(doc *Document, st *parseState, line string) {
	tag, ok := parseElementLine(line)
	if !ok {
		return
	}
	depth := lineDepth(line)

	// Scope closure. The component and intent-filter each close against the
	// depth they were opened at; the two checks are independent. Closing a
	// component flushes its still-open filter first, so a filter never
	// outlives its owner.
	if st.component != nil && depth <= st.componentDepth {
		p.closeComponent(doc, st)
	}
	if st.filter != nil && depth <= st.filterDepth {
		p.closeFilter(doc, st)
	}

	st.element = tag
	st.elementDepth = depth

	if kind, isComponent := componentTags[tag]; isComponent {
		st.component = &Component{Kind: kind}
		st.componentDepth = depth
	} else if tag == "intent-filter" {
		st.filter = &IntentFilter{}
		st.filterDepth = depth
	}
}

// closeComponent flushes the open component, attaching any open filter to it
// first. A component that never resolved a name is dropped and counted.
func (p *Parser) closeComponent(doc *Document, st *parseState) {
	if st.component == nil {
		return
	}
	p.closeFilter(doc, st)
	if st.component.Name != "" {
		doc.appendComponent(*st.component)
	} else {
		doc.DroppedComponents++
	}
	st.component = nil
}

// closeFilter pushes the open intent-filter onto its owning component. Only
// activities and receivers carry filters; a filter with no eligible owner is
// discarded.
func (p *Parser) closeFilter(_ *Document, st *parseState) {
	if st.filter == nil {
		return
	}
	if c := st.component; c != nil && (c.Kind == KindActivity || c.Kind == KindReceiver) {
		c.IntentFilters = append(c.IntentFilters, *st.filter)
	}
	st.filter = nil
}

// handleAttribute routes a decoded attribute by the currently open scopes:
// intent-filter children first, then the component, then the top-level
// manifest/uses-sdk/uses-permission/application contexts.
func (p *Parser) handleAttribute(doc *Document, st *parseState, line string) {
	attr, ok := parseAttributeLine(line)
	if !ok {
		return
	}

	if st.filter != nil && p.routeFilterAttribute(st, attr) {
		return
	}
	if st.component != nil {
		p.routeComponentAttribute(st.component, attr)
		return
	}

	switch st.element {
	case "manifest":
		switch attr.name {
		case "package":
			doc.PackageName = attr.stringValue()
		case "versionCode":
			doc.VersionCode = attr.intValue()
		case "versionName":
			doc.VersionName = attr.stringValue()
		}
	case "uses-sdk":
		switch attr.name {
		case "minSdkVersion":
			doc.MinSdk = attr.intValue()
		case "targetSdkVersion":
			doc.TargetSdk = attr.intValue()
		}
	case "uses-permission":
		if attr.name == "name" && attr.stringValue() != "" {
			name := attr.stringValue()
			doc.Permissions = append(doc.Permissions, Permission{
				Name:            name,
				ProtectionLevel: p.classify(name),
			})
		}
	case "application":
		switch attr.name {
		case "debuggable":
			doc.Debuggable = attr.boolValue()
		case "allowBackup":
			doc.AllowBackup = attr.boolValue()
		}
	}
}

// routeFilterAttribute populates the open intent-filter from its child
// elements. Data sub-attributes are flattened into one comma-joined string.
// Returns false when the attribute does not belong to the filter so the
// caller can fall through to component routing.
func (p *Parser) routeFilterAttribute(st *parseState, attr attribute) bool {
	switch st.element {
	case "action":
		if attr.name == "name" {
			st.filter.Action = attr.stringValue()
			return true
		}
	case "category":
		if attr.name == "name" {
			st.filter.Category = attr.stringValue()
			return true
		}
	case "data":
		switch attr.name {
		case "scheme", "host", "path", "pathPrefix", "pathPattern", "mimeType", "port":
			part := attr.name + "=" + attr.stringValue()
			if st.filter.Data != "" {
				st.filter.Data += ", " + part
			} else {
				st.filter.Data = part
			}
			return true
		}
	}
	return false
}

// routeComponentAttribute populates the open component. Provider-only fields
// are ignored for the other kinds.
func (p *Parser) routeComponentAttribute(c *Component, attr attribute) {
	switch attr.name {
	case "name":
		if v := attr.stringValue(); v != "" {
			c.Name = v
		}
	case "exported":
		c.Exported = attr.boolValue()
	case "permission":
		c.Permission = attr.stringValue()
	case "authorities":
		if c.Kind == KindProvider {
			c.Authorities = attr.stringValue()
		}
	case "readPermission":
		if c.Kind == KindProvider {
			c.ReadPermission = attr.stringValue()
		}
	case "writePermission":
		if c.Kind == KindProvider {
			c.WritePermission = attr.stringValue()
		}
	}
}
