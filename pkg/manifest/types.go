/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core data model for APKScope manifest analysis. Defines the manifest
document reconstructed from aapt xmltree output, the four component kinds, intent
filters, permissions with derived protection levels, and security findings.
*/

package manifest

// Severity classifies a security finding
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ProtectionLevel classifies a requested permission. It is always derived from
// the permission name against the knowledge base, never read from dumper output
// (the xmltree format does not reliably expose it).
type ProtectionLevel string

const (
	ProtectionNormal    ProtectionLevel = "normal"
	ProtectionDangerous ProtectionLevel = "dangerous"
	ProtectionSignature ProtectionLevel = "signature"
)

// ComponentKind discriminates the four manifest component types
type ComponentKind string

const (
	KindActivity ComponentKind = "activity"
	KindService  ComponentKind = "service"
	KindReceiver ComponentKind = "receiver"
	KindProvider ComponentKind = "provider"
)

// Permission is a single uses-permission entry. Duplicates are kept in source
// order; the document makes no uniqueness guarantee.
type Permission struct {
	Name            string          `json:"name"`            // Fully qualified permission name
	ProtectionLevel ProtectionLevel `json:"protectionLevel"` // Derived classification
}

// IntentFilter is a flattened view of one intent-filter element. Data is a
// comma-joined composite of the scheme/host/path sub-attributes rather than a
// structured object; this mirrors the dump format.
type IntentFilter struct {
	Action   string `json:"action,omitempty"`
	Category string `json:"category,omitempty"`
	Data     string `json:"data,omitempty"`
}

// Component is one activity, service, receiver or provider. Kind discriminates
// which of the optional fields are meaningful: IntentFilters for activities and
// receivers, Authorities/ReadPermission/WritePermission for providers.
type Component struct {
	Kind            ComponentKind  `json:"-"`
	Name            string         `json:"name"`
	Exported        bool           `json:"exported"`
	Permission      string         `json:"permission,omitempty"`
	IntentFilters   []IntentFilter `json:"intentFilters,omitempty"`
	Authorities     string         `json:"authorities,omitempty"`
	ReadPermission  string         `json:"readPermission,omitempty"`
	WritePermission string         `json:"writePermission,omitempty"`
}

// SecurityIssue is a single analyzer finding. Component is empty for
// manifest-wide issues.
type SecurityIssue struct {
	Severity  Severity `json:"severity"`
	Issue     string   `json:"issue"`
	Component string   `json:"component,omitempty"`
}

// Document is the manifest reconstructed from one xmltree dump. Numeric fields
// keep their string representation so unparseable values pass through without
// silent coercion. AllowBackup defaults to true, matching the platform default
// for an absent attribute.
type Document struct {
	PackageName string `json:"package"`
	VersionCode string `json:"versionCode"`
	VersionName string `json:"versionName"`
	MinSdk      string `json:"minSdk"`
	TargetSdk   string `json:"targetSdk"`

	Permissions []Permission `json:"permissions"`
	Activities  []Component  `json:"activities"`
	Services    []Component  `json:"services"`
	Receivers   []Component  `json:"receivers"`
	Providers   []Component  `json:"providers"`

	Debuggable  bool `json:"debuggable"`
	AllowBackup bool `json:"allowBackup"`

	SecurityIssues []SecurityIssue `json:"securityIssues"`

	// DroppedComponents counts component scopes that closed without ever
	// resolving a name. Such components are never added to the lists above;
	// the count exists for diagnostic visibility only.
	DroppedComponents int `json:"-"`
}

// NewDocument returns an empty document with platform-default flags
func NewDocument() *Document {
	return &Document{
		Permissions:    []Permission{},
		Activities:     []Component{},
		Services:       []Component{},
		Receivers:      []Component{},
		Providers:      []Component{},
		SecurityIssues: []SecurityIssue{},
		AllowBackup:    true,
	}
}

// appendComponent routes a completed component to the list for its kind.
// Components without a resolved name must be filtered before this is called.
func (d *Document) appendComponent(c Component) {
	switch c.Kind {
	case KindActivity:
		d.Activities = append(d.Activities, c)
	case KindService:
		d.Services = append(d.Services, c)
	case KindReceiver:
		d.Receivers = append(d.Receivers, c)
	case KindProvider:
		d.Providers = append(d.Providers, c)
	}
}
