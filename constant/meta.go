// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Seriesdex is the canonical application identifier used for filesystem paths and CLI branding.
	Seriesdex = "seriesdex"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = ""
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// CatalogExtension is the file extension expected for catalog documents.
const CatalogExtension = ".json"

// CatalogFormat is the newest catalog document format this build understands.
const CatalogFormat = "1.1.0"
