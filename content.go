package openowl

import (
	"strings"
	"time"
)

// MaxContentLength is the hard cap on extracted content after normalization.
// The cap is enforced in a single place (goquery.BuildResult); every record
// that reaches a consumer honors it.
const MaxContentLength = 2000

// DefaultTitle is the placeholder used when a page has no usable title.
const DefaultTitle = "Untitled Page"

// ExtractionMethod identifies which extraction layer actually produced the
// content of a record, not which layer was attempted first.
type ExtractionMethod string

// Extraction methods. Exactly one applies per record.
const (
	// MethodSiteSpecific means a named site variant matched and ran.
	MethodSiteSpecific ExtractionMethod = "site_specific"

	// MethodGeneric means the layered generic fallback strategy ran.
	MethodGeneric ExtractionMethod = "generic"

	// MethodFallback means even the fallback failed or timed out.
	MethodFallback ExtractionMethod = "fallback"
)

// Common content type tags. The vocabulary is bounded but extensible:
// variants may introduce new tags for new view states.
const (
	TypeGeneric  = "generic"
	TypeFallback = "fallback"
	TypeError    = "error"
)

// ExtractedContent is the sole record the extraction core produces.
// Every instance is fully populated; failure degrades Content, never the
// shape of the record.
type ExtractedContent struct {
	// URL is the full address of the source page.
	URL string `json:"url"`

	// Title is the page title, or DefaultTitle when absent.
	Title string `json:"title"`

	// Domain is the host component of URL.
	Domain string `json:"domain"`

	// Content is normalized text: tags stripped, whitespace collapsed,
	// length capped at MaxContentLength. Never raw HTML.
	Content string `json:"content"`

	// Type tags the extraction path and sub-case (e.g. "github_pr").
	Type string `json:"type"`

	// ExtractionMethod records which layer produced Content.
	ExtractionMethod ExtractionMethod `json:"extractionMethod"`

	// Metadata holds variant-defined auxiliary fields (e.g. issue id,
	// status). No fixed schema; additive only.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Timestamp is the capture instant.
	Timestamp time.Time `json:"timestamp"`
}

// Validate returns an error if the record violates the output contract.
func (c *ExtractedContent) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "extracted content URL required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "extracted content title required")
	}
	if len(c.Content) > MaxContentLength {
		return Errorf(EINVALID, "extracted content exceeds %d characters", MaxContentLength)
	}
	switch c.ExtractionMethod {
	case MethodSiteSpecific, MethodGeneric, MethodFallback:
	default:
		return Errorf(EINVALID, "unknown extraction method %q", c.ExtractionMethod)
	}
	return nil
}

// Meta returns the metadata value for key, or "" when absent.
func (c *ExtractedContent) Meta(key string) string {
	if c.Metadata == nil {
		return ""
	}
	return c.Metadata[key]
}

// internalSchemes lists address schemes of browser-native or internal pages
// that must never be extracted.
var internalSchemes = []string{
	"chrome:",
	"chrome-extension:",
	"about:",
	"edge:",
	"brave:",
	"opera:",
	"vivaldi:",
	"moz-extension:",
	"safari-web-extension:",
	"devtools:",
	"view-source:",
	"file:",
	"data:",
	"javascript:",
}

// IsInternalURL reports whether rawURL points at a browser-native or
// internal page. Such pages are skipped entirely before dispatch: no
// extraction is attempted and no record is produced.
func IsInternalURL(rawURL string) bool {
	s := strings.ToLower(strings.TrimSpace(rawURL))
	for _, scheme := range internalSchemes {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}
