package openowl

import (
	"context"
	"net/url"
	"strings"
)

// Extractor is one concrete extraction strategy. Every variant exposes the
// set of domains it claims, a human-readable name, and a non-throwing
// Extract. Any internal failure is caught inside the variant and converted
// into a minimal valid record with Type "fallback" and a metadata "reason".
type Extractor interface {
	// Name returns the variant's identifier (e.g., "github", "generic").
	Name() string

	// Domains returns the domains this variant claims ownership of.
	// An empty set means the variant never matches by domain.
	Domains() []string

	// Extract produces a record from the page snapshot. It never returns
	// nil and never panics to the caller.
	Extract(page *Page) *ExtractedContent
}

// Dispatcher selects a variant for a page and enforces the deadline and
// error-normalization contract. Dispatch never returns nil and never
// propagates a failure to its caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, page *Page) *ExtractedContent
}

// MatchesDomain is the default domain-match predicate shared by all
// variants. It parses the candidate URL and succeeds if the host exactly
// equals one of domains, or ends with "."+domain (subdomain match).
// Any parse failure means no match; it never panics.
func MatchesDomain(domains []string, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, d := range domains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
