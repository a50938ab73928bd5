package openowl

import "context"

// Page is a point-in-time snapshot of a visited page: its address plus the
// rendered HTML at capture time. Extraction operates on the snapshot only;
// no live handle is retained.
type Page struct {
	URL   string
	Title string // document title as reported by the fetcher, may be empty
	HTML  string
}

// Discoverer enumerates the watchable page URLs of a site, e.g. by
// reading its sitemap. Used to seed the watch loop without listing every
// URL by hand.
type Discoverer interface {
	// Discover returns the page URLs found for siteURL, deduplicated.
	// A site with no discoverable pages yields an empty slice, not an
	// error.
	Discover(ctx context.Context, siteURL string) ([]string, error)
}

// DomainLimiter throttles outbound requests per domain so a watch pass
// over many pages of one site doesn't hammer it.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait
	// completes.
	Wait(ctx context.Context, domain string) error
}

// Fetcher retrieves rendered page snapshots from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its snapshot.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
