// Package rod provides a browser-automation implementation of
// openowl.Fetcher for pages that require JavaScript rendering.
package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/ranjeethpt/openowl"
)

// DefaultFetchTimeout is the default timeout for a single page fetch.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements openowl.Fetcher at compile time.
var _ openowl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered page snapshots using headless Chrome.
// The underlying browser is recycled periodically by a BrowserManager to
// keep Chrome's memory growth bounded. Fetcher is safe for concurrent use.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout applied when the caller's
// context carries no deadline. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher backed by a freshly launched headless
// Chrome browser. Close must be called when the Fetcher is no longer
// needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered page snapshot,
// including the document title as reported by the browser.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*openowl.Page, error) {
	if f.manager.Closed() {
		return nil, openowl.Errorf(openowl.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, ok := ctx.Deadline(); !ok && f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}

	f.manager.IncrementPageCount()

	return &openowl.Page{URL: url, Title: info.Title, HTML: html}, nil
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
