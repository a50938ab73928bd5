// Package http provides HTTP-based implementations of openowl.Fetcher and
// openowl.Discoverer for pages that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ranjeethpt/openowl"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response is read. Extraction only keeps
// the first couple thousand characters, so multi-megabyte pages are waste.
const maxBodyBytes = 4 << 20

// Ensure Fetcher implements openowl.Fetcher at compile time.
var _ openowl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over plain HTTP. Unlike rod.Fetcher it does not
// execute JavaScript, so heavily client-rendered sites come back as app
// shells; those fall through to the generic title-only layer downstream.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the given URL. The body is decoded to UTF-8
// based on the Content-Type header and any in-document charset declaration.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*openowl.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	// Title is left empty; extraction derives it from the document.
	return &openowl.Page{URL: url, HTML: string(body)}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
