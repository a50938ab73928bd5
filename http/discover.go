package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/ranjeethpt/openowl"
)

// maxSitemapDepth bounds sitemapindex recursion. Real-world indexes nest
// one level; anything deeper is almost certainly a loop.
const maxSitemapDepth = 3

// Ensure Discoverer implements openowl.Discoverer.
var _ openowl.Discoverer = (*Discoverer)(nil)

// Discoverer finds watchable page URLs by reading a site's sitemap.
// Sitemap locations are taken from robots.txt Sitemap: directives, with
// /sitemap.xml as a fallback.
type Discoverer struct {
	client *http.Client
}

// NewDiscoverer creates a new Discoverer with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewDiscoverer(client *http.Client) *Discoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Discoverer{client: client}
}

// Discover returns the page URLs found in siteURL's sitemaps, deduplicated
// in document order. A site without a sitemap yields an empty slice.
func (d *Discoverer) Discover(ctx context.Context, siteURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid site URL: %w", err)
	}
	base.Path = ""
	base.RawQuery = ""

	sitemaps, err := d.sitemapLocations(ctx, base)
	if err != nil {
		return nil, err
	}
	if len(sitemaps) == 0 {
		return []string{}, nil
	}

	var urls []string
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	for _, sm := range sitemaps {
		found, err := d.readSitemap(ctx, sm, seenSitemaps, 0)
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			if !seenURLs[u] {
				seenURLs[u] = true
				urls = append(urls, u)
			}
		}
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// sitemapLocations finds sitemap URLs from robots.txt, falling back to
// the conventional /sitemap.xml location.
func (d *Discoverer) sitemapLocations(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps, err := d.sitemapsFromRobots(ctx, robotsURL.String()); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fallback := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	ok, err := d.exists(ctx, fallback.String())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if ok {
		return []string{fallback.String()}, nil
	}
	return nil, nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (d *Discoverer) sitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := d.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			continue
		}
		if loc := strings.TrimSpace(line[len("sitemap:"):]); loc != "" {
			sitemaps = append(sitemaps, loc)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// readSitemap fetches and parses one sitemap document, recursing into
// sitemapindex entries.
func (d *Discoverer) readSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth > maxSitemapDepth || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := d.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, child := range root.SelectElements("sitemap") {
			loc := elementText(child, "loc")
			if loc == "" {
				continue
			}
			found, err := d.readSitemap(ctx, loc, seen, depth+1)
			if err != nil {
				return nil, err
			}
			urls = append(urls, found...)
		}
		return urls, nil
	}

	var urls []string
	for _, child := range root.SelectElements("url") {
		if loc := elementText(child, "loc"); loc != "" {
			urls = append(urls, loc)
		}
	}
	return urls, nil
}

// elementText returns the trimmed text of el's named child, or "".
func elementText(el *etree.Element, name string) string {
	child := el.SelectElement(name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// get fetches a URL and returns the response body.
func (d *Discoverer) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}

// exists checks if a URL returns 200 OK.
func (d *Discoverer) exists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
