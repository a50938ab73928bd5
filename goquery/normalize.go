// Package goquery provides the content extraction core: a set of
// site-specific extraction variants, a layered generic fallback, and a
// registry that dispatches the active page to the right variant under a
// deadline. All DOM queries run against a point-in-time HTML snapshot
// parsed with PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

// tagPattern matches residual markup tags non-greedily. Extracted text has
// normally been rendered by goquery already; this catches markup that
// leaked into text nodes (e.g. escaped fragments in feed content).
var tagPattern = regexp.MustCompile(`<[^>]*?>`)

// spacePattern matches runs of whitespace, including newlines and tabs.
var spacePattern = regexp.MustCompile(`\s+`)

// CleanText strips residual markup tags, collapses whitespace runs to
// single spaces, and trims the ends. Idempotent: applying it twice yields
// the same result.
func CleanText(text string) string {
	text = tagPattern.ReplaceAllString(text, " ")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Truncate caps s at max bytes, backing up to a rune boundary so a
// multibyte character is never cut in half. A max of zero or less leaves
// s unbounded.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// Text returns the cleaned text of the first element matching selector,
// truncated to maxLen. A missing element, nil document, or any query
// failure yields the empty string.
func Text(doc *goquery.Document, selector string, maxLen int) string {
	if doc == nil {
		return ""
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	return Truncate(CleanText(sel.Text()), maxLen)
}

// TextEach returns the cleaned text of up to limit elements matching
// selector, each truncated to maxLen, with empty results filtered out.
// A limit of zero or less means no count limit.
func TextEach(doc *goquery.Document, selector string, maxLen, limit int) []string {
	if doc == nil {
		return nil
	}
	var out []string
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if limit > 0 && len(out) >= limit {
			return false
		}
		if text := Truncate(CleanText(sel.Text()), maxLen); text != "" {
			out = append(out, text)
		}
		return true
	})
	return out
}

// chainText tries each selector in order and returns the first non-empty
// cleaned text. Absence of all alternatives yields the empty string, not a
// failure.
func chainText(doc *goquery.Document, maxLen int, selectors ...string) string {
	for _, selector := range selectors {
		if text := Text(doc, selector, maxLen); text != "" {
			return text
		}
	}
	return ""
}

// chainTextEach tries each selector in order and returns the first
// non-empty result set.
func chainTextEach(doc *goquery.Document, maxLen, limit int, selectors ...string) []string {
	for _, selector := range selectors {
		if texts := TextEach(doc, selector, maxLen, limit); len(texts) > 0 {
			return texts
		}
	}
	return nil
}

// pageTitle resolves the record title: document <title>, then the fetcher's
// reported title, then the placeholder.
func pageTitle(doc *goquery.Document, page *openowl.Page) string {
	if title := Text(doc, "title", 300); title != "" {
		return title
	}
	if page != nil && page.Title != "" {
		return Truncate(CleanText(page.Title), 300)
	}
	return openowl.DefaultTitle
}

// domainOf returns the host component of rawURL, or "" when unparseable.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// pathOf returns the path component of rawURL, or "" when unparseable.
func pathOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Path
}

// BuildResult assembles a fully populated record. It is the single
// enforcement point for the size invariant: content passes through
// CleanText and the openowl.MaxContentLength cap regardless of what the
// caller passed in.
func BuildResult(page *openowl.Page, title, typ string, method openowl.ExtractionMethod, content string, metadata map[string]string) *openowl.ExtractedContent {
	if page == nil {
		page = &openowl.Page{}
	}
	if title == "" {
		title = openowl.DefaultTitle
	}
	return &openowl.ExtractedContent{
		URL:              page.URL,
		Title:            title,
		Domain:           domainOf(page.URL),
		Content:          Truncate(CleanText(content), openowl.MaxContentLength),
		Type:             typ,
		ExtractionMethod: method,
		Metadata:         metadata,
		Timestamp:        time.Now().UTC(),
	}
}

// BuildFallbackResult assembles the minimal valid record for a failed
// extraction. The failure surfaces only as degraded content text.
func BuildFallbackResult(page *openowl.Page, reason string) *openowl.ExtractedContent {
	title := openowl.DefaultTitle
	if page != nil && page.Title != "" {
		title = Truncate(CleanText(page.Title), 300)
	}
	return BuildResult(page, title, openowl.TypeFallback, openowl.MethodFallback,
		"(extraction failed: "+reason+")",
		map[string]string{"reason": reason})
}
