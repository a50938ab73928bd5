package goquery

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

var _ openowl.Extractor = (*AtlassianExtractor)(nil)

// issueKeyPattern matches Jira issue keys like "PROJ-123".
var issueKeyPattern = regexp.MustCompile(`[A-Z][A-Z0-9]+-\d+`)

// AtlassianExtractor extracts content from Atlassian-hosted sites: Jira
// issues and Confluence wiki pages. Routing is based on the path
// ("/browse/", "/wiki/") and on the selectedIssue query parameter that
// Jira boards use for the issue side panel.
type AtlassianExtractor struct{}

// NewAtlassianExtractor creates a new AtlassianExtractor.
func NewAtlassianExtractor() *AtlassianExtractor {
	return &AtlassianExtractor{}
}

// Name returns the variant's identifier.
func (e *AtlassianExtractor) Name() string {
	return "atlassian"
}

// Domains returns the domains this variant claims ownership of.
func (e *AtlassianExtractor) Domains() []string {
	return []string{"atlassian.net"}
}

// Extract produces a record from the page snapshot. It never returns nil
// and never panics to the caller.
func (e *AtlassianExtractor) Extract(page *openowl.Page) *openowl.ExtractedContent {
	return safeExtract(page, e.extract)
}

func (e *AtlassianExtractor) extract(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	u, err := url.Parse(page.URL)
	if err != nil {
		return BuildFallbackResult(page, "unparseable URL")
	}

	switch {
	case strings.Contains(u.Path, "/browse/") || u.Query().Get("selectedIssue") != "":
		return e.extractIssue(page, doc, u)
	default:
		return e.extractWikiPage(page, doc)
	}
}

func (e *AtlassianExtractor) extractIssue(page *openowl.Page, doc *goquery.Document, u *url.URL) *openowl.ExtractedContent {
	key := u.Query().Get("selectedIssue")
	if key == "" {
		key = issueKeyPattern.FindString(u.Path)
	}

	title := chainText(doc, 300,
		"[data-testid='issue.views.issue-base.foundation.summary.heading']",
		"h1[data-test-id='issue.views.issue-base.foundation.summary.heading']",
		"#summary-val",
		"h1")
	status := chainText(doc, 60,
		"[data-testid='issue.views.issue-base.foundation.status.status-field-wrapper'] button",
		"[data-testid*='issue-field-status'] button",
		"#status-val")
	description := chainText(doc, 1400,
		".ak-renderer-document",
		"[data-testid='issue.views.field.rich-text.description']",
		"#description-val")

	var b strings.Builder
	if key != "" {
		fmt.Fprintf(&b, "Issue %s: %s\n", key, title)
	} else {
		fmt.Fprintf(&b, "Issue: %s\n", title)
	}
	if status != "" {
		fmt.Fprintf(&b, "Status: %s\n", status)
	}
	if description != "" {
		b.WriteString("\n" + description)
	}

	return BuildResult(page, pageTitle(doc, page), "jira_issue", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view":   "issue",
		"key":    key,
		"status": status,
	})
}

func (e *AtlassianExtractor) extractWikiPage(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	title := chainText(doc, 300,
		"#title-text",
		"[data-testid='title']",
		"h1")
	body := chainText(doc, 1600,
		"#main-content",
		".wiki-content",
		"[data-testid='page-content']")

	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "Page: %s\n\n", title)
	}
	b.WriteString(body)

	return BuildResult(page, pageTitle(doc, page), "confluence_page", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view": "wiki_page",
	})
}
