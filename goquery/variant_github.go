package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

var _ openowl.Extractor = (*GitHubExtractor)(nil)

// GitHubExtractor extracts content from GitHub pages. It routes on the
// path into pull-request, issue, file-blob, and repository-overview views,
// each read through selector-fallback chains because GitHub ships both the
// classic and the React-based markup depending on rollout.
type GitHubExtractor struct{}

// NewGitHubExtractor creates a new GitHubExtractor.
func NewGitHubExtractor() *GitHubExtractor {
	return &GitHubExtractor{}
}

// Name returns the variant's identifier.
func (e *GitHubExtractor) Name() string {
	return "github"
}

// Domains returns the domains this variant claims ownership of.
func (e *GitHubExtractor) Domains() []string {
	return []string{"github.com"}
}

// Extract produces a record from the page snapshot. It never returns nil
// and never panics to the caller.
func (e *GitHubExtractor) Extract(page *openowl.Page) *openowl.ExtractedContent {
	return safeExtract(page, e.extract)
}

func (e *GitHubExtractor) extract(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	path := pathOf(page.URL)
	switch {
	case strings.Contains(path, "/pull/"):
		return e.extractPullRequest(page, doc)
	case strings.Contains(path, "/issues/"):
		return e.extractIssue(page, doc)
	case strings.Contains(path, "/blob/"):
		return e.extractFile(page, doc)
	default:
		return e.extractRepo(page, doc)
	}
}

func (e *GitHubExtractor) extractPullRequest(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	title := chainText(doc, 300,
		".gh-header-title .js-issue-title",
		"bdi.js-issue-title",
		"h1[data-testid='issue-title']",
		"h1")
	status := chainText(doc, 50,
		".gh-header-meta .State",
		"span[data-testid='header-state']",
		".State")
	body := chainText(doc, 1200,
		".comment-body",
		"[data-testid='issue-body'] .markdown-body",
		".timeline-comment .markdown-body")
	files := chainTextEach(doc, 120, 10,
		".file-info a.Link--primary",
		".file-header [title]",
		"[data-testid='file-name']")

	var b strings.Builder
	fmt.Fprintf(&b, "Pull Request: %s\n", title)
	if status != "" {
		fmt.Fprintf(&b, "Status: %s\n", status)
	}
	if body != "" {
		b.WriteString("\n" + body + "\n")
	}
	if len(files) > 0 {
		b.WriteString("\nFiles changed:\n")
		for _, f := range files {
			b.WriteString("- " + f + "\n")
		}
	}

	return BuildResult(page, pageTitle(doc, page), "github_pr", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view":   "pull_request",
		"status": status,
	})
}

func (e *GitHubExtractor) extractIssue(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	title := chainText(doc, 300,
		".gh-header-title .js-issue-title",
		"bdi.js-issue-title",
		"h1[data-testid='issue-title']",
		"h1")
	status := chainText(doc, 50,
		".gh-header-meta .State",
		"span[data-testid='header-state']",
		".State")
	body := chainText(doc, 1200,
		".comment-body",
		"[data-testid='issue-body'] .markdown-body",
		".edit-comment-hide .markdown-body")
	labels := chainTextEach(doc, 60, 10,
		".js-issue-labels .IssueLabel",
		"[data-testid='issue-labels'] a",
		".labels .IssueLabel")

	var b strings.Builder
	fmt.Fprintf(&b, "Issue: %s\n", title)
	if status != "" {
		fmt.Fprintf(&b, "Status: %s\n", status)
	}
	if len(labels) > 0 {
		fmt.Fprintf(&b, "Labels: %s\n", strings.Join(labels, ", "))
	}
	if body != "" {
		b.WriteString("\n" + body)
	}

	return BuildResult(page, pageTitle(doc, page), "github_issue", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view":   "issue",
		"status": status,
	})
}

func (e *GitHubExtractor) extractFile(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	name := chainText(doc, 300,
		".final-path",
		"#blob-path",
		"[data-testid='breadcrumbs-filename']")
	code := chainText(doc, 1500,
		"table.highlight",
		".react-code-lines",
		"textarea#read-only-cursor-text-area",
		".blob-wrapper")

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "File: %s\n\n", name)
	}
	b.WriteString(code)

	return BuildResult(page, pageTitle(doc, page), "github_file", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view": "file",
		"file": name,
	})
}

func (e *GitHubExtractor) extractRepo(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	name := chainText(doc, 200,
		"strong[itemprop='name'] a",
		".AppHeader-context-full li:last-child a",
		"h1")
	about := chainText(doc, 400,
		".BorderGrid-cell .f4.my-3",
		"[data-testid='repo-description']",
		".repository-content .f4")
	readme := chainText(doc, 1200,
		"article.markdown-body",
		"#readme .markdown-body",
		".readme")

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "Repository: %s\n", name)
	}
	if about != "" {
		fmt.Fprintf(&b, "About: %s\n", about)
	}
	if readme != "" {
		b.WriteString("\n" + readme)
	}

	return BuildResult(page, pageTitle(doc, page), "github_repo", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view": "repository",
		"repo": name,
	})
}
