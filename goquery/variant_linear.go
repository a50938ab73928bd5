package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

var _ openowl.Extractor = (*LinearExtractor)(nil)

// LinearExtractor extracts content from Linear. Issue-detail pages (path
// contains "/issue/") yield id, title, status, priority, assignee, and
// description through fallback chains; board and list views yield up to
// ten visible card summaries.
type LinearExtractor struct{}

// NewLinearExtractor creates a new LinearExtractor.
func NewLinearExtractor() *LinearExtractor {
	return &LinearExtractor{}
}

// Name returns the variant's identifier.
func (e *LinearExtractor) Name() string {
	return "linear"
}

// Domains returns the domains this variant claims ownership of.
func (e *LinearExtractor) Domains() []string {
	return []string{"linear.app"}
}

// Extract produces a record from the page snapshot. It never returns nil
// and never panics to the caller.
func (e *LinearExtractor) Extract(page *openowl.Page) *openowl.ExtractedContent {
	return safeExtract(page, e.extract)
}

func (e *LinearExtractor) extract(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	if strings.Contains(pathOf(page.URL), "/issue/") {
		return e.extractIssue(page, doc)
	}
	return e.extractBoard(page, doc)
}

func (e *LinearExtractor) extractIssue(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	id := issueKeyPattern.FindString(pathOf(page.URL))
	title := chainText(doc, 300,
		"[data-testid='issue-title']",
		"[aria-label='Issue title']",
		"h1")
	status := chainText(doc, 60,
		"[data-testid='issue-status']",
		"[aria-label='Change status'] span",
		"button[aria-label*='Status']")
	priority := chainText(doc, 60,
		"[data-testid='issue-priority']",
		"[aria-label='Change priority'] span",
		"button[aria-label*='Priority']")
	assignee := chainText(doc, 100,
		"[data-testid='issue-assignee']",
		"[aria-label='Assign to'] span",
		"button[aria-label*='Assignee']")
	description := chainText(doc, 1200,
		"[data-testid='issue-description']",
		".ProseMirror",
		"[contenteditable='true']")

	var b strings.Builder
	if id != "" {
		fmt.Fprintf(&b, "Issue %s: %s\n", id, title)
	} else {
		fmt.Fprintf(&b, "Issue: %s\n", title)
	}
	if status != "" {
		fmt.Fprintf(&b, "Status: %s\n", status)
	}
	if priority != "" {
		fmt.Fprintf(&b, "Priority: %s\n", priority)
	}
	if assignee != "" {
		fmt.Fprintf(&b, "Assignee: %s\n", assignee)
	}
	if description != "" {
		b.WriteString("\n" + description)
	}

	return BuildResult(page, pageTitle(doc, page), "linear_issue", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view":     "issue",
		"id":       id,
		"status":   status,
		"priority": priority,
		"assignee": assignee,
	})
}

func (e *LinearExtractor) extractBoard(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	cards := chainTextEach(doc, 140, 10,
		"[data-board-item]",
		"[data-testid='board-card']",
		"[data-list-item]")

	var b strings.Builder
	b.WriteString("Board items:\n")
	for _, card := range cards {
		b.WriteString("- " + card + "\n")
	}
	if len(cards) == 0 {
		b.WriteString("(no visible items)\n")
	}

	return BuildResult(page, pageTitle(doc, page), "linear_board", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view":  "board",
		"count": strconv.Itoa(len(cards)),
	})
}
