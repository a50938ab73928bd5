package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

var _ openowl.Extractor = (*GmailExtractor)(nil)

// GmailExtractor extracts content from Gmail. It distinguishes an open
// message from the list view by the presence of the message-body marker
// element; the list view yields up to ten visible subject lines.
type GmailExtractor struct{}

// NewGmailExtractor creates a new GmailExtractor.
func NewGmailExtractor() *GmailExtractor {
	return &GmailExtractor{}
}

// Name returns the variant's identifier.
func (e *GmailExtractor) Name() string {
	return "gmail"
}

// Domains returns the domains this variant claims ownership of.
func (e *GmailExtractor) Domains() []string {
	return []string{"mail.google.com"}
}

// Extract produces a record from the page snapshot. It never returns nil
// and never panics to the caller.
func (e *GmailExtractor) Extract(page *openowl.Page) *openowl.ExtractedContent {
	return safeExtract(page, e.extract)
}

func (e *GmailExtractor) extract(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	// .a3s is the message body container; present only when a message
	// is open.
	if doc.Find(".a3s").Length() > 0 {
		return e.extractMessage(page, doc)
	}
	return e.extractList(page, doc)
}

func (e *GmailExtractor) extractMessage(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	subject := chainText(doc, 300,
		"h2.hP",
		".ha h2")
	sender := chainText(doc, 200,
		".gD",
		".go",
		".qu span[email]")
	date := chainText(doc, 80,
		".g3",
		".gH .gK span")
	body := chainText(doc, 1500,
		".a3s",
		".ii.gt")

	var b strings.Builder
	fmt.Fprintf(&b, "Email: %s\n", subject)
	if sender != "" {
		fmt.Fprintf(&b, "From: %s\n", sender)
	}
	if date != "" {
		fmt.Fprintf(&b, "Date: %s\n", date)
	}
	if body != "" {
		b.WriteString("\n" + body)
	}

	return BuildResult(page, pageTitle(doc, page), "gmail_message", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view":   "message",
		"sender": sender,
		"date":   date,
	})
}

func (e *GmailExtractor) extractList(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	subjects := chainTextEach(doc, 150, 10,
		".zA .bog",
		"tr.zA .y6 span:first-child")

	var b strings.Builder
	b.WriteString("Inbox subjects:\n")
	for _, s := range subjects {
		b.WriteString("- " + s + "\n")
	}
	if len(subjects) == 0 {
		b.WriteString("(no visible messages)\n")
	}

	return BuildResult(page, pageTitle(doc, page), "gmail_inbox", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view":  "list",
		"count": strconv.Itoa(len(subjects)),
	})
}
