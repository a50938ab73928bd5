package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

var _ openowl.Extractor = (*NotionExtractor)(nil)

// NotionExtractor extracts content from Notion workspaces. A database
// (table/board/gallery) view is detected via collection markers; otherwise
// the page is treated as a document.
type NotionExtractor struct{}

// NewNotionExtractor creates a new NotionExtractor.
func NewNotionExtractor() *NotionExtractor {
	return &NotionExtractor{}
}

// Name returns the variant's identifier.
func (e *NotionExtractor) Name() string {
	return "notion"
}

// Domains returns the domains this variant claims ownership of.
func (e *NotionExtractor) Domains() []string {
	return []string{"notion.so", "notion.site"}
}

// Extract produces a record from the page snapshot. It never returns nil
// and never panics to the caller.
func (e *NotionExtractor) Extract(page *openowl.Page) *openowl.ExtractedContent {
	return safeExtract(page, e.extract)
}

// collectionMarkers identify database views; any one present means the
// page is showing a collection, not a document.
var collectionMarkers = []string{
	".notion-collection_view-block",
	".notion-table-view",
	".notion-board-view",
	".notion-gallery-view",
	".notion-list-view",
}

func (e *NotionExtractor) extract(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	for _, marker := range collectionMarkers {
		if doc.Find(marker).Length() > 0 {
			return e.extractDatabase(page, doc)
		}
	}
	return e.extractDocument(page, doc)
}

func (e *NotionExtractor) extractDatabase(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	title := e.title(doc, page)
	rows := chainTextEach(doc, 120, 15,
		".notion-collection-item",
		".notion-table-view-row",
		".notion-board-view .notion-page-block",
		".notion-list-view .notion-page-block")

	var b strings.Builder
	fmt.Fprintf(&b, "Database: %s\n", title)
	for _, row := range rows {
		b.WriteString("- " + row + "\n")
	}
	if len(rows) == 0 {
		b.WriteString("(no visible entries)\n")
	}

	return BuildResult(page, title, "notion_database", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view": "database",
		"rows": strconv.Itoa(len(rows)),
	})
}

func (e *NotionExtractor) extractDocument(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	title := e.title(doc, page)
	body := chainText(doc, 1600,
		".notion-page-content",
		"main .notion-page-block",
		"main")

	var b strings.Builder
	fmt.Fprintf(&b, "Page: %s\n\n", title)
	b.WriteString(body)

	return BuildResult(page, title, "notion_page", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view": "document",
	})
}

func (e *NotionExtractor) title(doc *goquery.Document, page *openowl.Page) string {
	if title := chainText(doc, 300,
		".notion-page-block[data-block-id] h1",
		"h1.notion-header-block",
		"[placeholder='Untitled']"); title != "" {
		return title
	}
	return pageTitle(doc, page)
}
