package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

// extractFunc is the body of a variant's extraction: it receives the page
// snapshot and its parsed document and returns a complete record.
type extractFunc func(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent

// safeExtract parses the page and runs fn under a failure boundary. Any
// panic, parse failure, or nil result is converted into a fallback record
// with the reason captured in metadata. This is what lets every variant's
// Extract satisfy the never-fails contract.
func safeExtract(page *openowl.Page, fn extractFunc) (result *openowl.ExtractedContent) {
	defer func() {
		if p := recover(); p != nil {
			result = BuildFallbackResult(page, fmt.Sprintf("panic: %v", p))
		}
	}()

	if page == nil {
		return BuildFallbackResult(nil, "nil page")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return BuildFallbackResult(page, "parse failure: "+err.Error())
	}

	result = fn(page, doc)
	if result == nil {
		result = BuildFallbackResult(page, "variant produced no result")
	}
	return result
}
