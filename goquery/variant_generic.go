package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

var _ openowl.Extractor = (*GenericExtractor)(nil)

// Generic extraction thresholds: a layer's result is accepted only when the
// cleaned text reaches the layer's minimum size.
const (
	semanticMinChars = 100
	bodyMinChars     = 50
)

// semanticSelectors are generic content-bearing selectors tried in order by
// layer 1.
var semanticSelectors = []string{
	"article",
	"main",
	"[role='main']",
	"#content",
	".content",
	".main-content",
	".post-content",
	".article-body",
	".entry-content",
	"#main",
}

// noiseSelector matches structural and noise elements removed by layer 2:
// navigation, chrome, scripts, ads, cookie banners, and modals, by tag name
// or class/id substring.
var noiseSelector = strings.Join([]string{
	"nav", "header", "footer", "aside",
	"script", "style", "noscript", "iframe", "form", "button",
	"[class*='nav']", "[id*='nav']",
	"[class*='menu']", "[class*='sidebar']",
	"[class*='ad-']", "[class*='ads']", "[class*='advert']",
	"[class*='cookie']", "[id*='cookie']",
	"[class*='banner']", "[class*='consent']",
	"[class*='modal']", "[class*='popup']", "[class*='overlay']",
}, ", ")

// GenericExtractor is the fallback for arbitrary, unknown pages. It
// degrades through three layers: semantic content selectors, the page body
// with noise elements removed, and finally the title alone. The first
// sufficiently sized result wins and the producing layer is recorded in
// metadata.
//
// Domains is empty: this variant is never selected by domain matching and
// is used exclusively as the registry's fallback.
type GenericExtractor struct{}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// Name returns the variant's identifier.
func (e *GenericExtractor) Name() string {
	return "generic"
}

// Domains returns an empty set; the generic variant never matches by
// domain.
func (e *GenericExtractor) Domains() []string {
	return nil
}

// Extract produces a record from the page snapshot. It never returns nil
// and never panics to the caller.
func (e *GenericExtractor) Extract(page *openowl.Page) *openowl.ExtractedContent {
	return safeExtract(page, e.extract)
}

func (e *GenericExtractor) extract(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	title := pageTitle(doc, page)

	// Layer 1: semantic content selectors.
	for _, selector := range semanticSelectors {
		if text := Text(doc, selector, 0); len(text) >= semanticMinChars {
			return BuildResult(page, title, "generic_semantic", openowl.MethodGeneric, text, map[string]string{
				"layer":    "1",
				"selector": selector,
			})
		}
	}

	// Layer 2: page body minus noise elements. The body is cloned so the
	// removals never touch the caller's document.
	body := doc.Find("body").Clone()
	body.Find(noiseSelector).Remove()
	if text := CleanText(body.Text()); len(text) >= bodyMinChars {
		return BuildResult(page, title, "generic_cleaned_body", openowl.MethodGeneric, text, map[string]string{
			"layer": "2",
		})
	}

	// Layer 3: title only. Always succeeds.
	return BuildResult(page, title, "generic_title_only", openowl.MethodGeneric, title, map[string]string{
		"layer": "3",
	})
}
