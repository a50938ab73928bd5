package goquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ranjeethpt/openowl"
)

var _ openowl.Extractor = (*CalendarExtractor)(nil)

// timePattern matches a bare HH:MM clock time inside an event chip label.
var timePattern = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)

// CalendarExtractor extracts content from Google Calendar. An open
// event-detail overlay is detected via its title marker; otherwise up to
// twenty visible event chips for the day are listed.
//
// The "next event" flag is the first chip whose label contains a bare
// HH:MM time. It deliberately does not compare against the current time
// and can therefore flag a past event; the simple pattern match is the
// documented behavior.
type CalendarExtractor struct{}

// NewCalendarExtractor creates a new CalendarExtractor.
func NewCalendarExtractor() *CalendarExtractor {
	return &CalendarExtractor{}
}

// Name returns the variant's identifier.
func (e *CalendarExtractor) Name() string {
	return "calendar"
}

// Domains returns the domains this variant claims ownership of.
func (e *CalendarExtractor) Domains() []string {
	return []string{"calendar.google.com"}
}

// Extract produces a record from the page snapshot. It never returns nil
// and never panics to the caller.
func (e *CalendarExtractor) Extract(page *openowl.Page) *openowl.ExtractedContent {
	return safeExtract(page, e.extract)
}

func (e *CalendarExtractor) extract(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	title := chainText(doc, 300,
		"#rAECCd",
		"#xDetDlg [role='heading']")
	if title != "" {
		return e.extractEventDetail(page, doc, title)
	}
	return e.extractDay(page, doc)
}

func (e *CalendarExtractor) extractEventDetail(page *openowl.Page, doc *goquery.Document, title string) *openowl.ExtractedContent {
	when := chainText(doc, 200,
		"#xDetDlg .AzuXid",
		"#xDetDlg [data-dragsource-type]",
		".Gtawac")
	description := chainText(doc, 1000,
		"#xDetDlgDesc",
		"#xDetDlg .ynRLnc")

	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\n", title)
	if when != "" {
		fmt.Fprintf(&b, "When: %s\n", when)
	}
	if description != "" {
		b.WriteString("\n" + description)
	}

	return BuildResult(page, pageTitle(doc, page), "calendar_event", openowl.MethodSiteSpecific, b.String(), map[string]string{
		"view":  "event_detail",
		"event": title,
	})
}

func (e *CalendarExtractor) extractDay(page *openowl.Page, doc *goquery.Document) *openowl.ExtractedContent {
	chips := chainTextEach(doc, 120, 20,
		"[data-eventchip]",
		"[data-eventid] span",
		".EaCxIb")

	next := ""
	for _, chip := range chips {
		if timePattern.MatchString(chip) {
			next = chip
			break
		}
	}

	var b strings.Builder
	b.WriteString("Today's events:\n")
	for _, chip := range chips {
		b.WriteString("- " + chip + "\n")
	}
	if len(chips) == 0 {
		b.WriteString("(no visible events)\n")
	}
	if next != "" {
		fmt.Fprintf(&b, "\nNext event: %s\n", next)
	}

	metadata := map[string]string{
		"view":  "day",
		"count": strconv.Itoa(len(chips)),
	}
	if next != "" {
		metadata["next_event"] = next
	}

	return BuildResult(page, pageTitle(doc, page), "calendar_day", openowl.MethodSiteSpecific, b.String(), metadata)
}
