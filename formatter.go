package openowl

import (
	"fmt"
	"strings"
)

// FormatVisit formats a single visit for display or LLM context.
// Uses the title if available, falls back to the URL.
func FormatVisit(v *Visit) string {
	header := v.Title
	if header == "" {
		header = v.URL
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", header)
	fmt.Fprintf(&b, "URL: %s\n", v.URL)
	if !v.VisitedAt.IsZero() {
		fmt.Fprintf(&b, "Visited: %s\n", v.VisitedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString(v.Content)
	return b.String()
}

// FormatVisits formats visits for display or LLM context.
// Visits are separated by blank lines.
func FormatVisits(visits []*Visit) string {
	if len(visits) == 0 {
		return ""
	}

	parts := make([]string, 0, len(visits))
	for _, v := range visits {
		parts = append(parts, FormatVisit(v))
	}

	return strings.Join(parts, "\n\n")
}
