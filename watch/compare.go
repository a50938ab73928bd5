package watch

import (
	"context"

	"github.com/ranjeethpt/openowl"
)

// NeedsRendering compares extraction results from an HTTP-fetched snapshot
// vs a browser-rendered snapshot of the same URL. Returns true if the
// rendered content is significantly longer (>50%), suggesting JavaScript
// rendering adds meaningful content.
func NeedsRendering(ctx context.Context, httpPage, renderedPage *openowl.Page, dispatcher openowl.Dispatcher) bool {
	httpContent := dispatcher.Dispatch(ctx, httpPage)
	renderedContent := dispatcher.Dispatch(ctx, renderedPage)

	httpLen := len(httpContent.Content)
	renderedLen := len(renderedContent.Content)

	// Handle empty HTTP content
	if httpLen == 0 && renderedLen > 0 {
		return true
	}

	threshold := float64(httpLen) * 1.5
	return float64(renderedLen) > threshold
}
