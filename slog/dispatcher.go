// Package slog provides logging decorators for openowl service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ranjeethpt/openowl"
)

// Ensure LoggingDispatcher implements openowl.Dispatcher.
var _ openowl.Dispatcher = (*LoggingDispatcher)(nil)

// LoggingDispatcher wraps a Dispatcher with extraction logging.
type LoggingDispatcher struct {
	next   openowl.Dispatcher
	logger *slog.Logger
}

// NewLoggingDispatcher creates a new LoggingDispatcher.
func NewLoggingDispatcher(next openowl.Dispatcher, logger *slog.Logger) *LoggingDispatcher {
	return &LoggingDispatcher{next: next, logger: logger}
}

// Dispatch delegates to the wrapped dispatcher and logs what was produced.
func (d *LoggingDispatcher) Dispatch(ctx context.Context, page *openowl.Page) *openowl.ExtractedContent {
	begin := time.Now()
	result := d.next.Dispatch(ctx, page)

	url := ""
	if page != nil {
		url = page.URL
	}
	d.logger.Info("extract",
		"url", url,
		"type", result.Type,
		"method", string(result.ExtractionMethod),
		"chars", len(result.Content),
		"duration", time.Since(begin),
	)
	return result
}
