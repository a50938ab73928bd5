package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ranjeethpt/openowl"
)

// Ensure LoggingDiscoverer implements openowl.Discoverer.
var _ openowl.Discoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a Discoverer with debug logging.
type LoggingDiscoverer struct {
	next   openowl.Discoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next openowl.Discoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the operation.
func (d *LoggingDiscoverer) Discover(ctx context.Context, siteURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("discover",
			"site", siteURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, siteURL)
}
