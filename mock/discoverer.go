package mock

import (
	"context"

	"github.com/ranjeethpt/openowl"
)

var _ openowl.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of openowl.Discoverer.
type Discoverer struct {
	DiscoverFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (d *Discoverer) Discover(ctx context.Context, siteURL string) ([]string, error) {
	return d.DiscoverFn(ctx, siteURL)
}
