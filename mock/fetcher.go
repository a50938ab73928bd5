package mock

import (
	"context"

	"github.com/ranjeethpt/openowl"
)

var _ openowl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of openowl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*openowl.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*openowl.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
