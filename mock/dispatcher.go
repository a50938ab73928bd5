package mock

import (
	"context"

	"github.com/ranjeethpt/openowl"
)

var _ openowl.Dispatcher = (*Dispatcher)(nil)

// Dispatcher is a mock implementation of openowl.Dispatcher.
type Dispatcher struct {
	DispatchFn func(ctx context.Context, page *openowl.Page) *openowl.ExtractedContent
}

func (d *Dispatcher) Dispatch(ctx context.Context, page *openowl.Page) *openowl.ExtractedContent {
	return d.DispatchFn(ctx, page)
}
