package mock

import (
	"context"

	"github.com/ranjeethpt/openowl"
)

var _ openowl.Asker = (*Asker)(nil)

// Asker is a mock implementation of openowl.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, visits []*openowl.Visit) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string, visits []*openowl.Visit) (string, error) {
	return a.AskFn(ctx, question, visits)
}
