package mock

import (
	"context"

	"github.com/ranjeethpt/openowl"
)

var _ openowl.VisitService = (*VisitService)(nil)

// VisitService is a mock implementation of openowl.VisitService.
type VisitService struct {
	RecordVisitFn        func(ctx context.Context, visit *openowl.Visit) error
	FindVisitByIDFn      func(ctx context.Context, id string) (*openowl.Visit, error)
	FindVisitsFn         func(ctx context.Context, filter openowl.VisitFilter) ([]*openowl.Visit, error)
	DeleteVisitFn        func(ctx context.Context, id string) error
	DeleteVisitsBeforeFn func(ctx context.Context, day string) (int, error)
}

func (s *VisitService) RecordVisit(ctx context.Context, visit *openowl.Visit) error {
	return s.RecordVisitFn(ctx, visit)
}

func (s *VisitService) FindVisitByID(ctx context.Context, id string) (*openowl.Visit, error) {
	return s.FindVisitByIDFn(ctx, id)
}

func (s *VisitService) FindVisits(ctx context.Context, filter openowl.VisitFilter) ([]*openowl.Visit, error) {
	return s.FindVisitsFn(ctx, filter)
}

func (s *VisitService) DeleteVisit(ctx context.Context, id string) error {
	return s.DeleteVisitFn(ctx, id)
}

func (s *VisitService) DeleteVisitsBefore(ctx context.Context, day string) (int, error) {
	return s.DeleteVisitsBeforeFn(ctx, day)
}
