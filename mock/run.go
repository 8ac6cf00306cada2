package mock

import (
	"context"

	"github.com/fwojciec/locrank"
)

var _ locrank.RunService = (*RunService)(nil)

// RunService is a mock implementation of locrank.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *locrank.Run, html string) error
	FindRunByIDFn func(ctx context.Context, id string) (*locrank.Run, error)
	FindRunsFn    func(ctx context.Context, filter locrank.RunFilter) ([]*locrank.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *locrank.Run, html string) error {
	return s.CreateRunFn(ctx, run, html)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*locrank.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter locrank.RunFilter) ([]*locrank.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
